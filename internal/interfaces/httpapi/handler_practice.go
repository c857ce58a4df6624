package httpapi

import (
	"net/http"

	"github.com/immxrko/fc-patron-sub000/internal/domain/practice"
	"github.com/immxrko/fc-patron-sub000/internal/usecase"
)

type practiceDTO struct {
	ID            int64  `json:"id"`
	Date          string `json:"date"`
	AttendanceSet bool   `json:"attendanceSet"`
	Canceled      bool   `json:"canceled"`
}

type attendanceRowRequest struct {
	PlayerID int64 `json:"playerId" validate:"required,gt=0"`
	Present  bool  `json:"present"`
}

type saveAttendanceRequest struct {
	Attendance []attendanceRowRequest `json:"attendance" validate:"dive"`
}

type setCanceledRequest struct {
	Canceled bool `json:"canceled"`
}

// ListPractices back-fills missing weekly sessions before listing, so the
// schedule is current the moment the page loads.
func (h *Handler) ListPractices(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPractices")
	defer span.End()

	items, err := h.practiceService.EnsureSchedule(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list practices failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, practicesToDTO(items))
}

// EnsurePracticeSchedule back-fills the weekly sessions up to today and
// returns the full list afterwards.
func (h *Handler) EnsurePracticeSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EnsurePracticeSchedule")
	defer span.End()

	items, err := h.practiceService.EnsureSchedule(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "ensure practice schedule failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, practicesToDTO(items))
}

func (h *Handler) ListPracticeAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPracticeAttendance")
	defer span.End()

	practiceID, err := pathID(r, "practiceID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.practiceService.ListAttendance(ctx, practiceID)
	if err != nil {
		h.logger.WarnContext(ctx, "list practice attendance failed", "practice_id", practiceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) SavePracticeAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SavePracticeAttendance")
	defer span.End()

	practiceID, err := pathID(r, "practiceID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req saveAttendanceRequest
	if err := h.decode(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	inputs := make([]usecase.AttendanceInput, 0, len(req.Attendance))
	for _, row := range req.Attendance {
		inputs = append(inputs, usecase.AttendanceInput{
			PlayerID: row.PlayerID,
			Present:  row.Present,
		})
	}

	if err := h.practiceService.SaveAttendance(ctx, practiceID, inputs); err != nil {
		h.logger.WarnContext(ctx, "save practice attendance failed", "practice_id", practiceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"saved": len(inputs)})
}

func (h *Handler) SetPracticeCanceled(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetPracticeCanceled")
	defer span.End()

	practiceID, err := pathID(r, "practiceID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req setCanceledRequest
	if err := h.decode(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.practiceService.SetCanceled(ctx, practiceID, req.Canceled); err != nil {
		h.logger.WarnContext(ctx, "set practice canceled failed", "practice_id", practiceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"canceled": req.Canceled})
}

func practicesToDTO(items []practice.Practice) []practiceDTO {
	out := make([]practiceDTO, 0, len(items))
	for _, p := range items {
		out = append(out, practiceDTO{
			ID:            p.ID,
			Date:          p.Date.String(),
			AttendanceSet: p.AttendanceSet,
			Canceled:      p.Canceled,
		})
	}
	return out
}
