package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/immxrko/fc-patron-sub000/internal/domain/card"
	"github.com/immxrko/fc-patron-sub000/internal/domain/lineup"
	"github.com/immxrko/fc-patron-sub000/internal/domain/match"
	"github.com/immxrko/fc-patron-sub000/internal/platform/calendar"
	"github.com/immxrko/fc-patron-sub000/internal/usecase"
)

type matchDTO struct {
	ID         int64  `json:"id"`
	SeasonID   int64  `json:"seasonId"`
	OpponentID int64  `json:"opponentId"`
	Date       string `json:"date"`
	Kickoff    string `json:"kickoff,omitempty"`
	IsHome     bool   `json:"isHome"`
	Squad      string `json:"squad"`
	HomeResult string `json:"homeResult,omitempty"`
	AwayResult string `json:"awayResult,omitempty"`
	Status     string `json:"status"`
}

type matchDayGroupDTO struct {
	Date    string     `json:"date"`
	Matches []matchDTO `json:"matches"`
}

type substitutionDTO struct {
	PlayerOut int64 `json:"playerOut"`
	PlayerIn  int64 `json:"playerIn"`
	Minute    int   `json:"minute"`
}

type lineupEntryDTO struct {
	PlayerID  int64 `json:"playerId"`
	IsStarter bool  `json:"isStarter"`
	SubIn     *int  `json:"subIn,omitempty"`
	SubOut    *int  `json:"subOut,omitempty"`
}

type cardRecordDTO struct {
	PlayerID       int64  `json:"playerId"`
	Classification string `json:"classification"`
	Minute         *int   `json:"minute,omitempty"`
}

type scoringEventDTO struct {
	ScorerID   int64 `json:"scorerId"`
	AssisterID int64 `json:"assisterId,omitempty"`
	Minute     *int  `json:"minute,omitempty"`
}

type matchDetailDTO struct {
	Match         matchDTO          `json:"match"`
	OpponentName  string            `json:"opponentName,omitempty"`
	Lineup        []lineupEntryDTO  `json:"lineup"`
	Substitutions []substitutionDTO `json:"substitutions"`
	Cards         []cardRecordDTO   `json:"cards"`
	Goals         []scoringEventDTO `json:"goals"`
}

type createMatchRequest struct {
	SeasonID   int64  `json:"seasonId" validate:"required,gt=0"`
	OpponentID int64  `json:"opponentId" validate:"required,gt=0"`
	Date       string `json:"date" validate:"required"`
	Kickoff    string `json:"kickoff"`
	IsHome     bool   `json:"isHome"`
	Squad      string `json:"squad" validate:"required"`
}

type saveResultRequest struct {
	HomeGoals int `json:"homeGoals" validate:"gte=0"`
	AwayGoals int `json:"awayGoals" validate:"gte=0"`
}

type lineupRowRequest struct {
	PlayerID  int64  `json:"playerId" validate:"gte=0"`
	IsStarter bool   `json:"isStarter"`
	SubIn     string `json:"subIn"`
	SubOut    string `json:"subOut"`
}

type saveLineupRequest struct {
	Rows []lineupRowRequest `json:"rows" validate:"dive"`
}

type cardRowRequest struct {
	PlayerID int64  `json:"playerId" validate:"gte=0"`
	Kind     string `json:"kind"`
	Minute   string `json:"minute"`
}

type saveCardsRequest struct {
	Cards []cardRowRequest `json:"cards" validate:"dive"`
}

type goalRowRequest struct {
	ScorerID   int64  `json:"scorerId" validate:"gte=0"`
	AssisterID int64  `json:"assisterId" validate:"gte=0"`
	Minute     string `json:"minute"`
}

type saveGoalsRequest struct {
	Goals []goalRowRequest `json:"goals" validate:"dive"`
}

func (h *Handler) ListSeasonMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonMatches")
	defer span.End()

	seasonID, err := pathID(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	groups, err := h.matchService.ListSeasonMatches(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list season matches failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDayGroupDTO, 0, len(groups))
	for _, g := range groups {
		dto := matchDayGroupDTO{Date: g.Date.String(), Matches: make([]matchDTO, 0, len(g.Matches))}
		for _, m := range g.Matches {
			dto.Matches = append(dto.Matches, matchToDTO(ctx, m))
		}
		items = append(items, dto)
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatchDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchDetail")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.matchService.GetDetail(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match detail failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailToDTO(ctx, detail))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
	if err := h.decode(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	date, err := calendar.Parse(req.Date)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: date: %v", usecase.ErrInvalidInput, err))
		return
	}

	created, err := h.matchService.Create(ctx, usecase.CreateMatchInput{
		SeasonID:   req.SeasonID,
		OpponentID: req.OpponentID,
		Date:       date,
		Kickoff:    req.Kickoff,
		IsHome:     req.IsHome,
		Squad:      req.Squad,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(ctx, created))
}

func (h *Handler) SaveMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveMatchResult")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req saveResultRequest
	if err := h.decode(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.matchService.SaveResult(ctx, usecase.SaveResultInput{
		MatchID:   matchID,
		HomeGoals: req.HomeGoals,
		AwayGoals: req.AwayGoals,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save match result failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(ctx, saved))
}

func (h *Handler) SaveMatchLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveMatchLineup")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req saveLineupRequest
	if err := h.decode(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rows := make([]usecase.LineupRowInput, 0, len(req.Rows))
	for _, row := range req.Rows {
		rows = append(rows, usecase.LineupRowInput{
			PlayerID:  row.PlayerID,
			IsStarter: row.IsStarter,
			SubIn:     row.SubIn,
			SubOut:    row.SubOut,
		})
	}

	entries, err := h.matchService.SaveLineup(ctx, matchID, rows)
	if err != nil {
		h.logger.WarnContext(ctx, "save lineup failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupEntriesToDTO(entries))
}

func (h *Handler) SaveMatchCards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveMatchCards")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req saveCardsRequest
	if err := h.decode(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	inputs := make([]usecase.CardInput, 0, len(req.Cards))
	for _, row := range req.Cards {
		inputs = append(inputs, usecase.CardInput{
			PlayerID: row.PlayerID,
			Kind:     card.Kind(row.Kind),
			Minute:   row.Minute,
		})
	}

	records, err := h.matchService.SaveCards(ctx, matchID, inputs)
	if err != nil {
		h.logger.WarnContext(ctx, "save cards failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cardRecordsToDTO(records))
}

func (h *Handler) SaveMatchGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveMatchGoals")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req saveGoalsRequest
	if err := h.decode(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	inputs := make([]usecase.GoalInput, 0, len(req.Goals))
	for _, row := range req.Goals {
		inputs = append(inputs, usecase.GoalInput{
			ScorerID:   row.ScorerID,
			AssisterID: row.AssisterID,
			Minute:     row.Minute,
		})
	}

	goals, assists, err := h.matchService.SaveGoals(ctx, matchID, inputs)
	if err != nil {
		h.logger.WarnContext(ctx, "save goals failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"goalCount":   len(goals),
		"assistCount": len(assists),
	})
}

func matchToDTO(ctx context.Context, m match.Match) matchDTO {
	home, away := match.DisplayResult(m.Result, m.IsHome)
	return matchDTO{
		ID:         m.ID,
		SeasonID:   m.SeasonID,
		OpponentID: m.OpponentID,
		Date:       m.Date.String(),
		Kickoff:    m.Kickoff,
		IsHome:     m.IsHome,
		Squad:      m.Squad,
		HomeResult: home,
		AwayResult: away,
		Status:     string(match.ClassifyStatus(m, calendar.Today(nil))),
	}
}

func matchDetailToDTO(ctx context.Context, detail usecase.MatchDetail) matchDetailDTO {
	dto := matchDetailDTO{
		Match:         matchToDTO(ctx, detail.Match),
		OpponentName:  detail.Opponent.Name,
		Lineup:        lineupEntriesToDTO(detail.Lineup),
		Substitutions: make([]substitutionDTO, 0, len(detail.Substitutions)),
		Cards:         cardRecordsToDTO(detail.Cards),
		Goals:         make([]scoringEventDTO, 0, len(detail.Goals)),
	}
	dto.Match.Status = string(detail.Status)
	dto.Match.HomeResult = detail.HomeResult
	dto.Match.AwayResult = detail.AwayResult
	for _, s := range detail.Substitutions {
		dto.Substitutions = append(dto.Substitutions, substitutionDTO(s))
	}
	for _, g := range detail.Goals {
		dto.Goals = append(dto.Goals, scoringEventDTO{
			ScorerID:   g.ScorerID,
			AssisterID: g.AssisterID,
			Minute:     g.Minute,
		})
	}
	return dto
}

func lineupEntriesToDTO(entries []lineup.Entry) []lineupEntryDTO {
	out := make([]lineupEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, lineupEntryDTO{
			PlayerID:  e.PlayerID,
			IsStarter: e.IsStarter,
			SubIn:     e.SubIn,
			SubOut:    e.SubOut,
		})
	}
	return out
}

func cardRecordsToDTO(records []card.Record) []cardRecordDTO {
	out := make([]cardRecordDTO, 0, len(records))
	for _, rec := range records {
		out = append(out, cardRecordDTO{
			PlayerID:       rec.PlayerID,
			Classification: string(rec.Classification()),
			Minute:         rec.Minute,
		})
	}
	return out
}
