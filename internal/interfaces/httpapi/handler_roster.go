package httpapi

import (
	"net/http"

	"github.com/immxrko/fc-patron-sub000/internal/usecase"
)

type savePlayerRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Position string `json:"position" validate:"required"`
	Squad    string `json:"squad" validate:"required"`
	Active   bool   `json:"active"`
}

type createOpponentRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	LogoURL string `json:"logoUrl" validate:"omitempty,url"`
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	items, err := h.rosterService.ListSeasons(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetCurrentSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentSeason")
	defer span.End()

	current, err := h.rosterService.CurrentSeason(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get current season failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, current)
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	items, err := h.rosterService.ListPlayers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req savePlayerRequest
	if err := h.decode(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.rosterService.CreatePlayer(ctx, usecase.SavePlayerInput{
		Name:     req.Name,
		Position: req.Position,
		Squad:    req.Squad,
		Active:   req.Active,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, created)
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req savePlayerRequest
	if err := h.decode(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.rosterService.UpdatePlayer(ctx, playerID, usecase.SavePlayerInput{
		Name:     req.Name,
		Position: req.Position,
		Squad:    req.Squad,
		Active:   req.Active,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, updated)
}

func (h *Handler) ListOpponents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListOpponents")
	defer span.End()

	items, err := h.rosterService.ListOpponents(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list opponents failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateOpponent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateOpponent")
	defer span.End()

	var req createOpponentRequest
	if err := h.decode(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.rosterService.CreateOpponent(ctx, req.Name, req.LogoURL)
	if err != nil {
		h.logger.WarnContext(ctx, "create opponent failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, created)
}
