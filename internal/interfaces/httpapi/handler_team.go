package httpapi

import (
	"net/http"

	"github.com/leaguepulse/leaguepulse/internal/usecase"
)

type createTeamRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Manager string `json:"manager" validate:"required,max=100"`
	Stadium string `json:"stadium" validate:"required,max=150"`
	Logo    string `json:"logo" validate:"omitempty,url"`
}

type updateTeamRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Manager *string `json:"manager" validate:"omitempty,min=1,max=100"`
	Stadium *string `json:"stadium" validate:"omitempty,min=1,max=150"`
	Logo    *string `json:"logo" validate:"omitempty,url"`
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.teamService.CreateTeam(ctx, usecase.CreateTeamInput{
		Name:    req.Name,
		Manager: req.Manager,
		Stadium: req.Stadium,
		Logo:    req.Logo,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "team_name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, "team created", teamToDTO(created))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	var req updateTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.teamService.UpdateTeam(ctx, teamID, usecase.UpdateTeamInput{
		Name:    req.Name,
		Manager: req.Manager,
		Stadium: req.Stadium,
		Logo:    req.Logo,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, "team updated", teamToDTO(updated))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	item, err := h.teamService.GetTeam(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, "team fetched", teamToDTO(item))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	items, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, "teams fetched", teamsToDTO(items))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	if err := h.teamService.DeleteTeam(ctx, teamID); err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, "team deleted", nil)
}

func (h *Handler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchTeams")
	defer span.End()

	query := r.URL.Query()
	page, err := parseIntQuery(query.Get("page"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := parseOptionalIntQuery(query.Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.teamService.SearchTeams(ctx, usecase.SearchTeamsInput{
		Page:       page,
		Limit:      limit,
		SearchTerm: query.Get("search_term"),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "search teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, "teams fetched", teamsToDTO(items))
}
