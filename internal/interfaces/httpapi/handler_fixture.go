package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/leaguepulse/leaguepulse/internal/domain/fixture"
	"github.com/leaguepulse/leaguepulse/internal/usecase"
)

type createFixtureRequest struct {
	HomeTeamID string    `json:"home_team_id" validate:"required"`
	AwayTeamID string    `json:"away_team_id" validate:"required,nefield=HomeTeamID"`
	Date       time.Time `json:"date" validate:"required"`
}

type scoreRequest struct {
	Home int `json:"home" validate:"min=0"`
	Away int `json:"away" validate:"min=0"`
}

type updateFixtureRequest struct {
	HomeTeamID *string       `json:"home_team_id" validate:"omitempty,min=1"`
	AwayTeamID *string       `json:"away_team_id" validate:"omitempty,min=1"`
	Date       *time.Time    `json:"date"`
	Status     *string       `json:"status" validate:"omitempty,oneof=pending started completed"`
	Score      *scoreRequest `json:"score"`
}

func (h *Handler) CreateFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateFixture")
	defer span.End()

	var req createFixtureRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.fixtureService.CreateFixture(ctx, usecase.CreateFixtureInput{
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		Date:       req.Date,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create fixture failed",
			"home_team_id", req.HomeTeamID,
			"away_team_id", req.AwayTeamID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, "fixture created", fixtureToDTO(created))
}

func (h *Handler) UpdateFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateFixture")
	defer span.End()

	fixtureID := r.PathValue("fixtureID")
	var req updateFixtureRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.UpdateFixtureInput{
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		Date:       req.Date,
		Status:     req.Status,
	}
	if req.Score != nil {
		input.Score = &fixture.Score{Home: req.Score.Home, Away: req.Score.Away}
	}

	updated, err := h.fixtureService.UpdateFixture(ctx, fixtureID, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update fixture failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, "fixture updated", fixtureToDTO(updated))
}

func (h *Handler) GetFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixture")
	defer span.End()

	fixtureID := r.PathValue("fixtureID")
	item, err := h.fixtureService.GetFixture(ctx, fixtureID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, "fixture fetched", fixtureToDTO(item))
}

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	items, err := h.fixtureService.ListFixtures(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list fixtures failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, "fixtures fetched", fixturesToDTO(items))
}

func (h *Handler) DeleteFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteFixture")
	defer span.End()

	fixtureID := r.PathValue("fixtureID")
	if err := h.fixtureService.DeleteFixture(ctx, fixtureID); err != nil {
		h.logger.WarnContext(ctx, "delete fixture failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, "fixture deleted", nil)
}

func (h *Handler) SearchFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchFixtures")
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
	fromDate, err := parseTimeQuery(query.Get("from_date"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	toDate, err := parseTimeQuery(query.Get("to_date"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.fixtureService.SearchFixtures(ctx, usecase.SearchFixturesInput{
		Page:     page,
		Limit:    limit,
		FromDate: fromDate,
		ToDate:   toDate,
		Status:   query.Get("status"),
		TeamName: query.Get("team_name"),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "search fixtures failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, "fixtures fetched", fixturesToDTO(items))
}

// parseIntQuery treats an absent value as zero, leaving clamping to the
// service layer.
func parseIntQuery(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", usecase.ErrInvalidInput, raw)
	}
	return value, nil
}

// parseOptionalIntQuery keeps absent and zero apart: the service treats a
// missing limit as "use the default" but clamps a supplied one.
func parseOptionalIntQuery(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", usecase.ErrInvalidInput, raw)
	}
	return &value, nil
}

// parseTimeQuery accepts RFC 3339 timestamps or bare dates.
func parseTimeQuery(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("%w: %q is not a valid date", usecase.ErrInvalidInput, raw)
}
