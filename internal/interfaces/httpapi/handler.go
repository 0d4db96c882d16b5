package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/leaguepulse/leaguepulse/internal/domain/fixture"
	"github.com/leaguepulse/leaguepulse/internal/domain/team"
	"github.com/leaguepulse/leaguepulse/internal/domain/user"
	"github.com/leaguepulse/leaguepulse/internal/platform/logging"
	"github.com/leaguepulse/leaguepulse/internal/usecase"
)

type Handler struct {
	teamService    *usecase.TeamService
	fixtureService *usecase.FixtureService
	userService    *usecase.UserService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	fixtureService *usecase.FixtureService,
	userService *usecase.UserService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:    teamService,
		fixtureService: fixtureService,
		userService:    userService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, "ok", map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type teamDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Manager string `json:"manager"`
	Stadium string `json:"stadium"`
	Logo    string `json:"logo,omitempty"`
}

func teamToDTO(item team.Team) teamDTO {
	return teamDTO{
		ID:      item.ID,
		Name:    item.Name,
		Manager: item.Manager,
		Stadium: item.Stadium,
		Logo:    item.Logo,
	}
}

func teamsToDTO(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	return out
}

type scoreDTO struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type fixtureDTO struct {
	ID         string   `json:"id"`
	HomeTeamID string   `json:"home_team_id"`
	AwayTeamID string   `json:"away_team_id"`
	Date       string   `json:"date"`
	Status     string   `json:"status"`
	Score      scoreDTO `json:"score"`
}

func fixtureToDTO(item fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		ID:         item.ID,
		HomeTeamID: item.HomeTeamID,
		AwayTeamID: item.AwayTeamID,
		Date:       item.Date.UTC().Format(time.RFC3339),
		Status:     string(item.Status),
		Score:      scoreDTO{Home: item.Score.Home, Away: item.Score.Away},
	}
}

func fixturesToDTO(items []fixture.Fixture) []fixtureDTO {
	out := make([]fixtureDTO, 0, len(items))
	for _, item := range items {
		out = append(out, fixtureToDTO(item))
	}
	return out
}

// userDTO deliberately has no password field in any form.
type userDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func userToDTO(item user.User) userDTO {
	return userDTO{
		ID:    item.ID,
		Name:  item.Name,
		Email: item.Email,
		Role:  item.Role,
	}
}
