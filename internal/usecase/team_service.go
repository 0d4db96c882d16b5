package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/leaguepulse/leaguepulse/internal/domain/team"
	"github.com/leaguepulse/leaguepulse/internal/platform/id"
)

type TeamService struct {
	teamRepo team.Repository
	idGen    id.Generator
}

func NewTeamService(teamRepo team.Repository, idGen id.Generator) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		idGen:    idGen,
	}
}

type CreateTeamInput struct {
	Name    string
	Manager string
	Stadium string
	Logo    string
}

func (s *TeamService) CreateTeam(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.FindByName(ctx, name)
	if err != nil {
		return team.Team{}, fmt.Errorf("find team by name: %w", err)
	}
	if exists {
		return team.Team{}, fmt.Errorf("%w: a team with this name already exists", ErrConflict)
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	item := team.Team{
		ID:      newID,
		Name:    name,
		Manager: strings.TrimSpace(input.Manager),
		Stadium: strings.TrimSpace(input.Stadium),
		Logo:    strings.TrimSpace(input.Logo),
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Insert(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}

	return item, nil
}

type UpdateTeamInput struct {
	Name    *string
	Manager *string
	Stadium *string
	Logo    *string
}

func (s *TeamService) UpdateTeam(ctx context.Context, teamID string, input UpdateTeamInput) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	current, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return team.Team{}, fmt.Errorf("%w: team name cannot be empty", ErrInvalidInput)
		}
		// The new name may only collide with the team being updated.
		other, taken, err := s.teamRepo.FindByName(ctx, name)
		if err != nil {
			return team.Team{}, fmt.Errorf("find team by name: %w", err)
		}
		if taken && other.ID != teamID {
			return team.Team{}, fmt.Errorf("%w: this team name has been taken", ErrConflict)
		}
		current.Name = name
	}
	if input.Manager != nil {
		current.Manager = strings.TrimSpace(*input.Manager)
	}
	if input.Stadium != nil {
		current.Stadium = strings.TrimSpace(*input.Stadium)
	}
	if input.Logo != nil {
		current.Logo = strings.TrimSpace(*input.Logo)
	}

	if err := current.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.teamRepo.Update(ctx, current); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}

	return current, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, teamID string) error {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	deleted, err := s.teamRepo.Delete(ctx, teamID)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return nil
}

// SearchTeamsInput's Limit is nil when the caller supplied none; a supplied
// value clamps to 1 instead of falling back to the default.
type SearchTeamsInput struct {
	Page       int
	Limit      *int
	SearchTerm string
}

func (s *TeamService) SearchTeams(ctx context.Context, input SearchTeamsInput) ([]team.Team, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := clampLimit(input.Limit)

	items, err := s.teamRepo.Search(ctx, strings.TrimSpace(input.SearchTerm), (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("search teams: %w", err)
	}

	return items, nil
}
