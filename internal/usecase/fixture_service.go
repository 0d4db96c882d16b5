package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/leaguepulse/leaguepulse/internal/domain/fixture"
	"github.com/leaguepulse/leaguepulse/internal/domain/team"
	"github.com/leaguepulse/leaguepulse/internal/platform/cache"
	"github.com/leaguepulse/leaguepulse/internal/platform/id"
	"github.com/leaguepulse/leaguepulse/internal/platform/logging"
)

const (
	defaultSearchLimit = 50
	searchDateSpan     = 5 // years either side of now when no range given

	// Team-name lookups repeat across search requests; a short TTL bounds
	// how long a renamed team can keep matching its old name.
	teamLookupTTL = 30 * time.Second
)

// clampLimit applies the search page-size rules: an absent limit falls back
// to the default, a supplied one clamps to a minimum of 1.
func clampLimit(limit *int) int {
	if limit == nil {
		return defaultSearchLimit
	}
	if *limit < 1 {
		return 1
	}
	return *limit
}

type FixtureService struct {
	fixtureRepo fixture.Repository
	teamRepo    team.Repository
	idGen       id.Generator
	logger      *logging.Logger
	teamLookups *cache.Store
	now         func() time.Time
}

func NewFixtureService(
	fixtureRepo fixture.Repository,
	teamRepo team.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *FixtureService {
	if logger == nil {
		logger = logging.Default()
	}
	return &FixtureService{
		fixtureRepo: fixtureRepo,
		teamRepo:    teamRepo,
		idGen:       idGen,
		logger:      logger,
		teamLookups: cache.NewStore(teamLookupTTL),
		now:         time.Now,
	}
}

type CreateFixtureInput struct {
	HomeTeamID string
	AwayTeamID string
	Date       time.Time
}

func (s *FixtureService) CreateFixture(ctx context.Context, input CreateFixtureInput) (fixture.Fixture, error) {
	homeID := strings.TrimSpace(input.HomeTeamID)
	awayID := strings.TrimSpace(input.AwayTeamID)
	if homeID == "" || awayID == "" {
		return fixture.Fixture{}, fmt.Errorf("%w: home and away team ids are required", ErrInvalidInput)
	}
	if homeID == awayID {
		return fixture.Fixture{}, fmt.Errorf("%w: home and away teams must be different", ErrInvalidInput)
	}
	if input.Date.IsZero() {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture date is required", ErrInvalidInput)
	}

	if err := s.requireTeam(ctx, homeID); err != nil {
		return fixture.Fixture{}, err
	}
	if err := s.requireTeam(ctx, awayID); err != nil {
		return fixture.Fixture{}, err
	}

	// One window query covers both the duplicate check (same instant) and
	// the 24h clash check, bounds inclusive.
	nearby, err := s.fixtureRepo.ListInvolving(ctx,
		[]string{homeID, awayID},
		input.Date.Add(-fixture.ConflictWindow),
		input.Date.Add(fixture.ConflictWindow),
	)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("list fixtures around date: %w", err)
	}

	if err := fixture.ValidateNew(homeID, awayID, input.Date, nearby, s.now()); err != nil {
		return fixture.Fixture{}, fmt.Errorf("%w: %w", ErrConflict, err)
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("generate fixture id: %w", err)
	}

	item := fixture.Fixture{
		ID:         newID,
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		Date:       input.Date,
		Status:     fixture.StatusPending,
	}
	if err := s.fixtureRepo.Insert(ctx, item); err != nil {
		return fixture.Fixture{}, fmt.Errorf("insert fixture: %w", err)
	}

	return item, nil
}

type UpdateFixtureInput struct {
	HomeTeamID *string
	AwayTeamID *string
	Date       *time.Time
	Status     *string
	Score      *fixture.Score
}

func (s *FixtureService) UpdateFixture(ctx context.Context, fixtureID string, input UpdateFixtureInput) (fixture.Fixture, error) {
	fixtureID = strings.TrimSpace(fixtureID)
	if fixtureID == "" {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	current, exists, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("get fixture by id: %w", err)
	}
	if !exists {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture=%s", ErrNotFound, fixtureID)
	}

	patch := fixture.Patch{
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		Date:       input.Date,
		Score:      input.Score,
	}
	if input.Status != nil {
		status, ok := fixture.ParseStatus(*input.Status)
		if !ok {
			return fixture.Fixture{}, fmt.Errorf("%w: unknown fixture status %q", ErrInvalidInput, *input.Status)
		}
		patch.Status = &status
	}

	if err := fixture.AuthorizeUpdate(current, patch, s.now()); err != nil {
		return fixture.Fixture{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	updated := patch.Apply(current)
	if updated.HomeTeamID == updated.AwayTeamID {
		return fixture.Fixture{}, fmt.Errorf("%w: home and away teams must be different", ErrInvalidInput)
	}
	if patch.HomeTeamID != nil {
		if err := s.requireTeam(ctx, updated.HomeTeamID); err != nil {
			return fixture.Fixture{}, err
		}
	}
	if patch.AwayTeamID != nil {
		if err := s.requireTeam(ctx, updated.AwayTeamID); err != nil {
			return fixture.Fixture{}, err
		}
	}

	if err := s.fixtureRepo.Update(ctx, updated); err != nil {
		return fixture.Fixture{}, fmt.Errorf("update fixture: %w", err)
	}

	return updated, nil
}

func (s *FixtureService) GetFixture(ctx context.Context, fixtureID string) (fixture.Fixture, error) {
	fixtureID = strings.TrimSpace(fixtureID)
	if fixtureID == "" {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	item, exists, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("get fixture by id: %w", err)
	}
	if !exists {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture=%s", ErrNotFound, fixtureID)
	}

	items := []fixture.Fixture{item}
	s.advanceStatuses(ctx, items)
	return items[0], nil
}

func (s *FixtureService) ListFixtures(ctx context.Context) ([]fixture.Fixture, error) {
	items, err := s.fixtureRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}

	s.advanceStatuses(ctx, items)
	return items, nil
}

func (s *FixtureService) DeleteFixture(ctx context.Context, fixtureID string) error {
	fixtureID = strings.TrimSpace(fixtureID)
	if fixtureID == "" {
		return fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	deleted, err := s.fixtureRepo.Delete(ctx, fixtureID)
	if err != nil {
		return fmt.Errorf("delete fixture: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: fixture=%s", ErrNotFound, fixtureID)
	}

	return nil
}

// SearchFixturesInput's Limit is nil when the caller supplied none; a
// supplied value clamps to 1 instead of falling back to the default.
type SearchFixturesInput struct {
	Page     int
	Limit    *int
	FromDate *time.Time
	ToDate   *time.Time
	Status   string
	TeamName string
}

func (s *FixtureService) SearchFixtures(ctx context.Context, input SearchFixturesInput) ([]fixture.Fixture, error) {
	now := s.now()

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := clampLimit(input.Limit)

	from := now.AddDate(-searchDateSpan, 0, 0)
	if input.FromDate != nil {
		from = *input.FromDate
	}
	to := now.AddDate(searchDateSpan, 0, 0)
	if input.ToDate != nil {
		to = *input.ToDate
	}

	filter := fixture.SearchFilter{
		From:  from,
		To:    to,
		Skip:  (page - 1) * limit,
		Limit: limit,
	}

	if trimmed := strings.TrimSpace(input.Status); trimmed != "" {
		status, ok := fixture.ParseStatus(trimmed)
		if !ok {
			return nil, fmt.Errorf("%w: unknown fixture status %q", ErrInvalidInput, trimmed)
		}
		filter.Status = status
	}

	if term := strings.TrimSpace(input.TeamName); term != "" {
		teamIDs, err := s.resolveTeamIDs(ctx, term)
		if err != nil {
			return nil, fmt.Errorf("search teams by term: %w", err)
		}
		// No matching team means no matching fixture; skip the fixture
		// query entirely.
		if len(teamIDs) == 0 {
			return []fixture.Fixture{}, nil
		}
		filter.TeamIDs = teamIDs
	}

	items, err := s.fixtureRepo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search fixtures: %w", err)
	}

	s.advanceStatuses(ctx, items)
	return items, nil
}

// resolveTeamIDs maps a search term to the ids of all matching teams, caching
// the result so bursts of identical searches hit the repository once.
func (s *FixtureService) resolveTeamIDs(ctx context.Context, term string) ([]string, error) {
	key := strings.ToLower(term)
	value, err := s.teamLookups.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		teams, err := s.teamRepo.Search(ctx, term, 0, 0)
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(teams))
		for _, item := range teams {
			ids = append(ids, item.ID)
		}
		return ids, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]string), nil
}

// advanceStatuses runs the lifecycle evaluator over every fixture fetched on
// a read path. Persistence is best effort: racing readers write the same
// target status and a failed write only costs freshness, not correctness.
func (s *FixtureService) advanceStatuses(ctx context.Context, items []fixture.Fixture) {
	now := s.now()
	for i := range items {
		next := fixture.NextStatus(items[i].Status, items[i].Date, now)
		if next == items[i].Status {
			continue
		}
		if err := s.fixtureRepo.UpdateStatus(ctx, items[i].ID, next); err != nil {
			s.logger.WarnContext(ctx, "persist fixture status failed",
				"fixture_id", items[i].ID,
				"status", string(next),
				"error", err,
			)
		}
		items[i].Status = next
	}
}

func (s *FixtureService) requireTeam(ctx context.Context, teamID string) error {
	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return nil
}
