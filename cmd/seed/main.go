// Command seed populates the configured storage backend with a starter set
// of teams and fixtures plus an admin account, going through the same
// repositories and services as the API so every scheduling rule applies.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"

	"github.com/leaguepulse/leaguepulse/internal/app"
	"github.com/leaguepulse/leaguepulse/internal/config"
	"github.com/leaguepulse/leaguepulse/internal/domain/fixture"
	"github.com/leaguepulse/leaguepulse/internal/domain/team"
	"github.com/leaguepulse/leaguepulse/internal/infrastructure/repository/memory"
	idgen "github.com/leaguepulse/leaguepulse/internal/platform/id"
	"github.com/leaguepulse/leaguepulse/internal/platform/logging"
	"github.com/leaguepulse/leaguepulse/internal/platform/token"
	"github.com/leaguepulse/leaguepulse/internal/usecase"
)

const seedWorkers = 4

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}

	logger.Info("seed complete")
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	repos, cleanup, err := app.NewRepositories(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := cleanup(ctx); err != nil {
			logger.Warn("storage cleanup failed", "error", err)
		}
	}()

	sessions, sessionCleanup, err := app.NewSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := sessionCleanup(ctx); err != nil {
			logger.Warn("session cleanup failed", "error", err)
		}
	}()

	generator := idgen.NewRandomGenerator()
	teamSvc := usecase.NewTeamService(repos.Teams, generator)
	fixtureSvc := usecase.NewFixtureService(repos.Fixtures, repos.Teams, generator, logger)
	userSvc := usecase.NewUserService(repos.Users, sessions, token.NewManager(cfg.JWTSecret, cfg.JWTExpiry), generator)

	teamIDs, err := seedTeams(ctx, teamSvc, logger)
	if err != nil {
		return err
	}
	if err := seedFixtures(ctx, fixtureSvc, teamIDs, logger); err != nil {
		return err
	}
	return seedAdmin(ctx, userSvc, logger)
}

// seedTeams inserts the starter teams concurrently and returns a name to id
// map for fixture seeding. Teams that already exist are skipped.
func seedTeams(ctx context.Context, svc *usecase.TeamService, logger *logging.Logger) (map[string]string, error) {
	pool, err := ants.NewPool(seedWorkers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu       sync.Mutex
		teamIDs  = make(map[string]string)
		firstErr error
		skipped  atomic.Int32
		workers  sync.WaitGroup
	)
	recordErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for _, seed := range memory.SeedTeams() {
		seed := seed
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			created, err := svc.CreateTeam(ctx, usecase.CreateTeamInput{
				Name:    seed.Name,
				Manager: seed.Manager,
				Stadium: seed.Stadium,
				Logo:    seed.Logo,
			})
			if errors.Is(err, usecase.ErrConflict) {
				skipped.Add(1)
				existing, lookupErr := findTeamByName(ctx, svc, seed.Name)
				if lookupErr != nil {
					recordErr(lookupErr)
					return
				}
				mu.Lock()
				teamIDs[seed.Name] = existing.ID
				mu.Unlock()
				return
			}
			if err != nil {
				recordErr(err)
				return
			}

			mu.Lock()
			teamIDs[seed.Name] = created.ID
			mu.Unlock()
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit seed task: %w", err)
		}
	}
	workers.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	logger.Info("teams seeded", "created", len(teamIDs), "skipped_existing", skipped.Load())
	return teamIDs, nil
}

func findTeamByName(ctx context.Context, svc *usecase.TeamService, name string) (team.Team, error) {
	matches, err := svc.SearchTeams(ctx, usecase.SearchTeamsInput{SearchTerm: name})
	if err != nil {
		return team.Team{}, err
	}
	for _, item := range matches {
		if team.NormalizeName(item.Name) == team.NormalizeName(name) {
			return item, nil
		}
	}
	return team.Team{}, fmt.Errorf("team %q not found after conflict", name)
}

// seedFixtures runs sequentially: the scheduling validator reads the
// calendar before writing, so concurrent creates could race past the 24h
// rule.
func seedFixtures(ctx context.Context, svc *usecase.FixtureService, teamIDs map[string]string, logger *logging.Logger) error {
	nameByID := make(map[string]string)
	for _, seed := range memory.SeedTeams() {
		nameByID[seed.ID] = seed.Name
	}

	created := 0
	skipped := 0
	for _, seed := range memory.SeedFixtures() {
		homeID, ok := teamIDs[nameByID[seed.HomeTeamID]]
		if !ok {
			return fmt.Errorf("home team for fixture %s missing from seed set", seed.ID)
		}
		awayID, ok := teamIDs[nameByID[seed.AwayTeamID]]
		if !ok {
			return fmt.Errorf("away team for fixture %s missing from seed set", seed.ID)
		}

		_, err := svc.CreateFixture(ctx, usecase.CreateFixtureInput{
			HomeTeamID: homeID,
			AwayTeamID: awayID,
			Date:       seed.Date,
		})
		if errors.Is(err, fixture.ErrDuplicateFixture) {
			skipped++
			continue
		}
		if err != nil {
			return err
		}
		created++
	}

	logger.Info("fixtures seeded", "created", created, "skipped_existing", skipped)
	return nil
}

func seedAdmin(ctx context.Context, svc *usecase.UserService, logger *logging.Logger) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@leaguepulse.dev"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		return fmt.Errorf("SEED_ADMIN_PASSWORD is required")
	}

	_, err := svc.SignUp(ctx, usecase.SignUpInput{
		Name:     "Administrator",
		Email:    email,
		Password: password,
		Role:     "admin",
	})
	if errors.Is(err, usecase.ErrConflict) {
		logger.Info("admin account already exists", "email", email)
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("admin account created", "email", email)
	return nil
}
