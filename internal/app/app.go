package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/leaguepulse/leaguepulse/internal/config"
	"github.com/leaguepulse/leaguepulse/internal/domain/fixture"
	"github.com/leaguepulse/leaguepulse/internal/domain/session"
	"github.com/leaguepulse/leaguepulse/internal/domain/team"
	"github.com/leaguepulse/leaguepulse/internal/domain/user"
	"github.com/leaguepulse/leaguepulse/internal/infrastructure/auth"
	"github.com/leaguepulse/leaguepulse/internal/infrastructure/repository/memory"
	"github.com/leaguepulse/leaguepulse/internal/infrastructure/repository/mongodb"
	"github.com/leaguepulse/leaguepulse/internal/infrastructure/sessioncache"
	"github.com/leaguepulse/leaguepulse/internal/interfaces/httpapi"
	idgen "github.com/leaguepulse/leaguepulse/internal/platform/id"
	"github.com/leaguepulse/leaguepulse/internal/platform/logging"
	"github.com/leaguepulse/leaguepulse/internal/platform/token"
	"github.com/leaguepulse/leaguepulse/internal/usecase"
)

// Repositories bundles the storage layer behind the configured driver.
type Repositories struct {
	Teams    team.Repository
	Fixtures fixture.Repository
	Users    user.Repository
}

// NewHTTPServer wires the full service. The returned cleanup releases
// storage and session connections and is safe to call on a nil error path
// only.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(context.Context) error, error) {
	repos, storageCleanup, err := NewRepositories(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	sessions, sessionCleanup, err := NewSessionStore(ctx, cfg)
	if err != nil {
		_ = storageCleanup(ctx)
		return nil, nil, err
	}

	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTExpiry)
	generator := idgen.NewRandomGenerator()

	teamSvc := usecase.NewTeamService(repos.Teams, generator)
	fixtureSvc := usecase.NewFixtureService(repos.Fixtures, repos.Teams, generator, logger)
	userSvc := usecase.NewUserService(repos.Users, sessions, tokens, generator)

	handler := httpapi.NewHandler(teamSvc, fixtureSvc, userSvc, logger)
	verifier := auth.NewSessionVerifier(tokens, sessions)
	router := httpapi.NewRouter(handler, verifier, logger, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitEnabled:   cfg.RateLimitEnabled,
		RateLimitRequests:  cfg.RateLimitRequests,
		RateLimitWindow:    cfg.RateLimitWindow,
		VerboseErrors:      cfg.IsDev(),
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = storageCleanup(ctx)
		_ = sessionCleanup(ctx)
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	cleanup := func(ctx context.Context) error {
		sessionErr := sessionCleanup(ctx)
		if err := storageCleanup(ctx); err != nil {
			return err
		}
		return sessionErr
	}

	return server, cleanup, nil
}

// NewRepositories builds the storage layer for the configured driver.
func NewRepositories(ctx context.Context, cfg config.Config) (Repositories, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.StorageDriver {
	case config.StorageMemory:
		return Repositories{
			Teams:    memory.NewTeamRepository(memory.SeedTeams()),
			Fixtures: memory.NewFixtureRepository(memory.SeedFixtures()),
			Users:    memory.NewUserRepository(nil),
		}, noop, nil

	case config.StorageMongo:
		connectCtx, cancel := context.WithTimeout(ctx, cfg.MongoTimeout)
		defer cancel()

		client, err := mongodb.Connect(connectCtx, cfg.MongoURI)
		if err != nil {
			return Repositories{}, nil, err
		}
		db := client.Database(cfg.MongoDatabase)
		if err := mongodb.EnsureIndexes(connectCtx, db); err != nil {
			_ = client.Disconnect(ctx)
			return Repositories{}, nil, err
		}

		return Repositories{
			Teams:    mongodb.NewTeamRepository(db),
			Fixtures: mongodb.NewFixtureRepository(db),
			Users:    mongodb.NewUserRepository(db),
		}, client.Disconnect, nil

	default:
		return Repositories{}, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// NewSessionStore builds the session layer for the configured driver.
func NewSessionStore(ctx context.Context, cfg config.Config) (session.Store, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.SessionDriver {
	case config.SessionMemory:
		return sessioncache.NewMemory(cfg.SessionTTL), noop, nil

	case config.SessionRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		cleanup := func(context.Context) error { return client.Close() }
		return sessioncache.NewRedis(client, cfg.SessionTTL), cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unknown session driver %q", cfg.SessionDriver)
	}
}
