package httpapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/leaguepulse/leaguepulse/internal/domain/user"
	"github.com/leaguepulse/leaguepulse/internal/infrastructure/auth"
	"github.com/leaguepulse/leaguepulse/internal/infrastructure/repository/memory"
	"github.com/leaguepulse/leaguepulse/internal/infrastructure/sessioncache"
	"github.com/leaguepulse/leaguepulse/internal/platform/id"
	"github.com/leaguepulse/leaguepulse/internal/platform/logging"
	"github.com/leaguepulse/leaguepulse/internal/platform/token"
	"github.com/leaguepulse/leaguepulse/internal/usecase"
)

type testEnv struct {
	router      http.Handler
	userService *usecase.UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	fixtureRepo := memory.NewFixtureRepository(memory.SeedFixtures())
	userRepo := memory.NewUserRepository(nil)
	sessions := sessioncache.NewMemory(time.Hour)
	tokens := token.NewManager("test-secret", time.Hour)
	idGen := id.NewRandomGenerator()
	logger := logging.NewNop()

	teamService := usecase.NewTeamService(teamRepo, idGen)
	fixtureService := usecase.NewFixtureService(fixtureRepo, teamRepo, idGen, logger)
	userService := usecase.NewUserService(userRepo, sessions, tokens, idGen)

	handler := NewHandler(teamService, fixtureService, userService, logger)
	verifier := auth.NewSessionVerifier(tokens, sessions)
	router := NewRouter(handler, verifier, logger, RouterConfig{
		CORSAllowedOrigins: []string{"*"},
	})

	return &testEnv{router: router, userService: userService}
}

func (e *testEnv) do(t *testing.T, method, path, bearer, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var envelope map[string]any
	if rec.Body.Len() > 0 {
		if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("unmarshal %s %s response: %v\n%s", method, path, err, rec.Body.String())
		}
	}
	return rec, envelope
}

func (e *testEnv) signUp(t *testing.T, email, role string) string {
	t.Helper()

	result, err := e.userService.SignUp(t.Context(), usecase.SignUpInput{
		Name:     "Test Account",
		Email:    email,
		Password: "s3cret-pass",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("signup %s failed: %v", email, err)
	}
	return result.Token
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)

	rec, body := env.do(t, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got, _ := body["success"].(bool); !got {
		t.Fatalf("expected success envelope, got %v", body)
	}
}

func TestAuthGating(t *testing.T) {
	env := newTestEnv(t)
	userToken := env.signUp(t, "member@example.com", user.RoleUser)

	t.Run("authenticated route rejects anonymous", func(t *testing.T) {
		rec, _ := env.do(t, http.MethodGet, "/team", "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("authenticated route rejects malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/team", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("authenticated route accepts member", func(t *testing.T) {
		rec, _ := env.do(t, http.MethodGet, "/team", userToken, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("admin route rejects member", func(t *testing.T) {
		rec, _ := env.do(t, http.MethodPost, "/team/create", userToken,
			`{"name":"New FC","manager":"Someone","stadium":"Somewhere"}`)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("public search needs no token", func(t *testing.T) {
		rec, _ := env.do(t, http.MethodGet, "/team/search?search_term=pers", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		rec, _ = env.do(t, http.MethodGet, "/fixture/search", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}

func TestTeamEndpoints(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.signUp(t, "admin@example.com", user.RoleAdmin)

	t.Run("create get update delete", func(t *testing.T) {
		rec, body := env.do(t, http.MethodPost, "/team/create", adminToken,
			`{"name":"Borussia Dortmund","manager":"Niko Kovac","stadium":"Signal Iduna Park"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		data := body["data"].(map[string]any)
		teamID := data["id"].(string)

		rec, body = env.do(t, http.MethodGet, "/team/"+teamID, adminToken, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		rec, body = env.do(t, http.MethodPatch, "/team/"+teamID, adminToken,
			`{"manager":"Edin Terzic"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		data = body["data"].(map[string]any)
		if data["manager"] != "Edin Terzic" {
			t.Fatalf("expected updated manager, got %v", data["manager"])
		}

		rec, _ = env.do(t, http.MethodDelete, "/team/"+teamID, adminToken, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		rec, _ = env.do(t, http.MethodGet, "/team/"+teamID, adminToken, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", rec.Code)
		}
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		rec, _ := env.do(t, http.MethodPost, "/team/create", adminToken,
			`{"name":"arsenal","manager":"Somebody","stadium":"Somewhere"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("unknown json fields are rejected", func(t *testing.T) {
		rec, _ := env.do(t, http.MethodPost, "/team/create", adminToken,
			`{"name":"X FC","manager":"M","stadium":"S","surprise":true}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestFixtureEndpoints(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.signUp(t, "admin@example.com", user.RoleAdmin)

	kickoff := time.Now().UTC().Add(30 * 24 * time.Hour).Truncate(time.Second)
	payload := fmt.Sprintf(`{"home_team_id":"tm-arsenal","away_team_id":"tm-persija","date":%q}`,
		kickoff.Format(time.RFC3339))

	rec, body := env.do(t, http.MethodPost, "/fixture/create", adminToken, payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	data := body["data"].(map[string]any)
	fixtureID := data["id"].(string)
	if data["status"] != "pending" {
		t.Fatalf("expected pending status, got %v", data["status"])
	}

	t.Run("duplicate create is rejected", func(t *testing.T) {
		rec, _ := env.do(t, http.MethodPost, "/fixture/create", adminToken, payload)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("same team both sides is rejected", func(t *testing.T) {
		bad := fmt.Sprintf(`{"home_team_id":"tm-arsenal","away_team_id":"tm-arsenal","date":%q}`,
			kickoff.Add(90*24*time.Hour).Format(time.RFC3339))
		rec, _ := env.do(t, http.MethodPost, "/fixture/create", adminToken, bad)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("score before kickoff is rejected", func(t *testing.T) {
		rec, _ := env.do(t, http.MethodPatch, "/fixture/"+fixtureID, adminToken,
			`{"score":{"home":1,"away":0}}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("get and list", func(t *testing.T) {
		rec, _ := env.do(t, http.MethodGet, "/fixture/"+fixtureID, adminToken, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		rec, _ = env.do(t, http.MethodGet, "/fixture", adminToken, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("search with filters", func(t *testing.T) {
		rec, body := env.do(t, http.MethodGet, "/fixture/search?team_name=arsenal&status=pending", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		items, _ := body["data"].([]any)
		if len(items) == 0 {
			t.Fatal("expected at least one fixture for arsenal")
		}

		rec, _ = env.do(t, http.MethodGet, "/fixture/search?status=halftime", "", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown status, got %d", rec.Code)
		}

		rec, _ = env.do(t, http.MethodGet, "/fixture/search?from_date=yesterday", "", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for malformed date, got %d", rec.Code)
		}

		// A supplied limit clamps to 1; it must not fall back to the default
		// page size.
		rec, body = env.do(t, http.MethodGet, "/fixture/search?limit=0", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		items, _ = body["data"].([]any)
		if len(items) != 1 {
			t.Fatalf("expected exactly 1 fixture for limit=0, got %d", len(items))
		}
	})

	t.Run("delete", func(t *testing.T) {
		rec, _ := env.do(t, http.MethodDelete, "/fixture/"+fixtureID, adminToken, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		rec, _ = env.do(t, http.MethodDelete, "/fixture/"+fixtureID, adminToken, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestUserEndpoints(t *testing.T) {
	env := newTestEnv(t)

	signupBody := `{"name":"Riski","email":"riski@example.com","password":"s3cret-pass","confirm_password":"s3cret-pass"}`

	rec, body := env.do(t, http.MethodPost, "/users/signup", "", signupBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	data := body["data"].(map[string]any)
	if data["token"] == "" {
		t.Fatal("expected token in signup response")
	}
	userObj := data["user"].(map[string]any)
	if _, ok := userObj["password"]; ok {
		t.Fatal("password leaked in response")
	}
	if userObj["role"] != "user" {
		t.Fatalf("expected default role user, got %v", userObj["role"])
	}

	t.Run("duplicate signup", func(t *testing.T) {
		rec, _ := env.do(t, http.MethodPost, "/users/signup", "", signupBody)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("password confirmation mismatch", func(t *testing.T) {
		rec, _ := env.do(t, http.MethodPost, "/users/signup", "",
			`{"name":"X","email":"x@example.com","password":"s3cret-pass","confirm_password":"other-pass"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("login unknown email", func(t *testing.T) {
		rec, _ := env.do(t, http.MethodPost, "/users/login", "",
			`{"email":"nobody@example.com","password":"s3cret-pass"}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("login wrong password", func(t *testing.T) {
		rec, _ := env.do(t, http.MethodPost, "/users/login", "",
			`{"email":"riski@example.com","password":"wrong-pass"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("login then logout revokes the token", func(t *testing.T) {
		rec, body := env.do(t, http.MethodPost, "/users/login", "",
			`{"email":"riski@example.com","password":"s3cret-pass"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		loginToken := body["data"].(map[string]any)["token"].(string)

		rec, _ = env.do(t, http.MethodGet, "/team", loginToken, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 with fresh token, got %d", rec.Code)
		}

		rec, _ = env.do(t, http.MethodPost, "/users/logout", loginToken, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		rec, _ = env.do(t, http.MethodGet, "/team", loginToken, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 after logout, got %d", rec.Code)
		}
	})

	t.Run("new login invalidates the previous token", func(t *testing.T) {
		first := env.signUp(t, "double@example.com", user.RoleUser)

		// A later login replaces the session, so the first token dies.
		rec, body := env.do(t, http.MethodPost, "/users/login", "",
			`{"email":"double@example.com","password":"s3cret-pass"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		second := body["data"].(map[string]any)["token"].(string)

		rec, _ = env.do(t, http.MethodGet, "/team", second, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 with current token, got %d", rec.Code)
		}
		if first != second {
			rec, _ = env.do(t, http.MethodGet, "/team", first, "")
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401 with stale token, got %d", rec.Code)
			}
		}
	})
}
