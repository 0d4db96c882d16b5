package httpapi

import (
	"net/http"

	"github.com/leaguepulse/leaguepulse/internal/domain/user"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	// Literal segments win over {id} wildcards, so /team/search and
	// /fixture/search never collide with the get-by-id routes.
	mux.HandleFunc("GET /team/search", handler.SearchTeams)
	mux.HandleFunc("GET /fixture/search", handler.SearchFixtures)

	mux.HandleFunc("POST /users/signup", handler.SignUp)
	mux.HandleFunc("POST /users/login", handler.LogIn)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	admin := []string{user.RoleAdmin}

	mux.Handle("POST /team/create", RequireRole(verifier, admin, http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("PATCH /team/{teamID}", RequireRole(verifier, admin, http.HandlerFunc(handler.UpdateTeam)))
	mux.Handle("DELETE /team/{teamID}", RequireRole(verifier, admin, http.HandlerFunc(handler.DeleteTeam)))
	mux.Handle("GET /team", RequireAuth(verifier, http.HandlerFunc(handler.ListTeams)))
	mux.Handle("GET /team/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.GetTeam)))

	mux.Handle("POST /fixture/create", RequireRole(verifier, admin, http.HandlerFunc(handler.CreateFixture)))
	mux.Handle("PATCH /fixture/{fixtureID}", RequireRole(verifier, admin, http.HandlerFunc(handler.UpdateFixture)))
	mux.Handle("DELETE /fixture/{fixtureID}", RequireRole(verifier, admin, http.HandlerFunc(handler.DeleteFixture)))
	mux.Handle("GET /fixture", RequireAuth(verifier, http.HandlerFunc(handler.ListFixtures)))
	mux.Handle("GET /fixture/{fixtureID}", RequireAuth(verifier, http.HandlerFunc(handler.GetFixture)))

	mux.Handle("POST /users/logout", RequireAuth(verifier, http.HandlerFunc(handler.LogOut)))
}
