package http

import (
	"net/http"

	"github.com/SHIV24116/Quick-Teams-web-app/internal/security"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles the handler set the router wires up.
type Handlers struct {
	Auth  *AuthHandler
	User  *UserHandler
	Match *MatchHandler
	Team  *TeamHandler
}

// NewRouter builds the HTTP routing table. Everything under /api/v1
// except the auth endpoints and photo downloads requires a bearer token.
func NewRouter(h Handlers, tokens security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware, MetricsMiddleware)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/register", h.Auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/photos/{name}", h.User.ServePhoto).Methods(http.MethodGet)

	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))

	authed.HandleFunc("/users/me", h.User.GetProfile).Methods(http.MethodGet)
	authed.HandleFunc("/users/me", h.User.UpdateProfile).Methods(http.MethodPut)
	authed.HandleFunc("/users/me/availability", h.User.ToggleAvailability).Methods(http.MethodPost)
	authed.HandleFunc("/users/me/photo", h.User.UploadPhoto).Methods(http.MethodPost)
	authed.HandleFunc("/users/me/groups", h.Team.ListMyGroups).Methods(http.MethodGet)

	authed.HandleFunc("/matches", h.Match.ListMatches).Methods(http.MethodGet)

	authed.HandleFunc("/teamup/{userID}", h.Team.SendTeamUpRequest).Methods(http.MethodPost)
	authed.HandleFunc("/requests", h.Team.ListRequests).Methods(http.MethodGet)
	authed.HandleFunc("/requests/{id}/accept", h.Team.AcceptRequest).Methods(http.MethodPost)
	authed.HandleFunc("/requests/{id}/reject", h.Team.RejectRequest).Methods(http.MethodPost)
	authed.HandleFunc("/requests/{id}/cancel", h.Team.CancelRequest).Methods(http.MethodPost)

	authed.HandleFunc("/groups", h.Team.ListGroups).Methods(http.MethodGet)
	authed.HandleFunc("/groups/{id}", h.Team.GetGroup).Methods(http.MethodGet)
	authed.HandleFunc("/groups/{id}/join", h.Team.JoinGroup).Methods(http.MethodPost)

	return router
}
