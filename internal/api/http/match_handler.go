package http

import (
	"net/http"

	"github.com/SHIV24116/Quick-Teams-web-app/internal/domain"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/service"
)

type MatchHandler struct {
	matchSvc service.MatchService
}

func NewMatchHandler(matchSvc service.MatchService) *MatchHandler {
	return &MatchHandler{matchSvc: matchSvc}
}

// ListMatches returns available users, narrowed by the optional
// comma-separated skill query.
func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	skill := r.URL.Query().Get("skill")
	users, err := h.matchSvc.MatchBySkills(r.Context(), skill)
	if err != nil {
		writeError(w, err)
		return
	}

	if users == nil {
		users = []domain.User{}
	}
	writeJSON(w, http.StatusOK, users)
}
