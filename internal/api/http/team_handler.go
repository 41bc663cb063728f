package http

import (
	"net/http"
	"strconv"

	"github.com/SHIV24116/Quick-Teams-web-app/internal/domain"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/service"

	"github.com/gorilla/mux"
)

type TeamHandler struct {
	teamSvc service.TeamService
}

func NewTeamHandler(teamSvc service.TeamService) *TeamHandler {
	return &TeamHandler{teamSvc: teamSvc}
}

func pathID(r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

func (h *TeamHandler) SendTeamUpRequest(w http.ResponseWriter, r *http.Request) {
	senderID, ok := ActorID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}
	receiverID, ok := pathID(r, "userID")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user id"})
		return
	}

	req, err := h.teamSvc.SendTeamUpRequest(r.Context(), senderID, receiverID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, req)
}

// ListRequests returns the caller's requests. direction=incoming lists
// pending requests addressed to the caller, direction=outgoing lists
// every request the caller has sent. Default is incoming.
func (h *TeamHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := ActorID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	var (
		requests []domain.ConnectionRequest
		err      error
	)
	switch r.URL.Query().Get("direction") {
	case "outgoing":
		requests, err = h.teamSvc.ListOutgoingRequests(r.Context(), userID)
	case "", "incoming":
		requests, err = h.teamSvc.ListIncomingRequests(r.Context(), userID)
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "direction must be incoming or outgoing"})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	if requests == nil {
		requests = []domain.ConnectionRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *TeamHandler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := ActorID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}
	requestID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request id"})
		return
	}

	group, err := h.teamSvc.AcceptRequest(r.Context(), userID, requestID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, group)
}

func (h *TeamHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := ActorID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}
	requestID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request id"})
		return
	}

	req, err := h.teamSvc.RejectRequest(r.Context(), userID, requestID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, req)
}

func (h *TeamHandler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := ActorID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}
	requestID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request id"})
		return
	}

	req, err := h.teamSvc.CancelRequest(r.Context(), userID, requestID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, req)
}

func (h *TeamHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.teamSvc.ListGroups(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	if groups == nil {
		groups = []domain.Group{}
	}
	writeJSON(w, http.StatusOK, groups)
}

func (h *TeamHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	groupID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid group id"})
		return
	}

	group, err := h.teamSvc.GetGroup(r.Context(), groupID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, group)
}

func (h *TeamHandler) JoinGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := ActorID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}
	groupID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid group id"})
		return
	}

	group, err := h.teamSvc.JoinGroup(r.Context(), userID, groupID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, group)
}

func (h *TeamHandler) ListMyGroups(w http.ResponseWriter, r *http.Request) {
	userID, ok := ActorID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	groups, err := h.teamSvc.ListGroupsForUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	if groups == nil {
		groups = []domain.Group{}
	}
	writeJSON(w, http.StatusOK, groups)
}
