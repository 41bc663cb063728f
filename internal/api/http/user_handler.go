package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/SHIV24116/Quick-Teams-web-app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type UserHandler struct {
	profileSvc  service.ProfileService
	validate    *validator.Validate
	maxFileSize int64
}

func NewUserHandler(profileSvc service.ProfileService, maxFileSize int64) *UserHandler {
	return &UserHandler{
		profileSvc:  profileSvc,
		validate:    validator.New(),
		maxFileSize: maxFileSize,
	}
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := ActorID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	user, groups, err := h.profileSvc.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":   user,
		"groups": groups,
	})
}

type updateProfileRequest struct {
	Name      string `json:"name" validate:"required,max=50"`
	Email     string `json:"email" validate:"omitempty,email"`
	Skills    string `json:"skills" validate:"max=200"`
	LinkedIn  string `json:"linkedin" validate:"omitempty,url"`
	GitHub    string `json:"github" validate:"omitempty,url"`
	Education string `json:"education" validate:"max=200"`
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := ActorID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	user, err := h.profileSvc.UpdateProfile(r.Context(), userID, service.ProfileUpdate{
		Name:      req.Name,
		Email:     req.Email,
		Skills:    req.Skills,
		LinkedIn:  req.LinkedIn,
		GitHub:    req.GitHub,
		Education: req.Education,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) ToggleAvailability(w http.ResponseWriter, r *http.Request) {
	userID, ok := ActorID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	available, err := h.profileSvc.ToggleAvailability(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"available": available})
}

func (h *UserHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	userID, ok := ActorID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "file too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "photo file is required"})
		return
	}
	defer file.Close()

	ext := strings.TrimPrefix(filepath.Ext(header.Filename), ".")
	filename, err := h.profileSvc.AttachPhoto(r.Context(), userID, ext, file)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"photo": filename})
}

func (h *UserHandler) ServePhoto(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	reader, err := h.profileSvc.OpenPhoto(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", contentTypeForPhoto(name))
	if _, err := io.Copy(w, reader); err != nil {
		return
	}
}

func contentTypeForPhoto(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
