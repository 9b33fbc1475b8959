package user

import (
	"encoding/json"
	"log/slog"
	"net/http"

	internal "github.com/cims/inventory-management/internal"
	"github.com/cims/inventory-management/internal/transport"
	"github.com/cims/inventory-management/pkg/logger"
)

type ServiceAPI interface {
	GetProfile(userID int64) (*User, error)
	UpdateProfile(userID int64, dto UpdateProfileDTO) (*User, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.L()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

type ProfileResponse struct {
	Success bool  `json:"success"`
	User    *User `json:"user"`
}

type UpdateProfileResponse struct {
	Success bool   `json:"success"`
	User    *User  `json:"user"`
	Message string `json:"message"`
}

// GetCurrentUser handles GET /users/me
func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	authUser, ok := internal.UserFromContext(r.Context())
	if !ok || authUser == nil {
		h.WriteError(w, http.StatusUnauthorized, internal.ErrMissingToken.Message)
		return
	}

	u, err := h.Service.GetProfile(authUser.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ProfileResponse{Success: true, User: u})
}

// UpdateCurrentUser handles PUT /users/me
func (h *Handler) UpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	authUser, ok := internal.UserFromContext(r.Context())
	if !ok || authUser == nil {
		h.WriteError(w, http.StatusUnauthorized, internal.ErrMissingToken.Message)
		return
	}

	var dto UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Name and email are required")
		return
	}

	u, err := h.Service.UpdateProfile(authUser.ID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, UpdateProfileResponse{
		Success: true,
		User:    u,
		Message: "Profile updated",
	})
}
