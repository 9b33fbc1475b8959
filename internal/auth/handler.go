package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	internal "github.com/cims/inventory-management/internal"
	"github.com/cims/inventory-management/internal/transport"
	"github.com/cims/inventory-management/pkg/logger"
)

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

type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	if err := h.Service.Register(dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, RegisterResponse{
		Success: true,
		Message: "Staff account created!",
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := h.Service.Authenticate(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		Token:   result.Token,
		Name:    result.Name,
		Email:   result.Email,
	})
}

// AuthMiddleware gates protected routes on a valid bearer token. The
// identity comes entirely from the verified claims; no store lookup runs
// here, so a deleted user keeps access until the token expires.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, internal.ErrMissingToken.Message)
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			h.WriteError(w, http.StatusUnauthorized, internal.ErrInvalidToken.Message)
			return
		}

		userID, err := strconv.ParseInt(claims.UserID, 10, 64)
		if err != nil {
			h.Logger.Warn("auth middleware: malformed subject in token", "value", claims.UserID)
			h.WriteError(w, http.StatusUnauthorized, internal.ErrInvalidToken.Message)
			return
		}

		ctx := internal.ContextWithUser(r.Context(), &internal.AuthUser{
			ID:    userID,
			Email: claims.Email,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
