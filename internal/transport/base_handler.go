package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cims/inventory-management/internal"
	"github.com/cims/inventory-management/pkg/logger"
)

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.L()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// ErrorResponse is the failure envelope every endpoint shares.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes a failure envelope
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{Success: false, Message: message}); err != nil {
		h.Logger.Error("failed to encode error response", "error", err)
	}
}

// HandleServiceError maps a service error onto the response envelope.
// Internal errors keep their cause out of the body and in the log.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		if appErr.Type == internal.ErrorTypeInternal {
			h.Logger.Error("internal error", "error", appErr.Error())
			h.WriteError(w, appErr.StatusCode, "Server error")
			return
		}
		h.WriteError(w, appErr.StatusCode, appErr.Message)
		return
	}

	h.Logger.Error("unexpected error", "error", err)
	h.WriteError(w, http.StatusInternalServerError, "Server error")
}

// ExtractTokenFromHeader extracts the Bearer token from the Authorization header
func (h *BaseHandler) ExtractTokenFromHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return ""
	}
	return token
}
