package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidEmail     ErrorCode = "INVALID_EMAIL"
	ErrCodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	ErrCodeMissingFields    ErrorCode = "MISSING_FIELDS"

	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeMissingToken       ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	ErrCodeUserExists   ErrorCode = "USER_EXISTS"
	ErrCodeEmailInUse   ErrorCode = "EMAIL_IN_USE"
	ErrCodeUserNotFound ErrorCode = "USER_NOT_FOUND"

	ErrCodeItemNameRequired    ErrorCode = "ITEM_NAME_REQUIRED"
	ErrCodeInvalidQuantity     ErrorCode = "INVALID_QUANTITY"
	ErrCodeInvalidReorderLevel ErrorCode = "INVALID_REORDER_LEVEL"
	ErrCodeInvalidExpiryDate   ErrorCode = "INVALID_EXPIRY_DATE"
	ErrCodeItemNotFound        ErrorCode = "ITEM_NOT_FOUND"
)

// AppError is the single error shape that crosses service boundaries. The
// HTTP layer maps it onto the response envelope without inspecting causes.
type AppError struct {
	Type       ErrorType `json:"type"`
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

// NewConflictError reports uniqueness violations. Clients expect these as
// 400 responses, not 409.
func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrInvalidCredentials = NewUnauthorizedError("Invalid email or password", ErrCodeInvalidCredentials)
	ErrMissingToken       = NewUnauthorizedError("missing token", ErrCodeMissingToken)
	ErrInvalidToken       = NewUnauthorizedError("invalid or expired token", ErrCodeInvalidToken)

	ErrUserExists   = NewConflictError("User already exists", ErrCodeUserExists)
	ErrEmailInUse   = NewConflictError("Email already in use", ErrCodeEmailInUse)
	ErrUserNotFound = NewNotFoundError("User not found", ErrCodeUserNotFound)

	ErrItemNotFound = NewNotFoundError("Item not found", ErrCodeItemNotFound)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType `json:"type"`
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
	})
}
