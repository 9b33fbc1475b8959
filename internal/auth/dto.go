package auth

import (
	"strings"

	errors "github.com/cims/inventory-management/internal"
	"github.com/cims/inventory-management/internal/core/common/validation"
)

// RegisterDTO is the transport shape for staff account registration.
type RegisterDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginDTO is the transport shape for login requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate runs the registration checks in order; the first failure wins.
func (d RegisterDTO) Validate() *errors.AppError {
	if strings.TrimSpace(d.Name) == "" ||
		strings.TrimSpace(d.Email) == "" ||
		strings.TrimSpace(d.Password) == "" {
		return errors.NewValidationError("All fields are required", errors.ErrCodeMissingFields)
	}

	v := validation.NewValidator()
	v.Field("email", d.Email).Email()
	v.Field("password", d.Password).
		MinLength(8, "Password must be 8+ chars and include 1 number").
		HasDigit("Password must be 8+ chars and include 1 number")
	return v.Validate()
}

func (d LoginDTO) Validate() *errors.AppError {
	if strings.TrimSpace(d.Email) == "" || strings.TrimSpace(d.Password) == "" {
		return errors.NewValidationError("Email and password are required", errors.ErrCodeMissingFields)
	}
	return nil
}
