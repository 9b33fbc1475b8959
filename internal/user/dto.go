package user

import (
	"strings"

	errors "github.com/cims/inventory-management/internal"
	"github.com/cims/inventory-management/internal/core/common/validation"
)

// UpdateProfileDTO carries a profile update; both fields are required.
type UpdateProfileDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (d UpdateProfileDTO) Validate() *errors.AppError {
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Email) == "" {
		return errors.NewValidationError("Name and email are required", errors.ErrCodeMissingFields)
	}
	if !validation.IsValidEmail(d.Email) {
		return errors.NewValidationError("Invalid email format", errors.ErrCodeInvalidEmail)
	}
	return nil
}
