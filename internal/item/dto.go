package item

import (
	"strings"

	errors "github.com/cims/inventory-management/internal"
	"github.com/cims/inventory-management/internal/core/common/validation"
)

// CreateItemDTO is the request payload for creating an inventory item.
// Numeric fields are pointers so an absent field takes its documented
// default while a malformed value fails JSON decoding outright.
type CreateItemDTO struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Quantity     *int64 `json:"quantity"`
	ExpiryDate   string `json:"expiryDate"`
	Supplier     string `json:"supplier"`
	ReorderLevel *int64 `json:"reorderLevel"`
}

const (
	DefaultCategory     = "General"
	DefaultReorderLevel = 5
)

func (d CreateItemDTO) Validate() *errors.AppError {
	if strings.TrimSpace(d.Name) == "" {
		return errors.NewValidationError("Item name is required", errors.ErrCodeItemNameRequired)
	}
	if d.ExpiryDate != "" && !validation.IsFutureDate(d.ExpiryDate) {
		return errors.NewValidationError("Expiry date must be a future date", errors.ErrCodeInvalidExpiryDate)
	}
	if d.Quantity != nil && *d.Quantity < 0 {
		return errors.NewValidationError("Quantity must be 0 or more", errors.ErrCodeInvalidQuantity)
	}
	if d.ReorderLevel != nil && *d.ReorderLevel < 0 {
		return errors.NewValidationError("Reorder level must be 0 or more", errors.ErrCodeInvalidReorderLevel)
	}
	return nil
}

// QuantityOrDefault returns the supplied quantity or 0.
func (d CreateItemDTO) QuantityOrDefault() int64 {
	if d.Quantity != nil {
		return *d.Quantity
	}
	return 0
}

// ReorderLevelOrDefault returns the supplied reorder level or 5.
func (d CreateItemDTO) ReorderLevelOrDefault() int64 {
	if d.ReorderLevel != nil {
		return *d.ReorderLevel
	}
	return DefaultReorderLevel
}

// CategoryOrDefault returns the trimmed category, or "General" when blank.
func (d CreateItemDTO) CategoryOrDefault() string {
	c := strings.TrimSpace(d.Category)
	if c == "" {
		return DefaultCategory
	}
	return c
}

// UpdateItemDTO is the partial-update payload. Every field is a pointer:
// nil means "leave untouched", a present value is applied after validation.
// An explicit empty string for ExpiryDate clears the stored expiry.
type UpdateItemDTO struct {
	Name         *string `json:"name"`
	Category     *string `json:"category"`
	Quantity     *int64  `json:"quantity"`
	ExpiryDate   *string `json:"expiryDate"`
	Supplier     *string `json:"supplier"`
	ReorderLevel *int64  `json:"reorderLevel"`
}

func (d UpdateItemDTO) Validate() *errors.AppError {
	if d.Name != nil && strings.TrimSpace(*d.Name) == "" {
		return errors.NewValidationError("Item name cannot be empty", errors.ErrCodeItemNameRequired)
	}
	if d.ExpiryDate != nil && *d.ExpiryDate != "" && !validation.IsFutureDate(*d.ExpiryDate) {
		return errors.NewValidationError("Expiry date must be a future date", errors.ErrCodeInvalidExpiryDate)
	}
	if d.Quantity != nil && *d.Quantity < 0 {
		return errors.NewValidationError("Quantity must be 0 or more", errors.ErrCodeInvalidQuantity)
	}
	if d.ReorderLevel != nil && *d.ReorderLevel < 0 {
		return errors.NewValidationError("Reorder level must be 0 or more", errors.ErrCodeInvalidReorderLevel)
	}
	return nil
}

// IsEmpty reports whether the payload names no fields at all.
func (d UpdateItemDTO) IsEmpty() bool {
	return d.Name == nil && d.Category == nil && d.Quantity == nil &&
		d.ExpiryDate == nil && d.Supplier == nil && d.ReorderLevel == nil
}
