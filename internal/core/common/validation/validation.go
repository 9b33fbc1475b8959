package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	errors "github.com/cims/inventory-management/internal"
)

// emailPattern is the shape check used by both registration and profile
// updates: non-whitespace local part, one "@", dot somewhere in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var digitPattern = regexp.MustCompile(`\d`)

type ValidatorFunc func(interface{}) *errors.AppError

type FieldValidator struct {
	FieldName  string
	Value      interface{}
	Validators []ValidatorFunc
}

type ValidationBuilder struct {
	fields []FieldValidator
}

func NewValidator() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make([]FieldValidator, 0),
	}
}

func (v *ValidationBuilder) Field(name string, value interface{}) *FieldValidator {
	fv := FieldValidator{
		FieldName:  name,
		Value:      value,
		Validators: make([]ValidatorFunc, 0),
	}
	v.fields = append(v.fields, fv)
	return &v.fields[len(v.fields)-1]
}

func (fv *FieldValidator) Required(message string) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		switch v := value.(type) {
		case string:
			if strings.TrimSpace(v) == "" {
				return errors.NewValidationError(message, errors.ErrCodeMissingFields)
			}
		case *string:
			if v == nil || strings.TrimSpace(*v) == "" {
				return errors.NewValidationError(message, errors.ErrCodeMissingFields)
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) Email() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok {
			if !emailPattern.MatchString(strings.TrimSpace(v)) {
				return errors.NewValidationError("Invalid email format", errors.ErrCodeInvalidEmail)
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) MinLength(min int, message string) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok {
			if len(v) < min {
				return errors.NewValidationError(message, errors.ErrCodeWeakPassword)
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) HasDigit(message string) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok {
			if !digitPattern.MatchString(v) {
				return errors.NewValidationError(message, errors.ErrCodeWeakPassword)
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) NonNegative(code errors.ErrorCode) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		if v, ok := value.(int64); ok {
			if v < 0 {
				message := fmt.Sprintf("%s must be 0 or more", fv.FieldName)
				return errors.NewValidationError(message, code)
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) Custom(validator func(interface{}) *errors.AppError) *FieldValidator {
	fv.Validators = append(fv.Validators, validator)
	return fv
}

// Validate runs all field validators in declaration order and returns the
// first failure, so callers get one descriptive reason per rejection.
func (v *ValidationBuilder) Validate() *errors.AppError {
	for _, field := range v.fields {
		for _, validator := range field.Validators {
			if err := validator(field.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

// IsValidEmail reports whether the trimmed input matches the email shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// IsFutureDate parses a date string and reports whether it falls strictly
// after today. Both sides are truncated to midnight so the comparison is
// date-only; time-of-day never tips the result. Unparseable input is not a
// future date.
func IsFutureDate(dateString string) bool {
	d, err := ParseDate(dateString)
	if err != nil {
		return false
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())

	return day.After(today)
}

// ParseDate accepts the date-only wire format with an RFC 3339 fallback
// for clients that send full timestamps.
func ParseDate(dateString string) (time.Time, error) {
	s := strings.TrimSpace(dateString)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
