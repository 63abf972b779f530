package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/kbukum/seqkit/errors"
)

// FieldError is one failed check on a named input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator accumulates failed checks on command input. Checks chain and
// never stop early, so one call reports every bad flag.
type Validator struct {
	errors []FieldError
}

// New creates an empty Validator.
func New() *Validator {
	return &Validator{errors: []FieldError{}}
}

// AddError records a failed check.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{Field: field, Message: message})
}

func (v *Validator) check(ok bool, field, message string) *Validator {
	if !ok {
		v.AddError(field, message)
	}
	return v
}

// HasErrors reports whether any check failed.
func (v *Validator) HasErrors() bool { return len(v.errors) > 0 }

// Errors returns the failed checks in the order they ran.
func (v *Validator) Errors() []FieldError { return v.errors }

// Validate folds the failed checks into one INVALID_INPUT AppError carrying
// them under the "fields" detail, or returns nil.
func (v *Validator) Validate() *errors.AppError {
	if !v.HasErrors() {
		return nil
	}
	parts := make([]string, 0, len(v.errors))
	for _, e := range v.errors {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return errors.Validation(strings.Join(parts, "; ")).WithDetail("fields", v.errors)
}

// Err is Validate as a plain error, so a nil result compares equal to nil.
func (v *Validator) Err() error {
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// Required rejects blank strings.
func (v *Validator) Required(field, value string) *Validator {
	return v.check(strings.TrimSpace(value) != "", field, "is required")
}

// OptionalUUID accepts an empty value or a valid, non-nil UUID.
func (v *Validator) OptionalUUID(field, value string) *Validator {
	if value == "" {
		return v
	}
	if reason := uuidProblem(value); reason != "" {
		v.AddError(field, reason)
	}
	return v
}

// Min rejects counts below minVal.
func (v *Validator) Min(field string, value, minVal int) *Validator {
	return v.check(value >= minVal, field, fmt.Sprintf("must be at least %d", minVal))
}

// NonZero rejects a zero step or divisor.
func (v *Validator) NonZero(field string, value float64) *Validator {
	return v.check(value != 0, field, "must not be zero")
}

// OneOf rejects values outside allowed. Empty values are left to Required.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	return v.check(value == "" || slices.Contains(allowed, value), field,
		"must be one of: "+strings.Join(allowed, ", "))
}

// Custom records message when condition is false.
func (v *Validator) Custom(condition bool, field, message string) *Validator {
	return v.check(condition, field, message)
}

// ValidateUUID parses value as a non-nil UUID.
func ValidateUUID(field, value string) (uuid.UUID, error) {
	if strings.TrimSpace(value) == "" {
		return uuid.Nil, errors.InvalidInput(field, "is required")
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, errors.InvalidInput(field, "must be a valid UUID").WithCause(err)
	}
	if id == uuid.Nil {
		return uuid.Nil, errors.InvalidInput(field, "must not be the nil UUID")
	}
	return id, nil
}

func uuidProblem(value string) string {
	id, err := uuid.Parse(value)
	switch {
	case err != nil:
		return "must be a valid UUID"
	case id == uuid.Nil:
		return "must not be the nil UUID"
	default:
		return ""
	}
}
