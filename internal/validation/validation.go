package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Failure reasons
const (
	ReasonRequired      = "Required"
	ReasonTooShort      = "TooShort"
	ReasonInvalidFormat = "InvalidFormat"
	ReasonMismatch      = "Mismatch"
)

const (
	MinFullNameLen = 3
	MinPasswordLen = 6
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// FieldError describes a single failed rule for a single input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("поле %s: %s", e.Field, e.Reason)
}

// FieldErrors is the aggregate result of validating a whole form:
// every failing field is collected, not only the first one.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return "неверные данные: " + strings.Join(parts, "; ")
}

// Required fails with Required for empty or whitespace-only values.
func Required(field, value string) *FieldError {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Reason: ReasonRequired}
	}
	return nil
}

// MinLen fails with TooShort when the value holds fewer than min runes.
func MinLen(field, value string, min int) *FieldError {
	if utf8.RuneCountInString(value) < min {
		return &FieldError{Field: field, Reason: ReasonTooShort}
	}
	return nil
}

// Email fails with InvalidFormat for absent or malformed addresses.
func Email(field, value string) *FieldError {
	if !emailPattern.MatchString(value) {
		return &FieldError{Field: field, Reason: ReasonInvalidFormat}
	}
	return nil
}

// Match fails with Mismatch when confirm differs from value.
func Match(field, value, confirm string) *FieldError {
	if value != confirm {
		return &FieldError{Field: field, Reason: ReasonMismatch}
	}
	return nil
}

// FullName requires a non-blank name of at least MinFullNameLen runes.
func FullName(field, value string) *FieldError {
	if err := Required(field, value); err != nil {
		return err
	}
	return MinLen(field, value, MinFullNameLen)
}

// Password requires a non-blank password of at least MinPasswordLen runes.
func Password(field, value string) *FieldError {
	if err := Required(field, value); err != nil {
		return err
	}
	return MinLen(field, value, MinPasswordLen)
}

// Collect drops nil results and wraps the rest into a FieldErrors value.
// Returns nil when every rule passed.
func Collect(checks ...*FieldError) FieldErrors {
	var errs FieldErrors
	for _, c := range checks {
		if c != nil {
			errs = append(errs, *c)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
