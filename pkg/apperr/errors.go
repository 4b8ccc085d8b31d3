package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel business errors. Messages are exactly what clients see, so the
// invalid-credentials text must stay identical for "no such user" and
// "wrong password".
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrInvalidAdminCode   = errors.New("invalid admin registration code")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrAuthRequired       = errors.New("authentication required")
	ErrAdminRequired      = errors.New("admin access required")
	ErrCustomerRequired   = errors.New("customer access required")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// ValidationError aggregates per-field validation messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewValidation builds a ValidationError for a single field.
func NewValidation(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsBusiness reports whether err belongs to the business taxonomy, i.e.
// its message is safe to show to a client. Anything else surfaces as a
// generic internal error.
func IsBusiness(err error) bool {
	if IsValidation(err) {
		return true
	}
	for _, e := range []error{
		ErrInvalidCredentials,
		ErrAccountDeactivated,
		ErrDuplicateEmail,
		ErrInvalidAdminCode,
		ErrWrongPassword,
		ErrAuthRequired,
		ErrAdminRequired,
		ErrCustomerRequired,
		ErrNotFound,
		ErrInvalidToken,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
