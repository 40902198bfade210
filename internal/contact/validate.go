package contact

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField indicates a required contact field is empty.
var ErrMissingField = errors.New("contact: missing required field")

// FieldError names the first empty field found by ValidateFields.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField, e.Field)
}

func (e *FieldError) Unwrap() error {
	return ErrMissingField
}

// ValidateFields checks that all three fields are present. Whitespace-only
// values count as empty. Callers run this before Add or Update.
func ValidateFields(nome, email, telefone string) error {
	fields := []struct {
		name  string
		value string
	}{
		{"nome", nome},
		{"email", email},
		{"telefone", telefone},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &FieldError{Field: f.name}
		}
	}
	return nil
}
