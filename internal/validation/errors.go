package validation

import (
	"errors"

	"scanpro/internal/i18n"
)

// ErrNotValid is wrapped by every validation error.
var ErrNotValid = errors.New("not valid")

// Error is a client-side validation failure. The request is never sent when one occurs.
type Error struct {
	// Field is the option or input the error refers to.
	Field string
	// Key is the message key in the translation catalogs.
	Key  string
	Args []any
}

func newError(field, key string, args ...any) *Error {
	return &Error{Field: field, Key: key, Args: args}
}

// Error returns the English message.
func (e *Error) Error() string {
	return e.Localize(i18n.Default())
}

// Localize returns the message in the translator's language.
func (e *Error) Localize(t *i18n.Translator) string {
	return t.T(e.Key, e.Args...)
}

func (e *Error) Unwrap() error { return ErrNotValid }
