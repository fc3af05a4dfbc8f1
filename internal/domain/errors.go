package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("introuvable")

// Error is a failure that the user sees as a localized message.
// Key selects the catalog entry, Args fills its placeholders.
type Error struct {
	Key  string
	Args map[string]any
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Key, e.Err)
	}
	return e.Key
}

func (e *Error) Unwrap() error { return e.Err }

// Fail builds an Error for key, wrapping the optional cause.
func Fail(key string, cause error) *Error {
	return &Error{Key: key, Err: cause}
}

// WithArgs sets placeholder values on the error.
func (e *Error) WithArgs(args map[string]any) *Error {
	e.Args = args
	return e
}

// Code extracts the message key from err, or "" when err carries none.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Key
	}
	var se *SetupError
	if errors.As(err, &se) && len(se.Keys) > 0 {
		return se.Keys[0]
	}
	return ""
}

// Args returns the placeholder values carried by err.
func Args(err error) map[string]any {
	var de *Error
	if errors.As(err, &de) {
		return de.Args
	}
	return nil
}

// SetupError aggregates the keys of every step that failed during a guild setup.
type SetupError struct {
	Keys []string
	Err  error
}

func (e *SetupError) Error() string {
	msg := "setup: " + strings.Join(e.Keys, ", ")
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SetupError) Unwrap() error { return e.Err }

// Keys returns every message key carried by err.
func Keys(err error) []string {
	var se *SetupError
	if errors.As(err, &se) {
		return se.Keys
	}
	if k := Code(err); k != "" {
		return []string{k}
	}
	return nil
}

// Outcome is a successful result rendered from the catalog.
type Outcome struct {
	Key  string
	Args map[string]any
}
