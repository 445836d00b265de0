package combat

import (
	"errors"
	"fmt"
)

// Code classifies resolver failures.
type Code string

const (
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeConfig       Code = "CONFIG_ERROR"
)

var (
	ErrNotFound     = &Error{Code: CodeNotFound, Message: "character not found"}
	ErrInvalidInput = &Error{Code: CodeInvalidInput, Message: "invalid input"}
	ErrConfig       = &Error{Code: CodeConfig, Message: "configuration unavailable"}
)

// Error is a classified resolver failure.
type Error struct {
	Code    Code
	Message string
	// Subject names the character a NOT_FOUND error is about.
	Subject string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any Error carrying the same code, so the package sentinels work
// with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// NotFound reports a missing character.
func NotFound(name string) error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf("character %q not found", name), Subject: name}
}

// InvalidInput reports a malformed command.
func InvalidInput(format string, args ...any) error {
	return &Error{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// ConfigError wraps a data or threshold failure.
func ConfigError(msg string, err error) error {
	return &Error{Code: CodeConfig, Message: msg, Err: err}
}

// CodeOf extracts the code of a classified error, or "" for anything else.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
