package config

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by configuration operations.
var (
	// ErrFileNotFound indicates the configuration file doesn't exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrUnsupportedFormat indicates a file extension with no known decoder.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrValidationFailed indicates a value outside its allowed set or range.
	ErrValidationFailed = errors.New("validation failed")
)

// ParseError reports a configuration source that could not be decoded.
// Source is a file path, or "$NAME" for an environment override.
type ParseError struct {
	Source  string
	Setting string // dotted setting name, when known
	Line    int    // 1-based, 0 when the decoder gave no position
	Column  int
	Err     error
}

func (e *ParseError) Error() string {
	where := e.Source
	switch {
	case e.Line > 0 && e.Column > 0:
		where = fmt.Sprintf("%s:%d:%d", e.Source, e.Line, e.Column)
	case e.Line > 0:
		where = fmt.Sprintf("%s:%d", e.Source, e.Line)
	}
	if e.Setting != "" {
		return fmt.Sprintf("bytestring config %s (%s): %v", where, e.Setting, e.Err)
	}
	return fmt.Sprintf("bytestring config %s: %v", where, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FromEnv reports whether the error came from an environment override.
func (e *ParseError) FromEnv() bool {
	return strings.HasPrefix(e.Source, "$")
}

// ValidationError describes a setting that failed validation.
type ValidationError struct {
	Setting string
	Value   any
	Reason  string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Setting, e.Value, e.Reason)
}

// Unwrap returns ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
