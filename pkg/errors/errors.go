package errors

import (
	"fmt"
)

// ParseError represents a config file that could not be read or decoded.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InputError reports numeric text that strict parsing refused.
type InputError struct {
	Field string
	Value string
	Err   error
}

// NewInputError constructs an InputError for the named input field.
func NewInputError(field, value string, err error) error {
	return &InputError{Field: field, Value: value, Err: err}
}

func (e *InputError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s %q: not a finite number", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid input %q: not a finite number", e.Value)
}

// Unwrap exposes the underlying error.
func (e *InputError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FormatError indicates a currency that cannot be used for formatting.
type FormatError struct {
	Currency string
	Err      error
}

// NewFormatError constructs a FormatError for the given currency code.
func NewFormatError(currency string, err error) error {
	return &FormatError{Currency: currency, Err: err}
}

func (e *FormatError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("format error [%s]: %v", e.Currency, e.Err)
	}
	return fmt.Sprintf("format error [%s]", e.Currency)
}

// Unwrap exposes the root error.
func (e *FormatError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
