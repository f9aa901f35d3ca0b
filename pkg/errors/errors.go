package errors

import (
	"fmt"
)

// ParseError represents a configuration or store file parsing failure with optional line metadata.
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

// ValidationError captures settings or configuration validation issues.
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

// BridgeError represents a failed call through the widget bridge.
// WidgetID is zero for calls that target the default configuration or no
// particular instance.
type BridgeError struct {
	Operation string
	WidgetID  int
	Err       error
}

// NewBridgeError constructs a BridgeError for the given bridge operation.
func NewBridgeError(operation string, widgetID int, err error) error {
	return &BridgeError{Operation: operation, WidgetID: widgetID, Err: err}
}

func (e *BridgeError) Error() string {
	if e == nil {
		return ""
	}
	if e.WidgetID != 0 {
		return fmt.Sprintf("bridge error [%s widget %d]: %v", e.Operation, e.WidgetID, e.Err)
	}
	return fmt.Sprintf("bridge error [%s]: %v", e.Operation, e.Err)
}

// Unwrap exposes the root error.
func (e *BridgeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
