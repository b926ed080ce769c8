package errors

import (
	"fmt"
	"time"
)

// OperationalError represents enhanced error information for debugging.
//
// It wraps errors with operational context including the canvas being
// targeted and the node kind involved. The layout engine itself never
// fails; this type serves the fallible edges around it (snapshot
// parsing, preset storage, CLI input).
type OperationalError struct {
	Operation  string                 // What operation was being performed
	Canvas     string                 // Which canvas (primary/secondary/single)
	NodeKind   string                 // Which node kind (if applicable)
	Timestamp  time.Time              // When error occurred
	Attributes map[string]interface{} // Additional context (optional)
	Cause      error                  // Underlying error
}

// NewOperationalError creates an OperationalError wrapping an error.
//
// Returns nil if cause is nil (no error to wrap).
//
// Example:
//
//	if err != nil {
//	    return NewOperationalError("loading preset", canvasID, kind, err)
//	}
func NewOperationalError(operation, canvas, nodeKind string, cause error) *OperationalError {
	if cause == nil {
		return nil
	}

	return &OperationalError{
		Operation:  operation,
		Canvas:     canvas,
		NodeKind:   nodeKind,
		Timestamp:  time.Now(),
		Attributes: nil,
		Cause:      cause,
	}
}

// NewOperationalErrorWithAttrs creates an OperationalError with additional attributes.
//
// Returns nil if cause is nil (no error to wrap).
func NewOperationalErrorWithAttrs(operation, canvas, nodeKind string, cause error, attrs map[string]interface{}) *OperationalError {
	if cause == nil {
		return nil
	}

	return &OperationalError{
		Operation:  operation,
		Canvas:     canvas,
		NodeKind:   nodeKind,
		Timestamp:  time.Now(),
		Attributes: attrs,
		Cause:      cause,
	}
}

// Error implements the error interface.
//
// Format: "[timestamp] operation: canvas={id} kind={kind}: {cause}"
// Empty canvas or kind fields are omitted from the message.
func (e *OperationalError) Error() string {
	if e == nil {
		return "<nil OperationalError>"
	}

	timestamp := e.Timestamp.Format(time.RFC3339)

	msg := fmt.Sprintf("[%s] %s", timestamp, e.Operation)
	if e.Canvas != "" {
		msg += fmt.Sprintf(": canvas=%s", e.Canvas)
	}
	if e.NodeKind != "" {
		msg += fmt.Sprintf(" kind=%s", e.NodeKind)
	}
	return fmt.Sprintf("%s: %v", msg, e.Cause)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *OperationalError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}
