// Package sinkerrors provides structured error handling for the connector,
// with error categorization, key-value context and stack capture. It extends
// the standard error chain: wrapped errors stay reachable through errors.Is
// and errors.As, so the typed configuration failures raised by the configdef
// resolver can be wrapped with connector context without losing their kind.
//
// Usage:
//
//	cfg, err := config.New(props)
//	if err != nil {
//	    return sinkerrors.Wrap(err, sinkerrors.ErrorTypeConfig, "refusing to start task").
//	        WithDetail("connector", name)
//	}
package sinkerrors

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrorType categorizes an error for handling strategies, monitoring and
// log filtering.
type ErrorType string

const (
	// ErrorTypeInternal marks unexpected internal failures.
	ErrorTypeInternal ErrorType = "internal"
	// ErrorTypeConfig marks invalid or inconsistent configuration; the
	// hosting framework must refuse to start the task.
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeValidation marks rejected input values.
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConflict marks cross-field or cross-resource conflicts.
	ErrorTypeConflict ErrorType = "conflict"
	// ErrorTypeConnection marks transport failures while talking to
	// Elasticsearch.
	ErrorTypeConnection ErrorType = "connection"
	// ErrorTypeTimeout marks operations that exceeded their deadline.
	ErrorTypeTimeout ErrorType = "timeout"
	// ErrorTypeData marks record conversion or document failures.
	ErrorTypeData ErrorType = "data"
)

// Error is a categorized error with optional key-value details and the call
// stack captured at creation. Instances are not safe for concurrent
// mutation; finish WithDetail calls before sharing.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Details map[string]any
	Stack   []StackFrame
}

// StackFrame is one frame of the captured call stack.
type StackFrame struct {
	Function string
	File     string
	Line     int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail attaches a key-value detail and returns the error for chaining.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a categorized error, capturing the call stack at the point of
// creation.
func New(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Stack:   captureStack(2),
	}
}

// Wrap wraps an existing error with a category and message, preserving the
// original as the cause. If err is already a structured Error its stack is
// kept. Returns nil for a nil err.
func Wrap(err error, errType ErrorType, message string) *Error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		return &Error{
			Type:    errType,
			Message: message,
			Cause:   err,
			Stack:   existing.Stack,
		}
	}
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   err,
		Stack:   captureStack(2),
	}
}

// IsRetryable reports whether the error category is worth retrying.
// Configuration and validation failures are deterministic and never are.
func IsRetryable(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Type {
	case ErrorTypeConnection, ErrorTypeTimeout:
		return true
	default:
		return false
	}
}

// IsType reports whether err carries the given category.
func IsType(err error, errType ErrorType) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Type == errType
}

func captureStack(skip int) []StackFrame {
	const maxFrames = 32
	frames := make([]StackFrame, 0, maxFrames)
	for i := skip; i < maxFrames+skip; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		frames = append(frames, StackFrame{Function: fn.Name(), File: file, Line: line})
	}
	return frames
}
