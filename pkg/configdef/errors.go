package configdef

import (
	"fmt"
	"strings"
)

// The four failure kinds raised while constructing a validated
// configuration. All of them surface synchronously from Resolve or from a
// cross-field check, name the offending key(s), and are unrecoverable:
// resolution is deterministic, so re-attempting with the same input yields
// the same failure.

// MissingFieldError reports a required key absent from the raw input.
type MissingFieldError struct {
	Key string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required configuration %q which has no default value", e.Key)
}

// TypeError reports a raw value that cannot be coerced to the field's
// declared type, including numeric values outside a declared range.
type TypeError struct {
	Key   string
	Value string
	Want  Type
	// Reason refines the message, e.g. "out of range [1, 65535]".
	Reason string
}

func (e *TypeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid value %q for configuration %s: %s", e.Value, e.Key, e.Reason)
	}
	return fmt.Sprintf("invalid value %q for configuration %s: expected a %s", e.Value, e.Key, e.Want)
}

// ValidationError reports a coerced value rejected by the field's validator,
// such as a string outside a closed enum set.
type ValidationError struct {
	Key     string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %v for configuration %s: %s", e.Value, e.Key, e.Message)
}

// ConflictError reports a violated invariant that spans multiple fields,
// which no single field-level check can express.
type ConflictError struct {
	Keys    []string
	Message string
}

func (e *ConflictError) Error() string {
	if len(e.Keys) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (keys: %s)", e.Message, strings.Join(e.Keys, ", "))
}
