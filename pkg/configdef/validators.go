package configdef

import (
	"fmt"
	"strings"
)

// Validator is a predicate over an already coerced field value. It runs
// after type coercion, for supplied and defaulted values alike (nil "null"
// defaults are skipped). A validator decides which error kind it raises:
// range checks refine the coercion contract and return a *TypeError, while
// membership and custom predicates return a *ValidationError.
type Validator interface {
	Validate(key string, value any) error
}

// ValidatorFunc adapts an ordinary function to the Validator interface.
type ValidatorFunc func(key string, value any) error

func (f ValidatorFunc) Validate(key string, value any) error {
	return f(key, value)
}

// Range restricts a numeric field to the closed interval [Min, Max].
type Range struct {
	Min int64
	Max int64
}

// Between is shorthand for a closed numeric interval.
func Between(minimum, maximum int64) Range {
	return Range{Min: minimum, Max: maximum}
}

// Validate reports values outside the interval as a *TypeError: the range is
// part of the field's numeric contract, not a semantic predicate.
func (r Range) Validate(key string, value any) error {
	var n int64
	switch v := value.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	default:
		return &ValidationError{Key: key, Value: value, Message: "range validator applied to a non-numeric value"}
	}
	if n < r.Min || n > r.Max {
		return &TypeError{
			Key:    key,
			Value:  fmt.Sprintf("%d", n),
			Reason: fmt.Sprintf("value out of range [%d, %d]", r.Min, r.Max),
		}
	}
	return nil
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,...,%d]", r.Min, r.Max)
}

// ValidString restricts a string field to a closed set of legal values.
// Membership is a case-sensitive exact match against the declared literals;
// no normalization is performed, so a value differing only in case is
// rejected. One validator type serves every enum in the connector,
// parameterized by its value set.
type ValidString struct {
	Values []string
}

// OneOf builds a closed-set string validator.
func OneOf(values ...string) ValidString {
	return ValidString{Values: values}
}

func (v ValidString) Validate(key string, value any) error {
	s, ok := value.(string)
	if !ok {
		return &ValidationError{Key: key, Value: value, Message: "string validator applied to a non-string value"}
	}
	for _, legal := range v.Values {
		if s == legal {
			return nil
		}
	}
	return &ValidationError{
		Key:     key,
		Value:   s,
		Message: fmt.Sprintf("string must be one of: %s", strings.Join(v.Values, ", ")),
	}
}

func (v ValidString) String() string {
	return fmt.Sprintf("[%s]", strings.Join(v.Values, ", "))
}

// NonEmptyList rejects list fields that resolve to zero elements.
type NonEmptyList struct{}

func (NonEmptyList) Validate(key string, value any) error {
	list, ok := value.([]string)
	if !ok {
		return &ValidationError{Key: key, Value: value, Message: "list validator applied to a non-list value"}
	}
	if len(list) == 0 {
		return &ValidationError{Key: key, Value: value, Message: "list must contain at least one element"}
	}
	return nil
}
