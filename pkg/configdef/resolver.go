package configdef

import (
	"fmt"
	"strconv"
	"strings"
)

// Snapshot is the result of resolving raw input against a registry: a
// mapping from every defined key to its typed value, defaults filled in.
// A snapshot is created once per configuration instance and never mutated;
// concurrent readers need no coordination. Secrets are held as *Password
// values and never round-trip to clear text.
type Snapshot map[string]any

// Resolve parses raw string-keyed input against the registry and produces a
// typed snapshot. Resolution is total over the registry: every defined key
// is either supplied, defaulted, or causes a failure.
//
//   - a required key absent from raw fails with *MissingFieldError;
//   - a value that cannot be coerced to the field's declared type, or a
//     numeric value outside a declared range, fails with *TypeError;
//   - a coerced value rejected by the field's validator fails with
//     *ValidationError.
//
// Keys present in raw but not defined in the registry are ignored; embedded
// namespaces re-parse them through their own registries.
func (r *Registry) Resolve(raw map[string]string) (Snapshot, error) {
	snapshot := make(Snapshot, len(r.declared))
	for _, key := range r.declared {
		f := r.fields[key]
		value, err := r.resolveField(f, raw)
		if err != nil {
			return nil, err
		}
		snapshot[key] = value
	}
	return snapshot, nil
}

func (r *Registry) resolveField(f Field, raw map[string]string) (any, error) {
	rawValue, supplied := raw[f.Key]
	var value any
	if supplied {
		parsed, err := parseValue(f, rawValue)
		if err != nil {
			return nil, err
		}
		value = parsed
	} else {
		if f.Required {
			return nil, &MissingFieldError{Key: f.Key}
		}
		value = f.Default
	}
	if f.Validator != nil && value != nil {
		if err := f.Validator.Validate(f.Key, value); err != nil {
			return nil, err
		}
	}
	return value, nil
}

// parseValue coerces one raw string to the field's declared type. Leading
// and trailing whitespace is not significant for any type.
func parseValue(f Field, raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	switch f.Type {
	case TypeString:
		return trimmed, nil
	case TypeInt:
		n, err := strconv.ParseInt(trimmed, 10, 32)
		if err != nil {
			return nil, &TypeError{Key: f.Key, Value: raw, Want: TypeInt}
		}
		return int(n), nil
	case TypeLong:
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return nil, &TypeError{Key: f.Key, Value: raw, Want: TypeLong}
		}
		return n, nil
	case TypeBool:
		switch strings.ToLower(trimmed) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return nil, &TypeError{Key: f.Key, Value: raw, Want: TypeBool, Reason: `expected "true" or "false"`}
		}
	case TypePassword:
		return NewPassword(trimmed), nil
	case TypeList:
		return parseList(trimmed), nil
	default:
		return nil, &TypeError{Key: f.Key, Value: raw, Reason: fmt.Sprintf("unknown declared type %v", f.Type)}
	}
}

// parseList splits a comma-delimited string into trimmed elements. The empty
// string parses to an empty list, not a one-element list holding "".
func parseList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	list := make([]string, len(parts))
	for i, part := range parts {
		list[i] = strings.TrimSpace(part)
	}
	return list
}

// String returns the string value of key. A nil "null" default reads as the
// empty string. Accessing an undefined key panics: consumers read keys by
// contract, so a bad key is a programming error, not input error.
func (s Snapshot) String(key string) string {
	v := s.value(key)
	if v == nil {
		return ""
	}
	return v.(string)
}

// Int returns the int value of key.
func (s Snapshot) Int(key string) int {
	return s.value(key).(int)
}

// Long returns the int64 value of key.
func (s Snapshot) Long(key string) int64 {
	return s.value(key).(int64)
}

// Bool returns the boolean value of key.
func (s Snapshot) Bool(key string) bool {
	return s.value(key).(bool)
}

// List returns the list value of key; nil when the field defaulted to null.
func (s Snapshot) List(key string) []string {
	v := s.value(key)
	if v == nil {
		return nil
	}
	return v.([]string)
}

// Password returns the secret value of key, or nil when unset.
func (s Snapshot) Password(key string) *Password {
	v := s.value(key)
	if v == nil {
		return nil
	}
	return v.(*Password)
}

func (s Snapshot) value(key string) any {
	v, ok := s[key]
	if !ok {
		panic(fmt.Sprintf("configdef: unknown configuration %q", key))
	}
	return v
}
