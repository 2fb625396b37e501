// Package configdef implements the declarative configuration surface used by
// the connector: typed field definitions, ordered registries, and resolution
// of raw string properties into immutable typed snapshots.
//
// A Registry is built exactly once at process start, by composing builder
// functions that each Define a group of fields, and is treated as read-only
// afterwards. Resolution is a pure computation: the same raw input always
// produces the same snapshot or the same error, and any number of goroutines
// may resolve against the same registry without coordination.
//
// Example:
//
//	def := configdef.NewRegistry()
//	def.Define(configdef.Field{
//	    Key:        "batch.size",
//	    Type:       configdef.TypeInt,
//	    Default:    2000,
//	    Importance: configdef.ImportanceMedium,
//	    Doc:        "The number of records to process as a batch.",
//	    Group:      "Connector",
//	})
//
//	snap, err := def.Resolve(map[string]string{"batch.size": "500"})
package configdef

import (
	"fmt"
)

// Type is the declared type of a configuration field. It drives how a raw
// string value is coerced during resolution.
type Type int

const (
	// TypeString is a plain string value.
	TypeString Type = iota
	// TypeInt is a 32-bit integer value.
	TypeInt
	// TypeLong is a 64-bit integer value.
	TypeLong
	// TypeBool is a boolean value; only "true" and "false" are accepted,
	// ignoring case.
	TypeBool
	// TypePassword is a secret string held in a Password wrapper that never
	// prints in clear text.
	TypePassword
	// TypeList is a comma-separated list of strings; elements are trimmed
	// and the empty string parses to an empty list.
	TypeList
)

// String returns the lowercase name of the type as used in error messages
// and rendered documentation.
func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeLong:
		return "long"
	case TypeBool:
		return "boolean"
	case TypePassword:
		return "password"
	case TypeList:
		return "list"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// Importance is a documentation tier for a field. It has no effect on
// resolution.
type Importance int

const (
	ImportanceHigh Importance = iota
	ImportanceMedium
	ImportanceLow
)

func (i Importance) String() string {
	switch i {
	case ImportanceHigh:
		return "high"
	case ImportanceMedium:
		return "medium"
	case ImportanceLow:
		return "low"
	default:
		return fmt.Sprintf("importance(%d)", int(i))
	}
}

// Width is a rendering hint for configuration UIs. It has no effect on
// resolution.
type Width int

const (
	WidthNone Width = iota
	WidthShort
	WidthMedium
	WidthLong
)

// Field declares a single configurable key: its type, default, constraint
// and documentation. Group, OrderInGroup, Width and DisplayName are
// presentation metadata only.
type Field struct {
	// Key is the unique dotted identifier of the field, stable across
	// versions.
	Key string
	// Type determines how raw values are coerced.
	Type Type
	// Required marks a field that must be supplied; resolution fails when it
	// is absent. Required fields have no default.
	Required bool
	// Default is the already-typed value used when the key is absent from
	// the raw input. A nil Default on an optional field is a legal "null"
	// default (e.g. an unset credential).
	Default any
	// Validator, when non-nil, is invoked on the coerced value.
	Validator Validator
	// Importance is a documentation tier; it does not affect resolution.
	Importance Importance
	// Doc is the human-readable description of the field.
	Doc string
	// Group names the documentation group the field belongs to.
	Group string
	// OrderInGroup orders the field within its group when rendering docs.
	OrderInGroup int
	// Width is a rendering hint for configuration UIs.
	Width Width
	// DisplayName is the human label shown for the field.
	DisplayName string
}

// Registry is an ordered mapping from key to Field. It is assembled once,
// synchronously, before any configuration is resolved, and must not be
// mutated afterwards; Resolve only ever reads it.
type Registry struct {
	fields map[string]Field
	// groupOrder records the order in which groups first appear; Keys
	// interleaves declaration order by it.
	groupOrder []string
	// declared records declaration order across the whole registry.
	declared []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{fields: make(map[string]Field)}
}

// Define adds a field to the registry and returns the registry so calls can
// be chained. Defining a duplicate key, an empty key, or a required field
// carrying a default is a programming error in the registry builder and
// panics; registries are composed at process start, well before any raw
// input is seen.
func (r *Registry) Define(f Field) *Registry {
	if f.Key == "" {
		panic("configdef: field with empty key")
	}
	if _, exists := r.fields[f.Key]; exists {
		panic(fmt.Sprintf("configdef: configuration %q defined twice", f.Key))
	}
	if f.Required && f.Default != nil {
		panic(fmt.Sprintf("configdef: required configuration %q must not declare a default", f.Key))
	}
	if !r.hasGroup(f.Group) {
		r.groupOrder = append(r.groupOrder, f.Group)
	}
	r.fields[f.Key] = f
	r.declared = append(r.declared, f.Key)
	return r
}

// Embed merges every field of sub into the registry with its key prefixed by
// prefix, preserving the sub-registry's types, defaults and validators
// verbatim. The copies are placed in the given documentation group starting
// at startOrder. This lets a generic vocabulary (such as client TLS
// settings) be declared once and reused under a connector-specific
// namespace.
func (r *Registry) Embed(prefix, group string, startOrder int, sub *Registry) *Registry {
	for i, key := range sub.Keys() {
		f := sub.fields[key]
		f.Key = prefix + key
		f.Group = group
		f.OrderInGroup = startOrder + i
		r.Define(f)
	}
	return r
}

// Get returns the definition of key.
func (r *Registry) Get(key string) (Field, bool) {
	f, ok := r.fields[key]
	return f, ok
}

// Len returns the number of defined fields.
func (r *Registry) Len() int {
	return len(r.declared)
}

// Keys returns every defined key ordered by group insertion order and, within
// a group, by OrderInGroup with declaration order breaking ties. The ordering
// is used only for documentation rendering; resolution does not depend on it.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.declared))
	for _, group := range r.groupOrder {
		keys = append(keys, r.groupKeys(group)...)
	}
	return keys
}

func (r *Registry) hasGroup(group string) bool {
	for _, g := range r.groupOrder {
		if g == group {
			return true
		}
	}
	return false
}

// groupKeys returns the keys of one group ordered by OrderInGroup, with
// declaration order as the tie-break. Declaration order is already the
// common case, so a stable insertion sort keeps this simple.
func (r *Registry) groupKeys(group string) []string {
	var keys []string
	for _, key := range r.declared {
		if r.fields[key].Group != group {
			continue
		}
		pos := len(keys)
		for pos > 0 && r.fields[keys[pos-1]].OrderInGroup > r.fields[key].OrderInGroup {
			pos--
		}
		keys = append(keys, "")
		copy(keys[pos+1:], keys[pos:])
		keys[pos] = key
	}
	return keys
}
