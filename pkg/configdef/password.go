package configdef

// hiddenValue replaces secrets wherever a Password is converted to text.
const hiddenValue = "[hidden]"

// Password holds a secret string. Its string conversion, Go-syntax
// representation and text/JSON marshalled forms are all redacted, so a
// secret that finds its way into a log line or a rendered document never
// appears in clear text. The secret is only reachable through Value.
type Password struct {
	value string
}

// NewPassword wraps a secret string.
func NewPassword(value string) *Password {
	return &Password{value: value}
}

// Value returns the secret in clear text.
func (p *Password) Value() string {
	return p.value
}

// String implements fmt.Stringer and always returns the redaction marker.
func (p *Password) String() string {
	return hiddenValue
}

// GoString implements fmt.GoStringer so %#v does not leak the secret either.
func (p *Password) GoString() string {
	return hiddenValue
}

// MarshalText keeps the secret out of JSON, YAML and similar encodings.
func (p *Password) MarshalText() ([]byte, error) {
	return []byte(hiddenValue), nil
}

// Equal reports whether both passwords hold the same secret. A nil password
// only equals another nil password.
func (p *Password) Equal(other *Password) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.value == other.value
}
