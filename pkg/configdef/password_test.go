package configdef

import (
	"fmt"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordNeverPrints(t *testing.T) {
	p := NewPassword("hunter2")

	assert.Equal(t, "[hidden]", p.String())
	assert.Equal(t, "[hidden]", fmt.Sprintf("%v", p))
	assert.Equal(t, "[hidden]", fmt.Sprintf("%s", p))
	assert.Equal(t, "[hidden]", fmt.Sprintf("%#v", p))
	assert.NotContains(t, fmt.Sprintf("%+v", p), "hunter2")
}

func TestPasswordMarshalText(t *testing.T) {
	out, err := json.Marshal(map[string]*Password{"connection.password": NewPassword("hunter2")})
	require.NoError(t, err)
	assert.Contains(t, string(out), "[hidden]")
	assert.NotContains(t, string(out), "hunter2")
}

func TestPasswordValue(t *testing.T) {
	assert.Equal(t, "hunter2", NewPassword("hunter2").Value())
	assert.Equal(t, "", NewPassword("").Value())
}

func TestPasswordEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Password
		want bool
	}{
		{"same secret", NewPassword("x"), NewPassword("x"), true},
		{"different secret", NewPassword("x"), NewPassword("y"), false},
		{"nil vs set", nil, NewPassword("x"), false},
		{"set vs nil", NewPassword("x"), nil, false},
		{"nil vs nil", nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}
