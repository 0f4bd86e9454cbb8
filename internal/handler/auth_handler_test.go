package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginEmail(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`"a@b.com"`, "a@b.com"},
		{`""`, ""},
		{`null`, ""},
		{`false`, ""},
		{`true`, "true"},
		{`0`, ""},
		{`-0.0`, ""},
		{`123`, "123"},
		{`1.5e2`, "1.5e2"},
		{`{ "x": 1 }`, `{"x":1}`},
		{`[]`, "[]"},
		{``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, loginEmail(json.RawMessage(tt.raw)))
		})
	}
}

func TestJSONStringIgnoresOtherTypes(t *testing.T) {
	assert.Equal(t, "secret", jsonString(json.RawMessage(`"secret"`)))
	assert.Empty(t, jsonString(json.RawMessage(`123`)))
	assert.Empty(t, jsonString(json.RawMessage(`{"x":1}`)))
	assert.Empty(t, jsonString(nil))
}
