package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompatible(t *testing.T) {
	tests := []struct {
		name string
		t1   Type
		t2   Type
		want bool
	}{
		{"int into int", Int, Int, true},
		{"double into double", Double, Double, true},
		{"string into string", String, String, true},
		{"bool into bool", Bool, Bool, true},
		{"null into null", Null, Null, true},
		{"int widens into double", Double, Int, true},
		{"double does not narrow into int", Int, Double, false},
		{"bool into int", Int, Bool, true},
		{"int into bool", Bool, Int, true},
		{"string into int", Int, String, false},
		{"int into string", String, Int, false},
		{"bool into double", Double, Bool, false},
		{"double into bool", Bool, Double, false},
		{"null into int", Int, Null, false},
		{"int into null", Null, Int, false},
		{"string into bool", Bool, String, false},
		{"null into string", String, Null, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compatible(tt.t1, tt.t2))
		})
	}
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "int", Int.String())
	assert.Equal(t, "double", Double.String())
	assert.Equal(t, "string", String.String())
	assert.Equal(t, "bool", Bool.String())
	assert.Equal(t, "null", Null.String())
	assert.Equal(t, "auto", Auto.String())
	assert.Equal(t, "unknown", Type(42).String())
}
