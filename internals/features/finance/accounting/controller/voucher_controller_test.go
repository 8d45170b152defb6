package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchPattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"rent", "%rent%"},
		{"V00012", "%V00012%"},
		{"100%", `%100\%%`},
		{"opening_balance", `%opening\_balance%`},
		{`a\b`, `%a\\b%`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, searchPattern(tt.in), "input %q", tt.in)
	}
}
