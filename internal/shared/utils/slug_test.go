package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already normalized", "jdoe", "jdoe"},
		{"uppercase", "JDoe", "jdoe"},
		{"surrounding whitespace", "  jdoe  ", "jdoe"},
		{"internal whitespace", "j doe", "jdoe"},
		{"tabs and newlines", "j\tdo\ne", "jdoe"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSlug(tt.input))
		})
	}
}

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Jane Doe", "jane-doe"},
		{"Jane  Doe / ACME", "jane-doe-acme"},
		{"--Jane--", "jane"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GenerateSlug(tt.input))
	}
}
