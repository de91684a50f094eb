package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorizer(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		header string
		want   bool
	}{
		{"open when unset", "", "", true},
		{"open ignores header", "", "Bearer whatever", true},
		{"match", "s3cret", "Bearer s3cret", true},
		{"scheme case insensitive", "s3cret", "bearer s3cret", true},
		{"wrong token", "s3cret", "Bearer nope", false},
		{"prefix of token", "s3cret", "Bearer s3c", false},
		{"missing header", "s3cret", "", false},
		{"basic scheme", "s3cret", "Basic s3cret", false},
		{"no scheme", "s3cret", "s3cret", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAuthorizer(tt.token)
			assert.Equal(t, tt.token != "", a.Enabled())
			assert.Equal(t, tt.want, a.Authorize(tt.header))
		})
	}
}
