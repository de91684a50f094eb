package auth

import (
	"crypto/subtle"
	"strings"
)

// Authorizer checks the raw Authorization header of a request.
type Authorizer interface {
	Authorize(header string) bool
	Enabled() bool
}

// NewAuthorizer returns a bearer token authorizer, or a permissive one when
// token is empty.
func NewAuthorizer(token string) Authorizer {
	if token == "" {
		return PermissiveAuthorizer{}
	}
	return &TokenAuthorizer{token: []byte(token)}
}

// PermissiveAuthorizer always allows access. Used when AUTH_TOKEN is unset.
type PermissiveAuthorizer struct{}

func (PermissiveAuthorizer) Authorize(string) bool { return true }
func (PermissiveAuthorizer) Enabled() bool         { return false }

type TokenAuthorizer struct {
	token []byte
}

func (ta *TokenAuthorizer) Authorize(header string) bool {
	scheme, got, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(strings.TrimSpace(got)), ta.token) == 1
}

func (ta *TokenAuthorizer) Enabled() bool { return true }
