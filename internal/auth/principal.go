// Package auth carries the request-scoped authorization context. There is no
// process-wide admin switch: each request is evaluated on its own credentials.
package auth

import (
	"context"
	"crypto/subtle"
)

type Role string

const (
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

// Principal describes who is making the current request.
type Principal struct {
	Role Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

type principalKey struct{}

// WithPrincipal returns a child context carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext returns the principal attached to ctx. Requests without one are
// treated as operators.
func FromContext(ctx context.Context) Principal {
	if p, ok := ctx.Value(principalKey{}).(Principal); ok {
		return p
	}
	return Principal{Role: RoleOperator}
}

// Resolve maps a presented admin key to a principal. An empty configured key
// disables admin access entirely.
func Resolve(presented, configured string) Principal {
	if configured == "" || presented == "" {
		return Principal{Role: RoleOperator}
	}
	if subtle.ConstantTimeCompare([]byte(presented), []byte(configured)) == 1 {
		return Principal{Role: RoleAdmin}
	}
	return Principal{Role: RoleOperator}
}
