package auth

import (
	"context"

	"blog-server/internal/domain"
)

type identityKey struct{}

type tokenKey struct{}

// WithIdentity returns a copy of ctx carrying the authenticated identity and
// the raw token it was decoded from.
func WithIdentity(ctx context.Context, identity domain.Identity, token string) context.Context {
	ctx = context.WithValue(ctx, identityKey{}, identity)
	return context.WithValue(ctx, tokenKey{}, token)
}

// IdentityFrom returns the identity bound to ctx, if any.
func IdentityFrom(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(domain.Identity)
	return identity, ok
}

// TokenFrom returns the raw token bound alongside the identity.
func TokenFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}
