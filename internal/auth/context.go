package auth

import "context"

type identityContextKey struct{}

// ContextWithIdentity stores the verified identity in ctx.
func ContextWithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, identity)
}

// IdentityFromContext extracts the identity placed by RequireAuth. The second
// return is false when the request never passed verification.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityContextKey{}).(Identity)
	return identity, ok
}
