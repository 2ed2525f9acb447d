package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/concord-mediation/concord/internal/platform/httpx"
)

// Accepted authorization header schemes. Comparison is case-sensitive.
var acceptedSchemes = []string{"Bearer", "Token"}

// RequireAuth gates routes behind token verification. Every failure yields
// the same 401 envelope; the concrete reason only reaches the log.
func RequireAuth(authority *TokenAuthority, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := identityFromRequest(authority, r)
			if err != nil {
				reason := ReasonMalformed
				var authErr *Error
				if errors.As(err, &authErr) {
					reason = authErr.Reason
				}
				logger.Warn("token rejected",
					slog.String("reason", string(reason)),
					slog.String("path", r.URL.Path))
				httpx.Fail(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			ctx := ContextWithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func identityFromRequest(authority *TokenAuthority, r *http.Request) (Identity, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return Identity{}, &Error{Reason: ReasonMissing}
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || token == "" || !slices.Contains(acceptedSchemes, scheme) {
		return Identity{}, &Error{Reason: ReasonMalformed}
	}
	return authority.Verify(token)
}
