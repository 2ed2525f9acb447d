package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func frozenAuthority(secret string) (*TokenAuthority, *time.Time) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	authority := NewTokenAuthority(secret)
	authority.now = func() time.Time { return now }
	return authority, &now
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	authority, _ := frozenAuthority("test-secret")

	token, err := authority.Issue(Identity{UserID: "u-1", Email: "a@x.com", Name: "a"}, time.Minute)
	require.NoError(t, err)

	identity, err := authority.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "u-1", identity.UserID)
	require.Equal(t, "a@x.com", identity.Email)
	require.Equal(t, "a", identity.Name)
	require.Equal(t, time.Minute, identity.ExpiresAt.Sub(identity.IssuedAt))
}

func TestIssueDefaultTTL(t *testing.T) {
	authority, _ := frozenAuthority("test-secret")

	token, err := authority.Issue(Identity{UserID: "u-1"}, 0)
	require.NoError(t, err)

	identity, err := authority.Verify(token)
	require.NoError(t, err)
	require.Equal(t, DefaultTTL, identity.ExpiresAt.Sub(identity.IssuedAt))
}

func TestVerifyExpiredToken(t *testing.T) {
	authority, now := frozenAuthority("test-secret")

	token, err := authority.Issue(Identity{UserID: "u-1"}, time.Second)
	require.NoError(t, err)

	// Still valid inside the ttl.
	_, err = authority.Verify(token)
	require.NoError(t, err)

	*now = now.Add(2 * time.Second)
	_, err = authority.Verify(token)
	requireReason(t, err, ReasonExpired)
}

func TestVerifyTamperedClaims(t *testing.T) {
	authority, _ := frozenAuthority("test-secret")

	token, err := authority.Issue(Identity{UserID: "u-1", Email: "a@x.com", Name: "a"}, time.Minute)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	forged := strings.Replace(string(payload), `"user_id":"u-1"`, `"user_id":"u-2"`, 1)
	require.NotEqual(t, string(payload), forged)
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(forged))

	_, err = authority.Verify(strings.Join(parts, "."))
	requireReason(t, err, ReasonInvalidSignature)
}

func TestVerifyTamperedSignature(t *testing.T) {
	authority, _ := frozenAuthority("test-secret")

	token, err := authority.Issue(Identity{UserID: "u-1"}, time.Minute)
	require.NoError(t, err)

	tampered := []byte(token)
	i := len(tampered) - 5
	if tampered[i] == 'A' {
		tampered[i] = 'B'
	} else {
		tampered[i] = 'A'
	}

	_, err = authority.Verify(string(tampered))
	requireReason(t, err, ReasonInvalidSignature)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer, _ := frozenAuthority("secret-one")
	verifier, _ := frozenAuthority("secret-two")

	token, err := issuer.Issue(Identity{UserID: "u-1"}, time.Minute)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	requireReason(t, err, ReasonInvalidSignature)
}

func TestVerifyMissingAndMalformed(t *testing.T) {
	authority, _ := frozenAuthority("test-secret")

	_, err := authority.Verify("")
	requireReason(t, err, ReasonMissing)

	_, err = authority.Verify("not-a-token")
	requireReason(t, err, ReasonMalformed)
}

func requireReason(t *testing.T, err error, reason Reason) {
	t.Helper()
	var authErr *Error
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, reason, authErr.Reason)
}
