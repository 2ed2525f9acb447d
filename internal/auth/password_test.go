package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/concord-mediation/concord/internal/shared"
)

// Fast cost keeps the suite quick; the hashing path is identical.
func newTestCredentialService() *CredentialService {
	return &CredentialService{cost: bcrypt.MinCost}
}

func TestHashVerifyRoundTrip(t *testing.T) {
	svc := newTestCredentialService()

	hash, err := svc.Hash("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)
	require.True(t, strings.HasPrefix(hash, "$2a$"))

	ok, err := svc.Verify("secret1", hash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.Verify("secret2", hash)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHashRejectsShortPassword(t *testing.T) {
	svc := newTestCredentialService()

	_, err := svc.Hash("12345")
	require.ErrorIs(t, err, shared.ErrValidation)

	_, err = svc.Hash("123456")
	require.NoError(t, err)
}

func TestHashCountsCharactersNotBytes(t *testing.T) {
	svc := newTestCredentialService()

	// Two characters encoded as six bytes is still too short.
	_, err := svc.Hash("€€")
	require.ErrorIs(t, err, shared.ErrValidation)

	hash, err := svc.Hash("€€€€€€")
	require.NoError(t, err)

	ok, err := svc.Verify("€€€€€€", hash)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestHashRejectsOverlongPassword(t *testing.T) {
	svc := newTestCredentialService()

	_, err := svc.Hash(strings.Repeat("a", maxPasswordBytes+1))
	require.ErrorIs(t, err, shared.ErrValidation)

	hash, err := svc.Hash(strings.Repeat("a", maxPasswordBytes))
	require.NoError(t, err)

	// A wrong over-long password at verification is a plain mismatch.
	ok, err := svc.Verify(strings.Repeat("b", 100), hash)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHashSaltsIndependently(t *testing.T) {
	svc := newTestCredentialService()

	first, err := svc.Hash("secret1")
	require.NoError(t, err)
	second, err := svc.Hash("secret1")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	for _, hash := range []string{first, second} {
		ok, err := svc.Verify("secret1", hash)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestVerifyCorruptStoredHash(t *testing.T) {
	svc := newTestCredentialService()

	ok, err := svc.Verify("secret1", "not-a-bcrypt-hash")
	require.False(t, ok)
	require.True(t, errors.Is(err, ErrCorruptCredential))
}
