package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"workdeck/internal/auth"
	"workdeck/internal/core/domain"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tokens := auth.NewTokenManager("round-trip-key", time.Hour)

	token, err := tokens.Issue(domain.User{ID: 42, Name: "Ana Root", Role: domain.RoleAdmin}, time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := tokens.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), principal.UserID)
	require.Equal(t, "Ana Root", principal.Name)
	require.Equal(t, domain.RoleAdmin, principal.Role)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	tokens := auth.NewTokenManager("expiry-key", time.Minute)

	issuedLongAgo := time.Now().Add(-2 * time.Hour)
	token, err := tokens.Issue(domain.User{ID: 7, Name: "Dana Field", Role: domain.RoleMember}, issuedLongAgo)
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_WrongKey(t *testing.T) {
	issuer := auth.NewTokenManager("issuer-key", time.Hour)
	verifier := auth.NewTokenManager("other-key", time.Hour)

	token, err := issuer.Issue(domain.User{ID: 7, Name: "Dana Field", Role: domain.RoleMember}, time.Now())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_UnknownRoleRejected(t *testing.T) {
	tokens := auth.NewTokenManager("role-key", time.Hour)

	token, err := tokens.Issue(domain.User{ID: 7, Name: "Dana Field", Role: "ghost"}, time.Now())
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_GarbageToken(t *testing.T) {
	tokens := auth.NewTokenManager("garbage-key", time.Hour)

	_, err := tokens.Verify("not-a-token")
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_EmptyKey(t *testing.T) {
	tokens := auth.NewTokenManager("", time.Hour)

	_, err := tokens.Issue(domain.User{ID: 1, Name: "Ana Root", Role: domain.RoleAdmin}, time.Now())
	require.ErrorIs(t, err, auth.ErrMissingSigningKey)
}
