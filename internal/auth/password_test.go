package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"workdeck/internal/auth"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	require.True(t, auth.ComparePassword(hash, "s3cret"))
	require.False(t, auth.ComparePassword(hash, "wrong"))
}

func TestHashPassword_CostOutOfRangeFallsBack(t *testing.T) {
	hash, err := auth.HashPassword("s3cret", 9000)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, bcrypt.DefaultCost, cost)
}
