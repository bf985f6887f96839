package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordRoundTrip(t *testing.T) {
	hashed, err := HashPassword("s3cret!", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "s3cret!", hashed)

	require.NoError(t, ComparePassword(hashed, "s3cret!"))
	require.Error(t, ComparePassword(hashed, "wrong"))
}
