package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/moderation-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 15)

	token, exp, err := tm.GenerateToken("p1", domain.RoleAdmin)
	require.NoError(t, err)
	require.True(t, exp.After(time.Now()))

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "p1", claims.ProfileID)
	require.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 15)
	verifier := NewTokenManager("secret-b", 15)

	token, _, err := issuer.GenerateToken("p1", domain.RoleBuyer)
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	require.Error(t, err)
}

func TestTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 15)
	_, err := tm.ParseToken("not-a-token")
	require.Error(t, err)
}
