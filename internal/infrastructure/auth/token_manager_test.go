package auth

import (
	"testing"
	"time"

	"tractus/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123"

func TestIssueAndParse(t *testing.T) {
	m := NewTokenManager(secret, time.Hour)

	token, exp, err := m.Issue("user-1", entities.RoleGerente)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, entities.RoleGerente, claims.Role)
}

func TestParseRejects(t *testing.T) {
	m := NewTokenManager(secret, time.Hour)

	t.Run("expired", func(t *testing.T) {
		m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, _, err := m.Issue("user-1", entities.RoleAdmin)
		require.NoError(t, err)
		m.now = time.Now

		_, err = m.Parse(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager("another-secret-value-123", time.Hour)
		token, _, err := other.Issue("user-1", entities.RoleAdmin)
		require.NoError(t, err)

		_, err = m.Parse(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		claims := Claims{Role: entities.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Parse(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		token, _, err := m.Issue("user-1", entities.Role("ROOT"))
		require.NoError(t, err)

		_, err = m.Parse(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}
