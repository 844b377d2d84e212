package auth

import (
	"testing"
	"time"

	"vpms_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T, ttlHours int) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLHours = ttlHours
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = nil })
}

func TestTokenRoundtrip(t *testing.T) {
	setTestConfig(t, 12)

	token, err := GenerateToken("user-42")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)

	// Session tokens carry a 12-hour expiry.
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 11*time.Hour)
	assert.LessOrEqual(t, remaining, 12*time.Hour)
}

func TestParseExpiredToken(t *testing.T) {
	setTestConfig(t, 12)

	claims := &Claims{
		UserID: "user-42",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestParseTamperedToken(t *testing.T) {
	setTestConfig(t, 12)

	token, err := GenerateToken("user-42")
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)
}

func TestParseTokenWrongSecret(t *testing.T) {
	setTestConfig(t, 12)

	claims := &Claims{
		UserID: "user-42",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.Error(t, err)
}
