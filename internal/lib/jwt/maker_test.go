package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	tokenTTL := 15 * time.Minute
	maker := NewJWTMaker(secretKey, tokenTTL)

	tests := []struct {
		name     string
		userID   int64
		username string
		isStaff  bool
	}{
		{name: "staff user", userID: 1, username: "admin", isStaff: true},
		{name: "regular user", userID: 42, username: "cook", isStaff: false},
		{name: "large id", userID: 1 << 40, username: "user123", isStaff: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.userID, tt.username, tt.isStaff)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.userID, claims.UserID)
			assert.Equal(t, tt.username, claims.Username)
			assert.Equal(t, tt.isStaff, claims.IsStaff)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestJWTMaker_ParseToken_InvalidTokens(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	maker := NewJWTMaker(secretKey, 15*time.Minute)

	validToken, err := maker.GenerateToken(1, "testuser", false)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "malformed token", token: "invalid.token.here"},
		{name: "expired token", token: createToken(t, secretKey, -time.Hour, 1)},
		{name: "wrong secret key", token: createToken(t, "wrong_secret_key", time.Hour, 1)},
		{name: "tampered token", token: validToken + "tampered"},
		{name: "missing user id", token: createToken(t, secretKey, time.Hour, 0)},
		{name: "unexpected algorithm", token: createNoneToken(t)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTMaker_TokenExpiration(t *testing.T) {
	maker := NewJWTMaker("test_secret_key", 100*time.Millisecond)

	token, err := maker.GenerateToken(7, "testuser", false)
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.NotNil(t, claims)

	time.Sleep(1100 * time.Millisecond)

	_, err = maker.ParseToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func createToken(t *testing.T, secretKey string, ttl time.Duration, userID int64) string {
	t.Helper()
	token, err := NewJWTMaker(secretKey, ttl).GenerateToken(userID, "testuser", false)
	require.NoError(t, err)
	return token
}

func createNoneToken(t *testing.T) string {
	t.Helper()
	claims := CustomClaims{
		UserID:   1,
		Username: "testuser",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return token
}
