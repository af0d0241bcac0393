package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testTokenService() TokenService {
	return TokenService{
		Secret:     []byte("test-secret"),
		Issuer:     "portfolio",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}
}

func TestHashAndVerifyArgon2(t *testing.T) {
	tokens := testTokenService()
	hash, err := tokens.HashPassword("s3cret!")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	assert.True(t, tokens.VerifyPassword("s3cret!", hash))
	assert.False(t, tokens.VerifyPassword("wrong", hash))
}

func TestHashesAreSalted(t *testing.T) {
	tokens := testTokenService()
	first, err := tokens.HashPassword("same input")
	require.NoError(t, err)
	second, err := tokens.HashPassword("same input")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestVerifyPasswordBcryptFallback(t *testing.T) {
	tokens := testTokenService()
	hash, err := bcrypt.GenerateFromPassword([]byte("legacy-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, tokens.VerifyPassword("legacy-pass", string(hash)))
	assert.False(t, tokens.VerifyPassword("wrong", string(hash)))
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	tokens := testTokenService()
	assert.False(t, tokens.VerifyPassword("anything", "$argon2id$garbage"))
	assert.False(t, tokens.VerifyPassword("anything", ""))
}

func TestAccessTokenRoundtrip(t *testing.T) {
	tokens := testTokenService()
	signed, exp, err := tokens.CreateAccessToken("admin-1", "admin@example.com")
	require.NoError(t, err)
	assert.Greater(t, exp, time.Now().Unix())

	parsed, claims, err := tokens.ParseToken(signed)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "access", claims["typ"])
	assert.Equal(t, "admin-1", claims["sub"])
	assert.Equal(t, "admin@example.com", claims["email"])
	assert.Equal(t, "portfolio", claims["iss"])
}

func TestRefreshTokenType(t *testing.T) {
	tokens := testTokenService()
	signed, err := tokens.CreateRefreshToken("admin-1")
	require.NoError(t, err)

	parsed, claims, err := tokens.ParseToken(signed)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "refresh", claims["typ"])
	_, hasEmail := claims["email"]
	assert.False(t, hasEmail)
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	tokens := testTokenService()
	other := testTokenService()
	other.Secret = []byte("different-secret")

	signed, _, err := other.CreateAccessToken("admin-1", "a@b.c")
	require.NoError(t, err)

	_, _, err = tokens.ParseToken(signed)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	tokens := testTokenService()
	tokens.AccessTTL = -time.Minute

	signed, _, err := tokens.CreateAccessToken("admin-1", "a@b.c")
	require.NoError(t, err)

	parsed, _, err := tokens.ParseToken(signed)
	if err == nil {
		assert.False(t, parsed.Valid)
	} else {
		assert.Error(t, err)
	}
}
