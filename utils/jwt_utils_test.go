package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateJWTToken("64f1a0b2c3d4e5f6a7b8c9d0", "user@example.com", "Test User", "editor", secret, "facilitydocs", time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := VerifyJWTToken(token, secret)
	assert.NoError(t, err)
	assert.Equal(t, "64f1a0b2c3d4e5f6a7b8c9d0", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "editor", claims.Role)
}

func TestVerifyJWTToken_WrongSecret(t *testing.T) {
	token, err := GenerateJWTToken("64f1a0b2c3d4e5f6a7b8c9d0", "user@example.com", "Test User", "editor", "secret-a", "facilitydocs", time.Hour)
	assert.NoError(t, err)

	_, err = VerifyJWTToken(token, "secret-b")
	assert.Error(t, err)
}

func TestVerifyJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken("64f1a0b2c3d4e5f6a7b8c9d0", "user@example.com", "Test User", "viewer", "secret", "facilitydocs", -time.Minute)
	assert.NoError(t, err)

	_, err = VerifyJWTToken(token, "secret")
	assert.Error(t, err)
}
