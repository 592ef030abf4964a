package utils

import (
	"testing"
	"time"

	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("Secret#123")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("Secret#123", hash))
	assert.False(t, CheckPasswordHash("secret#123", hash))
}

func TestSessionJWT(t *testing.T) {
	token, err := GenerateSessionJWT("session-1", "top-secret", time.Now().Add(time.Hour))
	require.NoError(t, err)

	sessionID, err := ParseJWT(token, "top-secret")
	require.NoError(t, err)
	assert.Equal(t, "session-1", sessionID)

	_, err = ParseJWT(token, "other-secret")
	assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCode(err))
}

func TestSessionJWT_Expired(t *testing.T) {
	token, err := GenerateSessionJWT("session-1", "top-secret", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = ParseJWT(token, "top-secret")
	assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCode(err))
}
