package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("secret", 15*time.Minute, 72*time.Hour)

	token, err := m.GenerateAccessToken("user-123", "alice@example.com")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "access", claims.Type)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := NewManager("secret", 15*time.Minute, 72*time.Hour)

	token, err := m.GenerateRefreshToken("user-123")
	require.NoError(t, err)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "refresh", claims.Type)
}

func TestTokenTypeMismatch(t *testing.T) {
	m := NewManager("secret", 15*time.Minute, 72*time.Hour)

	access, err := m.GenerateAccessToken("user-123", "alice@example.com")
	require.NoError(t, err)
	refresh, err := m.GenerateRefreshToken("user-123")
	require.NoError(t, err)

	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)

	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	m := NewManager("secret", 15*time.Minute, 72*time.Hour)
	other := NewManager("different-secret", 15*time.Minute, 72*time.Hour)

	token, err := m.GenerateAccessToken("user-123", "alice@example.com")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewManager("secret", -time.Minute, 72*time.Hour)

	token, err := m.GenerateAccessToken("user-123", "alice@example.com")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	m := NewManager("secret", 15*time.Minute, 72*time.Hour)

	_, err := m.ValidateToken("not.a.token")
	assert.Error(t, err)
}
