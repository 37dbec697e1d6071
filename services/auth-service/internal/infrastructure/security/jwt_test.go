package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("access-secret", "refresh-secret")

	access, refresh, err := m.Generate("user-1", "admin")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, Claims{UserID: "user-1", Role: "admin"}, claims)

	sub, err := m.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

func TestTokenManager_RejectsSwappedTokens(t *testing.T) {
	m := NewTokenManager("same", "same")
	access, refresh, err := m.Generate("user-1", "user")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)
	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("a", "r")
	issued := time.Now()
	m.now = func() time.Time { return issued }
	access, _, err := m.Generate("user-1", "user")
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(16 * time.Minute) }
	_, err = m.ValidateAccessToken(access)
	assert.Error(t, err)
}

func TestTokenManager_RefreshTokensAreUnique(t *testing.T) {
	m := NewTokenManager("a", "r")
	_, r1, err := m.Generate("user-1", "user")
	require.NoError(t, err)
	_, r2, err := m.Generate("user-1", "user")
	require.NoError(t, err)
	assert.NotEqual(t, r1, r2)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	access, _, err := NewTokenManager("a", "r").Generate("user-1", "user")
	require.NoError(t, err)

	_, err = NewTokenManager("other", "r").ValidateAccessToken(access)
	assert.Error(t, err)
}
