package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(ttl time.Duration) TokenService {
	return NewTokenService(zerolog.Nop(), "taskboard-test", []byte("test-signing-key"), ttl)
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := newTestTokenService(24 * time.Hour)

	token, expiresAt, err := tokens.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	userID, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenService_VerifyExpired(t *testing.T) {
	tokens := newTestTokenService(-time.Hour)

	token, _, err := tokens.Issue("user-123")
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_VerifyTampered(t *testing.T) {
	tokens := newTestTokenService(24 * time.Hour)

	token, _, err := tokens.Issue("user-123")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = tokens.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_VerifyWrongKey(t *testing.T) {
	tokens := newTestTokenService(24 * time.Hour)
	other := NewTokenService(zerolog.Nop(), "taskboard-test", []byte("another-key"), 24*time.Hour)

	token, _, err := other.Issue("user-123")
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_VerifyWrongIssuer(t *testing.T) {
	tokens := newTestTokenService(24 * time.Hour)
	other := NewTokenService(zerolog.Nop(), "someone-else", []byte("test-signing-key"), 24*time.Hour)

	token, _, err := other.Issue("user-123")
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_VerifyMalformed(t *testing.T) {
	tokens := newTestTokenService(24 * time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := tokens.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
