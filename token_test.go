package main

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	jwtSecret = []byte("test-secret")
	issued := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	tok, err := issueToken(42, issued)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	// still inside the 7-day window
	at := func(tm time.Time) jwt.ParserOption {
		return jwt.WithTimeFunc(func() time.Time { return tm })
	}
	userID, err := parseToken(tok, at(issued.Add(6*24*time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenExpiry(t *testing.T) {
	jwtSecret = []byte("test-secret")
	issued := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	tok, err := issueToken(42, issued)
	require.NoError(t, err)

	_, err = parseToken(tok, jwt.WithTimeFunc(func() time.Time {
		return issued.Add(tokenTTL + time.Minute)
	}))
	require.Error(t, err)
	assert.ErrorIs(t, err, errTokenExpired, "past expiry must be reported as expired, not invalid")
}

func TestTokenBadSignature(t *testing.T) {
	jwtSecret = []byte("test-secret")
	tok, err := issueToken(42, time.Now())
	require.NoError(t, err)

	jwtSecret = []byte("a-different-secret")
	_, err = parseToken(tok)
	require.Error(t, err)
	assert.ErrorIs(t, err, errInvalidToken)
	assert.NotErrorIs(t, err, errTokenExpired)
}

func TestTokenMalformed(t *testing.T) {
	jwtSecret = []byte("test-secret")
	_, err := parseToken("not.a.token")
	require.Error(t, err)
	assert.ErrorIs(t, err, errInvalidToken)
}
