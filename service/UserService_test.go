package service

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "correct horse battery staple"

func TestTokenRoundTrip(t *testing.T) {
	token, err := signToken(42, testSecret, time.Hour, time.Now().UTC())
	require.NoError(t, err)

	uid, raw, err := parseToken("Token "+token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), uid)
	assert.Equal(t, token, raw)
}

func TestParseTokenRejects(t *testing.T) {
	valid, err := signToken(42, testSecret, time.Hour, time.Now().UTC())
	require.NoError(t, err)

	expired, err := signToken(42, testSecret, time.Hour, time.Now().UTC().Add(-2*time.Hour))
	require.NoError(t, err)

	noUid, err := signToken(0, testSecret, time.Hour, time.Now().UTC())
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"uid": 42}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		secret string
	}{
		{"missing header", "", testSecret},
		{"bearer scheme", "Bearer " + valid, testSecret},
		{"wrong secret", "Token " + valid, "other"},
		{"no secret configured", "Token " + valid, ""},
		{"expired", "Token " + expired, testSecret},
		{"no uid", "Token " + noUid, testSecret},
		{"unsigned", "Token " + none, testSecret},
		{"garbage", "Token abc.def.ghi", testSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseToken(tt.header, tt.secret)
			assert.Error(t, err)
		})
	}
}

func TestSignTokenNeedsSecret(t *testing.T) {
	_, err := signToken(1, "", time.Hour, time.Now())
	assert.Error(t, err)
}

func TestRandomSourceRange(t *testing.T) {
	source := NewRandomSource()
	for i := 0; i < 1000; i++ {
		v := source.Int63n(10)
		assert.True(t, v >= 0 && v < 10)
	}

	source.RenewSeed()
	assert.True(t, source.Int63n(1) == 0)
}
