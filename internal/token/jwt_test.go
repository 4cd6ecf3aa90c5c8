package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestJWT_DeviceToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret", time.Hour)

	tok, err := j.IssueDeviceToken("kitchen-speaker")
	require.NoError(t, err)

	got, err := j.ParseDeviceToken(tok)
	require.NoError(t, err)
	require.Equal(t, "kitchen-speaker", got)
}

func TestJWT_DeviceToken_NoExpiry(t *testing.T) {
	j := NewJWT("secret", 0)

	tok, err := j.IssueDeviceToken("dev-1")
	require.NoError(t, err)

	j.now = func() time.Time { return time.Now().Add(10 * 365 * 24 * time.Hour) }
	got, err := j.ParseDeviceToken(tok)
	require.NoError(t, err)
	require.Equal(t, "dev-1", got)
}

func TestJWT_DeviceToken_Expired(t *testing.T) {
	j := NewJWT("secret", time.Minute)

	tok, err := j.IssueDeviceToken("dev-1")
	require.NoError(t, err)

	j.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = j.ParseDeviceToken(tok)
	require.Error(t, err)
}

func TestJWT_DeviceToken_WrongSecret(t *testing.T) {
	tok, err := NewJWT("secret", time.Hour).IssueDeviceToken("dev-1")
	require.NoError(t, err)

	_, err = NewJWT("other", time.Hour).ParseDeviceToken(tok)
	require.Error(t, err)
}

func TestJWT_TokenType_Mismatch(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "dev-1"},
		TokenType:        "access",
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWT("secret", time.Hour).ParseDeviceToken(tok)
	require.Error(t, err)
}

func TestJWT_EmptyClientID(t *testing.T) {
	_, err := NewJWT("secret", time.Hour).IssueDeviceToken("")
	require.Error(t, err)
}

func TestJWT_Garbage(t *testing.T) {
	_, err := NewJWT("secret", time.Hour).ParseDeviceToken("not-a-token")
	require.Error(t, err)
}
