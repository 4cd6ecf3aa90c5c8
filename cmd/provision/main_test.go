package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/voicegate/internal/sealed"
	"github.com/dtroode/voicegate/internal/token"
)

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), nil, &out)
	assert.ErrorIs(t, err, errUsage)

	err = run(context.Background(), []string{"frobnicate"}, &out)
	assert.ErrorIs(t, err, errUsage)

	require.NoError(t, run(context.Background(), []string{"help"}, &out))
	assert.Contains(t, out.String(), "device-token")
	assert.Contains(t, out.String(), "replace-factor")
}

func TestRun_Keygen(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"keygen"}, &out))

	var identity string
	for _, line := range strings.Split(out.String(), "\n") {
		if v, ok := strings.CutPrefix(line, "CRYPTO_AGE_IDENTITY="); ok {
			identity = v
		}
	}
	require.NotEmpty(t, identity)

	sealer, err := sealed.NewSealer(identity)
	require.NoError(t, err)
	assert.Contains(t, out.String(), sealer.Recipient())
}

func TestRun_DeviceToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "provision-secret")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"device-token", "--client-id", "kitchen-speaker"}, &out))

	clientID, err := token.NewJWT("provision-secret", time.Hour).ParseDeviceToken(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "kitchen-speaker", clientID)
}

func TestRun_FlagValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "device token without client", args: []string{"device-token"}},
		{name: "user without email", args: []string{"user", "--name", "Ana"}},
		{name: "replace factor without index", args: []string{"replace-factor", "--user-id", "7"}},
		{name: "set active without user", args: []string{"set-active", "--active=false"}},
		{name: "unknown flag", args: []string{"keygen", "--bits", "4096"}},
		{name: "stray argument", args: []string{"keygen", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), tt.args, &bytes.Buffer{})
			assert.ErrorIs(t, err, errUsage)
		})
	}
}
