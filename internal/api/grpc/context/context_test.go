package context

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/metadata"
)

func TestManager_SetAndGetClientID(t *testing.T) {
	m := NewManager()
	ctx := m.SetClientIDToContext(stdctx.Background(), "kitchen-speaker")

	got, ok := m.GetClientIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "kitchen-speaker", got)
}

func TestManager_GetClientID_NotFound(t *testing.T) {
	m := NewManager()

	_, ok := m.GetClientIDFromContext(stdctx.Background())
	assert.False(t, ok)

	ctx := metadata.NewIncomingContext(stdctx.Background(), metadata.Pairs("x-audio-format", "audio/wav"))
	_, ok = m.GetClientIDFromContext(ctx)
	assert.False(t, ok)
}

func TestManager_SetClientID_OverridesSpoofedValue(t *testing.T) {
	m := NewManager()
	incoming := metadata.Pairs(clientIDKey, "spoofed", "x-audio-format", "audio/wav")
	ctx := metadata.NewIncomingContext(stdctx.Background(), incoming)

	ctx = m.SetClientIDToContext(ctx, "real")

	got, ok := m.GetClientIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "real", got)

	md, _ := metadata.FromIncomingContext(ctx)
	assert.Equal(t, []string{"audio/wav"}, md.Get("x-audio-format"))
	assert.Equal(t, []string{"spoofed"}, incoming.Get(clientIDKey))
}
