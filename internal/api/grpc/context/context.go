package context

import (
	"context"

	"google.golang.org/grpc/metadata"
)

// clientIDKey is the metadata key carrying the authenticated client identifier.
const clientIDKey string = "x-client-id"

// Manager stores the client identifier in incoming gRPC metadata.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetClientIDToContext returns a context whose incoming metadata carries clientID.
// A client-supplied value under the same key is overwritten.
func (m *Manager) SetClientIDToContext(ctx context.Context, clientID string) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.New(map[string]string{clientIDKey: clientID})
	} else {
		md = md.Copy()
		md.Set(clientIDKey, clientID)
	}

	return metadata.NewIncomingContext(ctx, md)
}

// GetClientIDFromContext returns the client identifier set by SetClientIDToContext.
func (m *Manager) GetClientIDFromContext(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}

	clientIDs := md.Get(clientIDKey)
	if len(clientIDs) == 0 || clientIDs[0] == "" {
		return "", false
	}

	return clientIDs[0], true
}
