package model

import (
	"context"
	"io"
	"net"
)

// SecurityLayer opens listeners for the gRPC server.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a startable network server.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}

// DeviceTokenManager issues and validates device tokens carrying the client identifier.
type DeviceTokenManager interface {
	IssueDeviceToken(clientID string) (string, error)
	ParseDeviceToken(token string) (string, error)
}

// RecordingStorage archives conversation audio.
type RecordingStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
}

// InteractionResult is what the transport returns to a device.
type InteractionResult struct {
	InteractionID string
	Transcript    string
	Reply         Reply
	Audio         Audio
}
