package middleware

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/voicegate/internal/logger"
	"github.com/dtroode/voicegate/internal/model"
)

var (
	errMissingToken = errors.New("missing device token")
	errInvalidToken = errors.New("invalid device token")
)

// Authenticate validates device tokens and injects the client identifier into the context.
type Authenticate struct {
	tokens         model.DeviceTokenManager
	contextManager model.ClientContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens model.DeviceTokenManager, contextManager model.ClientContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, contextManager: contextManager, logger: logger}
}

// AuthFunc parses the authorization header and returns a context carrying the client identifier.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	var tokenString string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if authHeaders := md.Get("authorization"); len(authHeaders) > 0 {
			tokenString = strings.TrimSpace(strings.TrimPrefix(authHeaders[0], "Bearer "))
		}
	}

	clientID, err := m.authenticateDevice(tokenString)
	if err != nil {
		m.logger.Debug("Authenticate middleware: rejected device", "error", err.Error())
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	return m.contextManager.SetClientIDToContext(ctx, clientID), nil
}

func (m *Authenticate) authenticateDevice(tokenString string) (string, error) {
	if tokenString == "" {
		return "", errMissingToken
	}

	clientID, err := m.tokens.ParseDeviceToken(tokenString)
	if err != nil || clientID == "" {
		return "", errInvalidToken
	}

	return clientID, nil
}
