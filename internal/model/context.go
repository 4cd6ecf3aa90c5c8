package model

import "context"

// UserContext is the free-form long-term memory of a user.
type UserContext map[string]any

// NewUserContext returns the document every provisioned user starts with.
func NewUserContext() UserContext {
	return UserContext{
		"likes":             []any{},
		"favorite_activity": nil,
		"preferences":       map[string]any{},
	}
}

// ContextStore persists user contexts.
type ContextStore interface {
	GetContext(ctx context.Context, userID int64) (UserContext, error)
	SaveContext(ctx context.Context, userID int64, userContext UserContext) error
}

// ClientContextManager carries the authenticated client identifier through request contexts.
type ClientContextManager interface {
	SetClientIDToContext(ctx context.Context, clientID string) context.Context
	GetClientIDFromContext(ctx context.Context) (string, bool)
}
