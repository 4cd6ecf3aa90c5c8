package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/voicegate/internal/mocks"
	"github.com/dtroode/voicegate/internal/testutil"
)

func TestAuthenticate_AuthFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		authHeader   string
		parseToken   string
		parsedID     string
		parseErr     error
		wantErr      bool
		expectSetCtx bool
	}{
		{
			name:       "missing authorization header",
			authHeader: "",
			wantErr:    true,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer invalid",
			parseToken: "invalid",
			parseErr:   errors.New("signature is invalid"),
			wantErr:    true,
		},
		{
			name:       "empty subject",
			authHeader: "Bearer token",
			parseToken: "token",
			parsedID:   "",
			wantErr:    true,
		},
		{
			name:         "valid token",
			authHeader:   "Bearer token",
			parseToken:   "token",
			parsedID:     "kitchen-speaker",
			expectSetCtx: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cm := mocks.NewClientContextManager(t)
			tokens := mocks.NewDeviceTokenManager(t)

			if tt.parseToken != "" {
				tokens.On("ParseDeviceToken", tt.parseToken).Return(tt.parsedID, tt.parseErr)
			}
			if tt.expectSetCtx {
				cm.On("SetClientIDToContext", mock.Anything, tt.parsedID).Return(context.Background())
			}

			m := NewAuthenticate(tokens, cm, testutil.MakeNoopLogger())

			ctx := context.Background()
			if tt.authHeader != "" {
				ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", tt.authHeader))
			}

			newCtx, err := m.AuthFunc(ctx)

			if tt.wantErr {
				assert.Error(t, err)
				st, ok := status.FromError(err)
				assert.True(t, ok)
				assert.Equal(t, codes.Unauthenticated, st.Code())
				assert.Nil(t, newCtx)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, newCtx)
			}
		})
	}
}
