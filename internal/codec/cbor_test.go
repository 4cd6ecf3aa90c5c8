package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/voicegate/internal/model"
)

func TestMarshal_SessionRecord(t *testing.T) {
	userID := int64(42)
	in := model.ClientSession{
		State:             model.StateAuthFactor2,
		CandidateUserID:   &userID,
		PendingFactors:    []string{"c1", "c2"},
		IdentityExpiresAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		FailedAttempts:    1,
	}

	data, err := Marshal(in)
	require.NoError(t, err)

	var out model.ClientSession
	require.NoError(t, Unmarshal(data, &out))

	assert.Equal(t, in.State, out.State)
	require.NotNil(t, out.CandidateUserID)
	assert.Equal(t, userID, *out.CandidateUserID)
	assert.Equal(t, in.PendingFactors, out.PendingFactors)
	assert.True(t, in.IdentityExpiresAt.Equal(out.IdentityExpiresAt))
	assert.Equal(t, 1, out.FailedAttempts)
}

func TestMarshal_Deterministic(t *testing.T) {
	a, err := Marshal(map[string]any{"b": 1, "a": 2, "c": []int{3}})
	require.NoError(t, err)
	b, err := Marshal(map[string]any{"c": []int{3}, "a": 2, "b": 1})
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestMarshal_StateAsText(t *testing.T) {
	data, err := Marshal(model.StateAuthenticated)
	require.NoError(t, err)

	var s string
	require.NoError(t, Unmarshal(data, &s))
	assert.Equal(t, "AUTHENTICATED", s)
}

func TestUnmarshal_Garbage(t *testing.T) {
	var out model.ClientSession
	assert.Error(t, Unmarshal([]byte{0xff, 0x00}, &out))
}
