package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/voicegate/internal/config"
	"github.com/dtroode/voicegate/internal/model"
)

func newTestRepository(t *testing.T) (*SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionRepository(client, "test"), mr
}

func TestSessionRepository_GetMissing(t *testing.T) {
	t.Parallel()
	repo, _ := newTestRepository(t)

	session, err := repo.Get(context.Background(), "dev-1")
	require.NoError(t, err)
	assert.Equal(t, model.StateIdle, session.State)
	assert.Zero(t, session.Version)
}

func TestSessionRepository_SaveAndGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, mr := newTestRepository(t)

	userID := int64(7)
	err := repo.Save(ctx, "dev-1", model.ClientSession{
		State:           model.StateAuthFactor1,
		CandidateUserID: &userID,
		PendingFactors:  []string{"c1", "c2"},
	}, time.Hour)
	require.NoError(t, err)

	got, err := repo.Get(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, model.StateAuthFactor1, got.State)
	assert.Equal(t, []string{"c1", "c2"}, got.PendingFactors)
	assert.Equal(t, uint64(1), got.Version)

	assert.Equal(t, time.Hour, mr.TTL("test:session:dev-1"))
}

func TestSessionRepository_SaveRefreshesTTL(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, mr := newTestRepository(t)

	require.NoError(t, repo.Save(ctx, "dev-1", model.ClientSession{State: model.StateAuthenticated}, time.Hour))
	mr.FastForward(50 * time.Minute)

	got, err := repo.Get(ctx, "dev-1")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, "dev-1", got, time.Hour))

	assert.Equal(t, time.Hour, mr.TTL("test:session:dev-1"))
}

func TestSessionRepository_Expires(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, mr := newTestRepository(t)

	require.NoError(t, repo.Save(ctx, "dev-1", model.ClientSession{State: model.StateAuthenticated}, time.Hour))
	mr.FastForward(time.Hour + time.Second)

	got, err := repo.Get(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, model.StateIdle, got.State)
}

func TestSessionRepository_StaleSaveConflicts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, _ := newTestRepository(t)

	require.NoError(t, repo.Save(ctx, "dev-1", model.ClientSession{State: model.StateAuthFactor1}, time.Hour))

	first, err := repo.Get(ctx, "dev-1")
	require.NoError(t, err)
	second, err := repo.Get(ctx, "dev-1")
	require.NoError(t, err)

	first.State = model.StateAuthFactor2
	require.NoError(t, repo.Save(ctx, "dev-1", first, time.Hour))

	second.State = model.StateAuthenticated
	err = repo.Save(ctx, "dev-1", second, time.Hour)
	assert.ErrorIs(t, err, model.ErrSessionConflict)

	got, err := repo.Get(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, model.StateAuthFactor2, got.State)
}

func TestSessionRepository_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, mr := newTestRepository(t)

	require.NoError(t, repo.Save(ctx, "dev-1", model.ClientSession{State: model.StateAuthFactor1}, time.Hour))

	err := repo.Delete(ctx, "dev-1", 5)
	assert.ErrorIs(t, err, model.ErrSessionConflict)
	assert.True(t, mr.Exists("test:session:dev-1"))

	require.NoError(t, repo.Delete(ctx, "dev-1", 1))
	assert.False(t, mr.Exists("test:session:dev-1"))

	require.NoError(t, repo.Delete(ctx, "dev-1", 1))
}

func TestSessionRepository_Corrupt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo, mr := newTestRepository(t)

	require.NoError(t, mr.Set("test:session:dev-1", "\xff\xff"))

	_, err := repo.Get(ctx, "dev-1")
	assert.ErrorIs(t, err, model.ErrCorruptSession)

	require.NoError(t, repo.Delete(ctx, "dev-1", 0))
	assert.False(t, mr.Exists("test:session:dev-1"))
}

func TestNewClient(t *testing.T) {
	t.Parallel()
	mr := miniredis.RunT(t)

	client, err := NewClient(context.Background(), config.Redis{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	_, err = NewClient(context.Background(), config.Redis{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
