package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dtroode/voicegate/internal/codec"
	"github.com/dtroode/voicegate/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

// SessionRepository keeps session records in Redis, one CBOR value per client.
type SessionRepository struct {
	client goredis.UniversalClient
	prefix string
}

func NewSessionRepository(client goredis.UniversalClient, prefix string) *SessionRepository {
	return &SessionRepository{
		client: client,
		prefix: prefix,
	}
}

func (r *SessionRepository) key(clientID string) string {
	return r.prefix + ":session:" + clientID
}

func (r *SessionRepository) Get(ctx context.Context, clientID string) (model.ClientSession, error) {
	data, err := r.client.Get(ctx, r.key(clientID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return model.ClientSession{State: model.StateIdle}, nil
		}
		return model.ClientSession{}, fmt.Errorf("failed to get session: %w", err)
	}

	return decode(data)
}

// Save writes session with Version+1 if the stored version still equals session.Version.
func (r *SessionRepository) Save(ctx context.Context, clientID string, session model.ClientSession, ttl time.Duration) error {
	key := r.key(clientID)

	err := r.client.Watch(ctx, func(tx *goredis.Tx) error {
		current, err := currentVersion(ctx, tx, key)
		if err != nil {
			return err
		}
		if current != session.Version {
			return model.ErrSessionConflict
		}

		next := session
		next.Version = session.Version + 1
		data, err := codec.Marshal(next)
		if err != nil {
			return fmt.Errorf("failed to encode session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, data, ttl)
			return nil
		})
		return err
	}, key)

	return mapTxErr(err, "save")
}

func (r *SessionRepository) Delete(ctx context.Context, clientID string, version uint64) error {
	key := r.key(clientID)

	if version == 0 {
		if err := r.client.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
		return nil
	}

	err := r.client.Watch(ctx, func(tx *goredis.Tx) error {
		current, err := currentVersion(ctx, tx, key)
		if err != nil {
			return err
		}
		if current == 0 {
			return nil
		}
		if current != version {
			return model.ErrSessionConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Del(ctx, key)
			return nil
		})
		return err
	}, key)

	return mapTxErr(err, "delete")
}

func currentVersion(ctx context.Context, tx *goredis.Tx, key string) (uint64, error) {
	data, err := tx.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read session: %w", err)
	}

	session, err := decode(data)
	if err != nil {
		return 0, err
	}
	return session.Version, nil
}

func decode(data []byte) (model.ClientSession, error) {
	var session model.ClientSession
	if err := codec.Unmarshal(data, &session); err != nil {
		return model.ClientSession{}, fmt.Errorf("%w: %v", model.ErrCorruptSession, err)
	}
	return session, nil
}

func mapTxErr(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, goredis.TxFailedErr), errors.Is(err, model.ErrSessionConflict):
		return model.ErrSessionConflict
	case errors.Is(err, model.ErrCorruptSession):
		return err
	default:
		return fmt.Errorf("failed to %s session: %w", op, err)
	}
}
