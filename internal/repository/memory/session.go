// Package memory provides process-local stores for development and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dtroode/voicegate/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

type entry struct {
	session   model.ClientSession
	expiresAt time.Time
}

// SessionRepository is a SessionStore backed by a map.
type SessionRepository struct {
	mu       sync.Mutex
	sessions map[string]entry
	now      func() time.Time
}

// NewSessionRepository returns an empty store. A nil now uses time.Now.
func NewSessionRepository(now func() time.Time) *SessionRepository {
	if now == nil {
		now = time.Now
	}
	return &SessionRepository{
		sessions: make(map[string]entry),
		now:      now,
	}
}

// current returns the live record. Caller holds mu.
func (r *SessionRepository) current(clientID string) (model.ClientSession, bool) {
	e, ok := r.sessions[clientID]
	if !ok {
		return model.ClientSession{}, false
	}
	if !r.now().Before(e.expiresAt) {
		delete(r.sessions, clientID)
		return model.ClientSession{}, false
	}
	return e.session, true
}

func (r *SessionRepository) Get(_ context.Context, clientID string) (model.ClientSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.current(clientID)
	if !ok {
		return model.ClientSession{State: model.StateIdle}, nil
	}
	session.PendingFactors = append([]string(nil), session.PendingFactors...)
	return session, nil
}

func (r *SessionRepository) Save(_ context.Context, clientID string, session model.ClientSession, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, _ := r.current(clientID)
	if stored.Version != session.Version {
		return model.ErrSessionConflict
	}

	session.Version++
	session.PendingFactors = append([]string(nil), session.PendingFactors...)
	r.sessions[clientID] = entry{session: session, expiresAt: r.now().Add(ttl)}
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, clientID string, version uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.current(clientID)
	if !ok {
		return nil
	}
	if version != 0 && stored.Version != version {
		return model.ErrSessionConflict
	}

	delete(r.sessions, clientID)
	return nil
}

// Len returns the number of live records.
func (r *SessionRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id := range r.sessions {
		if _, ok := r.current(id); ok {
			n++
		}
	}
	return n
}
