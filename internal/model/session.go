package model

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultSessionTTL is the observed lifetime of protocol records and identity bindings.
const DefaultSessionTTL = time.Hour

// SessionStore keeps ephemeral per-client protocol records.
//
// Writes are conditional on ClientSession.Version: the stored version must match the
// version the caller read, otherwise ErrSessionConflict is returned. Get returns an
// IDLE record with version 0 when none exists, and ErrCorruptSession when the stored
// record cannot be decoded. Delete with version 0 removes the record unconditionally.
// Every successful Save refreshes the record TTL.
type SessionStore interface {
	Get(ctx context.Context, clientID string) (ClientSession, error)
	Save(ctx context.Context, clientID string, session ClientSession, ttl time.Duration) error
	Delete(ctx context.Context, clientID string, version uint64) error
}

// ClientSession is the protocol record of one client identifier.
type ClientSession struct {
	State             State     `cbor:"state"`
	CandidateUserID   *int64    `cbor:"candidate_user_id,omitempty"`
	PendingFactors    []string  `cbor:"pending_factors,omitempty"`
	IdentityExpiresAt time.Time `cbor:"identity_expires_at"`
	FailedAttempts    int       `cbor:"failed_attempts,omitempty"`
	Version           uint64    `cbor:"version"`
}

// IdentityValid reports whether the identity binding and pending factors are still alive.
func (s ClientSession) IdentityValid(now time.Time) bool {
	if s.CandidateUserID == nil {
		return false
	}
	return s.IdentityExpiresAt.IsZero() || now.Before(s.IdentityExpiresAt)
}

// UserID returns the bound or candidate user id, if any.
func (s ClientSession) UserID() (int64, bool) {
	if s.CandidateUserID == nil {
		return 0, false
	}
	return *s.CandidateUserID, true
}

// String hides pending factors.
func (s ClientSession) String() string {
	user := "none"
	if s.CandidateUserID != nil {
		user = fmt.Sprintf("%d", *s.CandidateUserID)
	}
	return fmt.Sprintf("ClientSession{state=%s user=%s pending=%d version=%d}",
		s.State, user, len(s.PendingFactors), s.Version)
}

// LogValue hides pending factors from structured logs.
func (s ClientSession) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("state", s.State.String()),
		slog.Int("pending_factors", len(s.PendingFactors)),
		slog.Uint64("version", s.Version),
	}
	if s.CandidateUserID != nil {
		attrs = append(attrs, slog.Int64("user_id", *s.CandidateUserID))
	}
	return slog.GroupValue(attrs...)
}

// Reply is the outcome of one protocol invocation.
type Reply struct {
	Text       string
	State      State
	PriorState State
	ListenFor  time.Duration
}

// ListenSeconds returns the recording duration hint in whole seconds.
func (r Reply) ListenSeconds() int {
	return int(r.ListenFor / time.Second)
}
