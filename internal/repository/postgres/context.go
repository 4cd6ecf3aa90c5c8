package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/voicegate/internal/model"
)

var _ model.ContextStore = (*ContextRepository)(nil)

// ContextRepository stores per-user conversational memory as JSONB.
type ContextRepository struct {
	db *Connection
}

func NewContextRepository(db *Connection) *ContextRepository {
	return &ContextRepository{
		db: db,
	}
}

func (r *ContextRepository) GetContext(ctx context.Context, userID int64) (model.UserContext, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, `SELECT context FROM user_contexts WHERE user_id = $1`, userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user context: %w", err)
	}

	userContext := model.UserContext{}
	if err := json.Unmarshal(raw, &userContext); err != nil {
		return nil, fmt.Errorf("failed to decode user context: %w", err)
	}

	return userContext, nil
}

func (r *ContextRepository) SaveContext(ctx context.Context, userID int64, userContext model.UserContext) error {
	if userContext == nil {
		userContext = model.UserContext{}
	}

	raw, err := json.Marshal(userContext)
	if err != nil {
		return fmt.Errorf("failed to encode user context: %w", err)
	}

	query := `INSERT INTO user_contexts (user_id, context, updated_at)
			  VALUES ($1, $2, now())
			  ON CONFLICT (user_id) DO UPDATE SET context = EXCLUDED.context, updated_at = now()`

	if _, err := r.db.Exec(ctx, query, userID, raw); err != nil {
		return fmt.Errorf("failed to save user context: %w", err)
	}

	return nil
}
