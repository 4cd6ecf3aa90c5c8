package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/voicegate/internal/model"
)

var _ model.UserProvisioningStore = (*UserRepository)(nil)

const userColumns = `id, email, name, voice_code, active,
	COALESCE(factor1, ''), COALESCE(factor2, ''), COALESCE(factor3, ''),
	created_at, updated_at`

// UserRepository stores users and their encrypted factors.
type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (model.UserCredential, error) {
	var user model.UserCredential
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.VoiceCode, &user.Active,
		&user.Factors[0], &user.Factors[1], &user.Factors[2],
		&user.CreatedAt, &user.UpdatedAt,
	)
	return user, err
}

func (r *UserRepository) FindActiveByVoiceCode(ctx context.Context, code string) (model.UserCredential, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE voice_code = $1 AND active`

	user, err := scanUser(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserCredential{}, model.ErrNotFound
		}
		return model.UserCredential{}, fmt.Errorf("failed to get user by voice code: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.UserCredential, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserCredential{}, model.ErrNotFound
		}
		return model.UserCredential{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) VoiceCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE voice_code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check voice code: %w", err)
	}
	return exists, nil
}

// Create inserts the user. A voice code collision is reported as model.ErrVoiceCodeTaken.
func (r *UserRepository) Create(ctx context.Context, user model.UserCredential) (model.UserCredential, error) {
	query := `INSERT INTO users (email, name, voice_code, active, factor1, factor2, factor3)
			  VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''))
			  RETURNING ` + userColumns

	saved, err := scanUser(r.db.QueryRow(ctx, query,
		user.Email, user.Name, user.VoiceCode, user.Active,
		user.Factors[0], user.Factors[1], user.Factors[2],
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			if pgErr.ConstraintName == "users_voice_code_key" {
				return model.UserCredential{}, model.ErrVoiceCodeTaken
			}
			return model.UserCredential{}, model.ErrAlreadyExists
		}
		return model.UserCredential{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

// UpdateFactor replaces factor index (0-based). An empty ciphertext clears it.
func (r *UserRepository) UpdateFactor(ctx context.Context, id int64, index int, ciphertext string) error {
	if index < 0 || index >= model.MaxFactors {
		return model.ErrInvalidFactorIndex
	}

	query := fmt.Sprintf(`UPDATE users SET factor%d = NULLIF($2, ''), updated_at = now() WHERE id = $1`, index+1)

	tag, err := r.db.Exec(ctx, query, id, ciphertext)
	if err != nil {
		return fmt.Errorf("failed to update factor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *UserRepository) SetActive(ctx context.Context, id int64, active bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
