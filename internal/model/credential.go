package model

import (
	"context"
	"time"
)

// MaxFactors is the number of knowledge factors a user may configure.
const MaxFactors = 3

// VoiceCodeLength is the number of ASCII digits in a voice code.
const VoiceCodeLength = 4

// CredentialStore reads users for the authentication path.
type CredentialStore interface {
	// FindActiveByVoiceCode returns only active users.
	FindActiveByVoiceCode(ctx context.Context, code string) (UserCredential, error)
	// GetByID may return inactive users.
	GetByID(ctx context.Context, id int64) (UserCredential, error)
}

// UserProvisioningStore persists users created by provisioning.
type UserProvisioningStore interface {
	CredentialStore
	VoiceCodeExists(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, user UserCredential) (UserCredential, error)
	UpdateFactor(ctx context.Context, id int64, index int, ciphertext string) error
	SetActive(ctx context.Context, id int64, active bool) error
}

// UserCredential is a user row. Factors hold ciphertext; an empty string means not configured.
type UserCredential struct {
	ID        int64
	Email     string
	Name      string
	VoiceCode string
	Active    bool
	Factors   [MaxFactors]string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Configured returns the configured factor ciphertexts in order.
func (u UserCredential) Configured() []string {
	out := make([]string, 0, MaxFactors)
	for _, f := range u.Factors {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// FactorCipher encrypts factor values at rest.
type FactorCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}
