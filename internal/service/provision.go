package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/mail"
	"strings"

	"github.com/dtroode/voicegate/internal/logger"
	"github.com/dtroode/voicegate/internal/model"
)

// maxVoiceCodeAttempts bounds regeneration on collisions.
const maxVoiceCodeAttempts = 32

// ErrInvalidUser is returned for provisioning requests that fail validation.
var ErrInvalidUser = errors.New("invalid user")

// NewUser describes a user to provision. An empty VoiceCode asks for a generated one.
type NewUser struct {
	Email     string
	Name      string
	VoiceCode string
	Factors   []string
}

// Provisioner creates users and maintains their factors.
type Provisioner struct {
	users    model.UserProvisioningStore
	contexts model.ContextStore
	cipher   model.FactorCipher
	logger   *logger.Logger
	random   io.Reader
}

func NewProvisioner(users model.UserProvisioningStore, contexts model.ContextStore, cipher model.FactorCipher, logger *logger.Logger) *Provisioner {
	return &Provisioner{
		users:    users,
		contexts: contexts,
		cipher:   cipher,
		logger:   logger,
		random:   rand.Reader,
	}
}

// CreateUser encrypts the factors, assigns a unique voice code and seeds the user context.
func (p *Provisioner) CreateUser(ctx context.Context, req NewUser) (model.UserCredential, error) {
	if err := validateNewUser(req); err != nil {
		return model.UserCredential{}, err
	}

	user := model.UserCredential{
		Email:  strings.TrimSpace(req.Email),
		Name:   strings.TrimSpace(req.Name),
		Active: true,
	}
	for i, factor := range req.Factors {
		ciphertext, err := p.cipher.Encrypt(strings.TrimSpace(factor))
		if err != nil {
			return model.UserCredential{}, fmt.Errorf("failed to encrypt factor %d: %w", i+1, err)
		}
		user.Factors[i] = ciphertext
	}

	created, err := p.createWithVoiceCode(ctx, user, req.VoiceCode)
	if err != nil {
		return model.UserCredential{}, err
	}

	// A missing context reads as empty, so the user stays usable without the seed.
	if err := p.contexts.SaveContext(ctx, created.ID, model.NewUserContext()); err != nil {
		p.logger.Warn("Provisioner: failed to seed user context",
			"user_id", created.ID,
			"error", err.Error())
	}

	p.logger.Info("Provisioner: user created",
		"user_id", created.ID,
		"factors", len(created.Configured()))

	return created, nil
}

func (p *Provisioner) createWithVoiceCode(ctx context.Context, user model.UserCredential, code string) (model.UserCredential, error) {
	if code != "" {
		user.VoiceCode = code
		created, err := p.users.Create(ctx, user)
		if err != nil {
			return model.UserCredential{}, fmt.Errorf("failed to create user: %w", err)
		}
		return created, nil
	}

	for attempt := 0; attempt < maxVoiceCodeAttempts; attempt++ {
		candidate, err := p.generateVoiceCode()
		if err != nil {
			return model.UserCredential{}, err
		}

		exists, err := p.users.VoiceCodeExists(ctx, candidate)
		if err != nil {
			return model.UserCredential{}, fmt.Errorf("failed to check voice code: %w", err)
		}
		if exists {
			continue
		}

		user.VoiceCode = candidate
		created, err := p.users.Create(ctx, user)
		if errors.Is(err, model.ErrVoiceCodeTaken) {
			continue
		}
		if err != nil {
			return model.UserCredential{}, fmt.Errorf("failed to create user: %w", err)
		}
		return created, nil
	}

	return model.UserCredential{}, model.ErrVoiceCodeExhausted
}

func (p *Provisioner) generateVoiceCode() (string, error) {
	n, err := rand.Int(p.random, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("failed to generate voice code: %w", err)
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

// ReplaceFactor sets factor number index (0-based). An empty value removes the factor.
func (p *Provisioner) ReplaceFactor(ctx context.Context, userID int64, index int, value string) error {
	if index < 0 || index >= model.MaxFactors {
		return model.ErrInvalidFactorIndex
	}

	var ciphertext string
	if value = strings.TrimSpace(value); value != "" {
		var err error
		ciphertext, err = p.cipher.Encrypt(value)
		if err != nil {
			return fmt.Errorf("failed to encrypt factor: %w", err)
		}
	}

	if err := p.users.UpdateFactor(ctx, userID, index, ciphertext); err != nil {
		return fmt.Errorf("failed to update factor: %w", err)
	}

	p.logger.Info("Provisioner: factor replaced",
		"user_id", userID,
		"factor", index+1,
		"cleared", ciphertext == "")

	return nil
}

// SetActive enables or disables voice login for a user.
func (p *Provisioner) SetActive(ctx context.Context, userID int64, active bool) error {
	if err := p.users.SetActive(ctx, userID, active); err != nil {
		return fmt.Errorf("failed to set user status: %w", err)
	}

	p.logger.Info("Provisioner: user status changed",
		"user_id", userID,
		"active", active)

	return nil
}

func validateNewUser(req NewUser) error {
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		return fmt.Errorf("%w: email: %v", ErrInvalidUser, err)
	}
	if len(req.Factors) > model.MaxFactors {
		return fmt.Errorf("%w: at most %d factors", ErrInvalidUser, model.MaxFactors)
	}
	for i, factor := range req.Factors {
		if strings.TrimSpace(factor) == "" {
			return fmt.Errorf("%w: factor %d is empty", ErrInvalidUser, i+1)
		}
	}
	if req.VoiceCode != "" && !isVoiceCode(req.VoiceCode) {
		return fmt.Errorf("%w: voice code must be %d digits", ErrInvalidUser, model.VoiceCodeLength)
	}
	return nil
}

func isVoiceCode(code string) bool {
	return len(code) == model.VoiceCodeLength && extractDigits(code) == code
}
