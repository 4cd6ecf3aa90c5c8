package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/voicegate/internal/model"
)

func TestNewUserRepository(t *testing.T) {
	db := &Connection{}
	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestUserRepository_UpdateFactor_InvalidIndex(t *testing.T) {
	repo := NewUserRepository(&Connection{})

	for _, index := range []int{-1, model.MaxFactors} {
		err := repo.UpdateFactor(context.Background(), 1, index, "c")
		assert.ErrorIs(t, err, model.ErrInvalidFactorIndex)
	}
}

func TestNewContextRepository(t *testing.T) {
	db := &Connection{}
	repo := NewContextRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestConnection_PingWithoutPool(t *testing.T) {
	conn := &Connection{}

	assert.Error(t, conn.Ping(context.Background()))
	assert.NoError(t, conn.Close())
}
