//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/voicegate/internal/config"
	"github.com/dtroode/voicegate/internal/model"
	repo "github.com/dtroode/voicegate/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "voicegate_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/voicegate_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, config.Database{DSN: dsn, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	cr := repo.NewContextRepository(conn)

	saved, err := ur.Create(ctx, model.UserCredential{
		Email:     "alice@example.com",
		Name:      "Alice",
		VoiceCode: "1234",
		Active:    true,
		Factors:   [model.MaxFactors]string{"c1", "c2", ""},
	})
	require.NoError(t, err)
	require.NotZero(t, saved.ID)
	require.Equal(t, []string{"c1", "c2"}, saved.Configured())

	t.Run("user_repository", func(t *testing.T) {
		found, err := ur.FindActiveByVoiceCode(ctx, "1234")
		require.NoError(t, err)
		require.Equal(t, saved.ID, found.ID)

		_, err = ur.FindActiveByVoiceCode(ctx, "9999")
		require.ErrorIs(t, err, model.ErrNotFound)

		exists, err := ur.VoiceCodeExists(ctx, "1234")
		require.NoError(t, err)
		require.True(t, exists)

		_, err = ur.Create(ctx, model.UserCredential{Email: "bob@example.com", VoiceCode: "1234", Active: true})
		require.ErrorIs(t, err, model.ErrVoiceCodeTaken)

		_, err = ur.Create(ctx, model.UserCredential{Email: "alice@example.com", VoiceCode: "4321", Active: true})
		require.ErrorIs(t, err, model.ErrAlreadyExists)

		require.NoError(t, ur.UpdateFactor(ctx, saved.ID, 2, "c3"))
		byID, err := ur.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.Equal(t, "c3", byID.Factors[2])

		require.ErrorIs(t, ur.UpdateFactor(ctx, saved.ID, 3, "x"), model.ErrInvalidFactorIndex)
	})

	t.Run("inactive_users_are_hidden_from_voice_lookup", func(t *testing.T) {
		require.NoError(t, ur.SetActive(ctx, saved.ID, false))
		_, err := ur.FindActiveByVoiceCode(ctx, "1234")
		require.ErrorIs(t, err, model.ErrNotFound)

		byID, err := ur.GetByID(ctx, saved.ID)
		require.NoError(t, err)
		require.False(t, byID.Active)

		require.NoError(t, ur.SetActive(ctx, saved.ID, true))
	})

	t.Run("context_repository", func(t *testing.T) {
		_, err := cr.GetContext(ctx, saved.ID)
		require.ErrorIs(t, err, model.ErrNotFound)

		require.NoError(t, cr.SaveContext(ctx, saved.ID, model.NewUserContext()))
		got, err := cr.GetContext(ctx, saved.ID)
		require.NoError(t, err)
		require.Contains(t, got, "likes")

		require.NoError(t, cr.SaveContext(ctx, saved.ID, model.UserContext{"favorite_activity": "chess"}))
		got, err = cr.GetContext(ctx, saved.ID)
		require.NoError(t, err)
		require.Equal(t, "chess", got["favorite_activity"])
	})
}
