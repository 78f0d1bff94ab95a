//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/chirpy-server/internal/model"
	repo "github.com/dtroode/chirpy-server/internal/repository/postgres"
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
				"POSTGRES_DB":       "chirpy_test",
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
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/chirpy_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	rr := repo.NewRefreshTokenRepository(conn)
	cr := repo.NewChirpRepository(conn)

	require.NoError(t, ur.DeleteAll(ctx))

	var user model.User

	t.Run("user_repository", func(t *testing.T) {
		user, err = ur.Create(ctx, "user@example.com", "hash")
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, user.ID)
		require.False(t, user.IsChirpyRed)

		_, err = ur.Create(ctx, "user@example.com", "hash")
		require.ErrorIs(t, err, model.ErrAlreadyExists)

		byEmail, err := ur.GetByEmail(ctx, user.Email)
		require.NoError(t, err)
		require.Equal(t, user.ID, byEmail.ID)

		updated, err := ur.UpdateCredentials(ctx, user.ID, "new@example.com", "new-hash")
		require.NoError(t, err)
		require.Equal(t, "new-hash", updated.HashedPassword)

		upgraded, err := ur.Upgrade(ctx, user.ID)
		require.NoError(t, err)
		require.True(t, upgraded.IsChirpyRed)

		_, err = ur.Upgrade(ctx, uuid.New())
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("refresh_token_repository", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		rt := model.RefreshToken{
			Token:     "0123456789abcdef",
			UserID:    user.ID,
			ExpiresAt: time.Now().In(tokyo).Add(model.RefreshTokenTTL).Truncate(time.Microsecond),
		}
		require.NoError(t, rr.Create(ctx, rt))

		got, err := rr.GetByToken(ctx, rt.Token)
		require.NoError(t, err)
		require.Equal(t, user.ID, got.UserID)
		require.Nil(t, got.RevokedAt)
		require.True(t, rt.ExpiresAt.Equal(got.ExpiresAt), "want %s, got %s", rt.ExpiresAt.UTC(), got.ExpiresAt.UTC())
		require.False(t, got.Active(rt.ExpiresAt))

		require.NoError(t, rr.Revoke(ctx, rt.Token))
		revoked, err := rr.GetByToken(ctx, rt.Token)
		require.NoError(t, err)
		require.NotNil(t, revoked.RevokedAt)

		require.NoError(t, rr.Revoke(ctx, rt.Token))
		again, err := rr.GetByToken(ctx, rt.Token)
		require.NoError(t, err)
		require.True(t, revoked.RevokedAt.Equal(*again.RevokedAt))

		require.NoError(t, rr.Revoke(ctx, "unknown"))
	})

	t.Run("chirp_repository", func(t *testing.T) {
		first, err := cr.Create(ctx, user.ID, "first")
		require.NoError(t, err)
		_, err = cr.Create(ctx, user.ID, "second")
		require.NoError(t, err)

		_, err = cr.Create(ctx, uuid.New(), "orphan")
		require.ErrorIs(t, err, model.ErrNotFound)

		list, err := cr.List(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)

		require.NoError(t, cr.Delete(ctx, first.ID))
		_, err = cr.GetByID(ctx, first.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("delete_all_cascades", func(t *testing.T) {
		require.NoError(t, ur.DeleteAll(ctx))

		list, err := cr.List(ctx, uuid.Nil)
		require.NoError(t, err)
		require.Empty(t, list)

		_, err = rr.GetByToken(ctx, "0123456789abcdef")
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}
