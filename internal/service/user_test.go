package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/chirpy-server/internal/apierrors"
	servermocks "github.com/dtroode/chirpy-server/internal/mocks"
	"github.com/dtroode/chirpy-server/internal/model"
	"github.com/dtroode/chirpy-server/internal/testutil"
)

func requireAPIError(t *testing.T, err error, code int) {
	t.Helper()

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, code, apiErr.Code)
}

func TestUser_Create(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(store *servermocks.UserStore, hasher *servermocks.PasswordHasher)
		wantCode int
	}{
		{
			name:     "success",
			email:    "a@b.c",
			password: "pw",
			setup: func(store *servermocks.UserStore, hasher *servermocks.PasswordHasher) {
				hasher.On("Hash", "pw").Return("hash", nil).Once()
				store.On("Create", context.Background(), "a@b.c", "hash").Return(model.User{ID: uuid.New(), Email: "a@b.c"}, nil).Once()
			},
		},
		{
			name:     "missing email",
			password: "pw",
			wantCode: 400,
		},
		{
			name:     "missing password",
			email:    "a@b.c",
			wantCode: 400,
		},
		{
			name:     "email taken",
			email:    "a@b.c",
			password: "pw",
			setup: func(store *servermocks.UserStore, hasher *servermocks.PasswordHasher) {
				hasher.On("Hash", "pw").Return("hash", nil).Once()
				store.On("Create", context.Background(), "a@b.c", "hash").Return(model.User{}, model.ErrAlreadyExists).Once()
			},
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := servermocks.NewUserStore(t)
			hasher := servermocks.NewPasswordHasher(t)
			if tt.setup != nil {
				tt.setup(store, hasher)
			}

			svc := NewUser(store, hasher, testutil.MakeNoopLogger())

			user, err := svc.Create(context.Background(), tt.email, tt.password)
			if tt.wantCode != 0 {
				requireAPIError(t, err, tt.wantCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.email, user.Email)
		})
	}
}

func TestUser_UpdateCredentials(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		store := servermocks.NewUserStore(t)
		hasher := servermocks.NewPasswordHasher(t)
		hasher.On("Hash", "new").Return("new-hash", nil).Once()
		store.On("UpdateCredentials", ctx, id, "new@b.c", "new-hash").Return(model.User{ID: id, Email: "new@b.c"}, nil).Once()

		user, err := NewUser(store, hasher, testutil.MakeNoopLogger()).UpdateCredentials(ctx, id, "new@b.c", "new")
		require.NoError(t, err)
		assert.Equal(t, "new@b.c", user.Email)
	})

	t.Run("user gone", func(t *testing.T) {
		store := servermocks.NewUserStore(t)
		hasher := servermocks.NewPasswordHasher(t)
		hasher.On("Hash", "new").Return("new-hash", nil).Once()
		store.On("UpdateCredentials", ctx, id, "new@b.c", "new-hash").Return(model.User{}, model.ErrNotFound).Once()

		_, err := NewUser(store, hasher, testutil.MakeNoopLogger()).UpdateCredentials(ctx, id, "new@b.c", "new")
		requireAPIError(t, err, 404)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := NewUser(servermocks.NewUserStore(t), servermocks.NewPasswordHasher(t), testutil.MakeNoopLogger()).
			UpdateCredentials(ctx, id, "", "")
		requireAPIError(t, err, 400)
	})
}

func TestUser_Upgrade(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	store := servermocks.NewUserStore(t)
	store.On("Upgrade", ctx, id).Return(model.User{ID: id, IsChirpyRed: true}, nil).Once()
	store.On("Upgrade", ctx, uuid.Nil).Return(model.User{}, model.ErrNotFound).Once()

	svc := NewUser(store, servermocks.NewPasswordHasher(t), testutil.MakeNoopLogger())

	require.NoError(t, svc.Upgrade(ctx, id))
	requireAPIError(t, svc.Upgrade(ctx, uuid.Nil), 404)
}
