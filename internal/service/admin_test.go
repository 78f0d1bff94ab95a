package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/chirpy-server/internal/metrics"
	servermocks "github.com/dtroode/chirpy-server/internal/mocks"
	"github.com/dtroode/chirpy-server/internal/testutil"
)

func TestAdmin_Reset_Dev(t *testing.T) {
	ctx := context.Background()
	hits := &metrics.Hits{}
	hits.Inc()
	hits.Inc()

	users := servermocks.NewUserStore(t)
	users.On("DeleteAll", ctx).Return(nil).Once()

	svc := NewAdmin(users, hits, true, testutil.MakeNoopLogger())
	assert.Equal(t, int64(2), svc.Hits())

	require.NoError(t, svc.Reset(ctx))
	assert.Equal(t, int64(0), svc.Hits())
}

func TestAdmin_Reset_NotDev(t *testing.T) {
	hits := &metrics.Hits{}
	hits.Inc()

	svc := NewAdmin(servermocks.NewUserStore(t), hits, false, testutil.MakeNoopLogger())

	requireAPIError(t, svc.Reset(context.Background()), 403)
	assert.Equal(t, int64(1), svc.Hits())
}

func TestAdmin_Reset_StoreError(t *testing.T) {
	ctx := context.Background()

	users := servermocks.NewUserStore(t)
	users.On("DeleteAll", ctx).Return(assert.AnError).Once()

	err := NewAdmin(users, &metrics.Hits{}, true, testutil.MakeNoopLogger()).Reset(ctx)
	require.ErrorIs(t, err, assert.AnError)
	requireAPIError(t, err, 500)
}
