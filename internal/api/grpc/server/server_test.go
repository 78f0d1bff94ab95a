package server

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/chirpy-server/internal/mocks"
	"github.com/dtroode/chirpy-server/internal/testutil"
)

type switchPinger struct {
	fail atomic.Bool
}

func (p *switchPinger) Ping(context.Context) error {
	if p.fail.Load() {
		return assert.AnError
	}
	return nil
}

func servingStatus(hs *health.Server) healthpb.HealthCheckResponse_ServingStatus {
	resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN
	}
	return resp.GetStatus()
}

func TestGRPCServer_Address(t *testing.T) {
	s := NewGRPCServer(grpc.NewServer(), health.NewServer(), nil, 0, ":0", testutil.MakeNoopLogger())
	assert.Equal(t, ":0", s.Address())
}

func TestGRPCServer_Stop(t *testing.T) {
	s := NewGRPCServer(grpc.NewServer(), health.NewServer(), nil, 0, ":0", testutil.MakeNoopLogger())
	assert.NoError(t, s.Stop(context.Background()))
	assert.NoError(t, s.Stop(context.Background()))
}

func TestGRPCServer_Start_ListenError(t *testing.T) {
	sec := mocks.NewSecurityLayer(t)
	sec.On("Listen", "tcp", ":0").Return(nil, assert.AnError)

	s := NewGRPCServer(grpc.NewServer(), health.NewServer(), nil, 0, ":0", testutil.MakeNoopLogger())
	err := s.Start(sec)

	assert.ErrorIs(t, err, assert.AnError)
}

func TestGRPCServer_HealthWatcher(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	sec := mocks.NewSecurityLayer(t)
	sec.On("Listen", "tcp", ":0").Return(ln, nil)

	hs := health.NewServer()
	pinger := &switchPinger{}
	s := NewGRPCServer(grpc.NewServer(), hs, pinger, 5*time.Millisecond, ":0", testutil.MakeNoopLogger())

	done := make(chan error, 1)
	go func() { done <- s.Start(sec) }()

	pinger.fail.Store(true)
	require.Eventually(t, func() bool {
		return servingStatus(hs) == healthpb.HealthCheckResponse_NOT_SERVING
	}, 2*time.Second, 5*time.Millisecond)

	pinger.fail.Store(false)
	require.Eventually(t, func() bool {
		return servingStatus(hs) == healthpb.HealthCheckResponse_SERVING
	}, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, s.Stop(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(hs))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
