package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/chirpy-server/internal/logger"
	"github.com/dtroode/chirpy-server/internal/model"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// GRPCServer wraps a gRPC server with address and lifecycle methods.
// While running it keeps the overall health status in sync with the database.
type GRPCServer struct {
	server   *grpc.Server
	health   *health.Server
	pinger   Pinger
	interval time.Duration
	addr     string
	logger   *logger.Logger

	stop chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// NewGRPCServer creates a GRPCServer. A nil pinger disables the health watcher.
func NewGRPCServer(
	server *grpc.Server,
	health *health.Server,
	pinger Pinger,
	interval time.Duration,
	addr string,
	logger *logger.Logger,
) *GRPCServer {
	return &GRPCServer{
		server:   server,
		health:   health,
		pinger:   pinger,
		interval: interval,
		addr:     addr,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

// Start starts serving on the configured address using the provided security layer.
func (s *GRPCServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	if s.pinger != nil && s.interval > 0 {
		s.wg.Add(1)
		go s.watch()
	}

	return s.server.Serve(listener)
}

// Stop marks the server as not serving and gracefully stops it.
func (s *GRPCServer) Stop(_ context.Context) error {
	s.once.Do(func() { close(s.stop) })
	s.wg.Wait()

	s.health.Shutdown()
	s.server.GracefulStop()
	return nil
}

// Address returns the configured listen address.
func (s *GRPCServer) Address() string {
	return s.addr
}

func (s *GRPCServer) watch() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.check()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.check()
		}
	}
}

func (s *GRPCServer) check() {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	st := healthpb.HealthCheckResponse_SERVING
	if err := s.pinger.Ping(ctx); err != nil {
		s.logger.Warn("gRPC health: database ping failed", "error", err.Error())
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", st)
}
