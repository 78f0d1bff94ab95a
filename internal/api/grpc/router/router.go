package router

import (
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/dtroode/chirpy-server/internal/api/grpc/middleware"
	"github.com/dtroode/chirpy-server/internal/logger"
)

// Router represents the gRPC side of the server, which exposes health checks.
type Router struct {
	health *health.Server
	logger *logger.Logger
}

// New creates new gRPC Router instance serving health.
func New(health *health.Server, logger *logger.Logger) *Router {
	return &Router{health: health, logger: logger}
}

// Register registers the health and reflection services behind
// logging and panic recovery interceptors.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recoverer := middleware.NewRecovery(r.logger)
	recoveryOpt := recovery.WithRecoveryHandlerContext(recoverer.HandlePanic)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	healthpb.RegisterHealthServer(s, r.health)
	reflection.Register(s)

	return s
}
