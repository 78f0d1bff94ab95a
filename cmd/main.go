package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"google.golang.org/grpc/health"

	grpcRouter "github.com/dtroode/chirpy-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/chirpy-server/internal/api/grpc/server"
	httpctx "github.com/dtroode/chirpy-server/internal/api/http/context"
	httpRouter "github.com/dtroode/chirpy-server/internal/api/http/router"
	httpServer "github.com/dtroode/chirpy-server/internal/api/http/server"
	"github.com/dtroode/chirpy-server/internal/config"
	"github.com/dtroode/chirpy-server/internal/logger"
	"github.com/dtroode/chirpy-server/internal/metrics"
	"github.com/dtroode/chirpy-server/internal/model"
	"github.com/dtroode/chirpy-server/internal/password"
	"github.com/dtroode/chirpy-server/internal/repository/postgres"
	"github.com/dtroode/chirpy-server/internal/server"
	"github.com/dtroode/chirpy-server/internal/service"
	storage "github.com/dtroode/chirpy-server/internal/storage/minio"
	"github.com/dtroode/chirpy-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.URL)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)
	chirpRepo := postgres.NewChirpRepository(db)

	hasher := password.NewHasher(cfg.KDF.Time, cfg.KDF.MemKiB, cfg.KDF.Par)
	tokenManager := token.NewJWT(cfg.JWT.Secret)
	m := metrics.New()

	authService := service.NewAuth(userRepo, refreshTokenRepo, hasher, tokenManager, logger)
	userService := service.NewUser(userRepo, hasher, logger)
	chirpService := service.NewChirp(chirpRepo, logger)
	adminService := service.NewAdmin(userRepo, m.Hits, cfg.IsDev(), logger)

	assets, err := storage.Connect(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("failed to initialize asset storage", "error", err)
	}

	router := httpRouter.New(
		httpRouter.Services{
			Auth:          authService,
			Authenticator: authService,
			Users:         userService,
			Chirps:        chirpService,
			Admin:         adminService,
		},
		assets,
		m,
		cfg.Polka.Key,
		httpctx.NewManager(),
		logger,
	)
	api := httpServer.NewHTTPServer(router.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	healthServer := health.NewServer()
	grpcSrv := grpcServer.NewGRPCServer(
		grpcRouter.New(healthServer, logger).Register(),
		healthServer,
		db,
		cfg.GRPC.HealthInterval,
		fmt.Sprintf(":%s", cfg.GRPC.Port),
		logger,
	)

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	servers := []struct {
		server model.Server
		layer  model.SecurityLayer
	}{
		{server: api, layer: sl},
		{server: grpcSrv, layer: server.NewPlainListener()},
	}

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server, sl model.SecurityLayer) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s.server, s.layer)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.server.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.server.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
