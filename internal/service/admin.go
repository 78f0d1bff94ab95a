package service

import (
	"context"
	"fmt"

	"github.com/dtroode/chirpy-server/internal/apierrors"
	"github.com/dtroode/chirpy-server/internal/logger"
	"github.com/dtroode/chirpy-server/internal/metrics"
	"github.com/dtroode/chirpy-server/internal/model"
)

// Admin implements operator-only actions.
type Admin struct {
	users  model.UserStore
	hits   *metrics.Hits
	dev    bool
	logger *logger.Logger
}

func NewAdmin(users model.UserStore, hits *metrics.Hits, dev bool, logger *logger.Logger) *Admin {
	return &Admin{users: users, hits: hits, dev: dev, logger: logger}
}

// Reset deletes every user and zeroes the hits counter. Only allowed in dev.
func (s *Admin) Reset(ctx context.Context) error {
	if !s.dev {
		s.logger.Warn("Admin service: reset denied outside dev platform")
		return apierrors.NewErrForbidden("Only allowed in dev environment")
	}

	s.hits.Reset()

	if err := s.users.DeleteAll(ctx); err != nil {
		s.logger.Error("Admin service: failed to delete users",
			"error", err.Error())
		return apierrors.NewErrInternalServerError(fmt.Errorf("failed to delete users: %w", err))
	}

	s.logger.Info("Admin service: reset completed")

	return nil
}

// Hits returns the number of fileserver requests served since the last reset.
func (s *Admin) Hits() int64 {
	return s.hits.Load()
}
