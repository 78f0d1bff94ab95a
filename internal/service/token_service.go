package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/chirpy-server/internal/apierrors"
	"github.com/dtroode/chirpy-server/internal/logger"
	"github.com/dtroode/chirpy-server/internal/model"
	"github.com/dtroode/chirpy-server/internal/token"
)

const (
	msgInvalidRefreshToken = "invalid refresh token"
	msgInvalidAccessToken  = "invalid access token"
)

// TokenService provides high-level operations for issuing, validating
// and revoking tokens. It composes the TokenManager and RefreshTokenStore.
type TokenService struct {
	manager model.TokenManager
	store   model.RefreshTokenStore
	logger  *logger.Logger
	now     func() time.Time
}

func NewTokenService(manager model.TokenManager, store model.RefreshTokenStore, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, store: store, logger: logger, now: time.Now}
}

// IssueAccessToken signs a short-lived access token for userID.
func (s *TokenService) IssueAccessToken(userID uuid.UUID) (string, error) {
	access, err := s.manager.IssueAccessToken(userID, model.AccessTokenTTL)
	if err != nil {
		return "", apierrors.NewErrInternalServerError(fmt.Errorf("failed to issue access token: %w", err))
	}
	return access, nil
}

// IssueRefreshToken generates a refresh token for userID and persists it.
func (s *TokenService) IssueRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	refresh, err := token.MakeRefreshToken()
	if err != nil {
		return "", apierrors.NewErrInternalServerError(fmt.Errorf("failed to generate refresh token: %w", err))
	}

	now := s.now()
	rt := model.RefreshToken{
		Token:     refresh,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(model.RefreshTokenTTL),
	}

	if err := s.store.Create(ctx, rt); err != nil {
		s.logger.Error("Token service: failed to persist refresh token",
			"user_id", userID,
			"error", err.Error())
		return "", apierrors.NewErrInternalServerError(fmt.Errorf("failed to persist refresh token: %w", err))
	}

	return refresh, nil
}

// ValidateForRefresh returns the owner of an active refresh token.
// The record is left untouched, so the token stays usable until it
// expires or is revoked.
func (s *TokenService) ValidateForRefresh(ctx context.Context, presented string) (uuid.UUID, error) {
	rt, err := s.store.GetByToken(ctx, presented)
	if errors.Is(err, model.ErrNotFound) {
		return uuid.Nil, apierrors.NewErrUnauthorized(msgInvalidRefreshToken)
	}
	if err != nil {
		return uuid.Nil, apierrors.NewErrInternalServerError(fmt.Errorf("failed to get refresh token: %w", err))
	}

	if !rt.Active(s.now()) {
		s.logger.Debug("Token service: refresh token is revoked or expired",
			"user_id", rt.UserID)
		return uuid.Nil, apierrors.NewErrUnauthorized(msgInvalidRefreshToken)
	}

	return rt.UserID, nil
}

// Refresh issues a new access token for the owner of an active refresh token.
func (s *TokenService) Refresh(ctx context.Context, presented string) (string, error) {
	userID, err := s.ValidateForRefresh(ctx, presented)
	if err != nil {
		return "", err
	}
	return s.IssueAccessToken(userID)
}

// Revoke marks a refresh token revoked. Unknown or already revoked
// tokens are left as they are.
func (s *TokenService) Revoke(ctx context.Context, presented string) error {
	if err := s.store.Revoke(ctx, presented); err != nil {
		return apierrors.NewErrInternalServerError(fmt.Errorf("failed to revoke refresh token: %w", err))
	}
	return nil
}

// GetUserID validates an access token and returns its subject.
func (s *TokenService) GetUserID(accessToken string) (uuid.UUID, error) {
	userID, err := s.manager.ParseAccessToken(accessToken)
	if err != nil {
		return uuid.Nil, apierrors.NewErrUnauthorized(msgInvalidAccessToken)
	}
	return userID, nil
}
