package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/chirpy-server/internal/apierrors"
	"github.com/dtroode/chirpy-server/internal/logger"
	"github.com/dtroode/chirpy-server/internal/model"
)

// User manages user accounts.
type User struct {
	store  model.UserStore
	hasher model.PasswordHasher
	logger *logger.Logger
}

func NewUser(store model.UserStore, hasher model.PasswordHasher, logger *logger.Logger) *User {
	return &User{store: store, hasher: hasher, logger: logger}
}

// Create registers a user with the given email and password.
func (s *User) Create(ctx context.Context, email, password string) (model.User, error) {
	if email == "" || password == "" {
		return model.User{}, apierrors.NewErrBadRequest("email and password are required")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("User service: failed to hash password",
			"error", err.Error())
		return model.User{}, apierrors.NewErrInternalServerError(fmt.Errorf("failed to hash password: %w", err))
	}

	user, err := s.store.Create(ctx, email, hash)
	if errors.Is(err, model.ErrAlreadyExists) {
		s.logger.Info("User service: email already taken",
			"email", email)
		return model.User{}, apierrors.NewErrConflict("email is already taken")
	}
	if err != nil {
		s.logger.Error("User service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, apierrors.NewErrInternalServerError(fmt.Errorf("failed to create user: %w", err))
	}

	s.logger.Info("User service: user created",
		"user_id", user.ID)

	return user, nil
}

// UpdateCredentials replaces the email and password of an existing user.
func (s *User) UpdateCredentials(ctx context.Context, id uuid.UUID, email, password string) (model.User, error) {
	if email == "" || password == "" {
		return model.User{}, apierrors.NewErrBadRequest("email and password are required")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return model.User{}, apierrors.NewErrInternalServerError(fmt.Errorf("failed to hash password: %w", err))
	}

	user, err := s.store.UpdateCredentials(ctx, id, email, hash)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.User{}, apierrors.NewErrNotFound("user not found")
	case errors.Is(err, model.ErrAlreadyExists):
		return model.User{}, apierrors.NewErrConflict("email is already taken")
	case err != nil:
		s.logger.Error("User service: failed to update credentials",
			"user_id", id,
			"error", err.Error())
		return model.User{}, apierrors.NewErrInternalServerError(fmt.Errorf("failed to update credentials: %w", err))
	}

	s.logger.Info("User service: credentials updated",
		"user_id", id)

	return user, nil
}

// Upgrade grants the user Chirpy Red.
func (s *User) Upgrade(ctx context.Context, id uuid.UUID) error {
	_, err := s.store.Upgrade(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrNotFound("user not found")
	}
	if err != nil {
		s.logger.Error("User service: failed to upgrade user",
			"user_id", id,
			"error", err.Error())
		return apierrors.NewErrInternalServerError(fmt.Errorf("failed to upgrade user: %w", err))
	}

	s.logger.Info("User service: user upgraded",
		"user_id", id)

	return nil
}
