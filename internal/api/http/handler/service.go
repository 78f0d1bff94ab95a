package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/chirpy-server/internal/model"
)

// AuthService defines login and session operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (model.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Revoke(ctx context.Context, refreshToken string) error
}

// UserService defines account operations.
type UserService interface {
	Create(ctx context.Context, email, password string) (model.User, error)
	UpdateCredentials(ctx context.Context, id uuid.UUID, email, password string) (model.User, error)
	Upgrade(ctx context.Context, id uuid.UUID) error
}

// ChirpService defines chirp operations.
type ChirpService interface {
	Create(ctx context.Context, userID uuid.UUID, body string) (model.Chirp, error)
	Get(ctx context.Context, id uuid.UUID) (model.Chirp, error)
	List(ctx context.Context, authorID uuid.UUID, order model.SortOrder) ([]model.Chirp, error)
	Delete(ctx context.Context, userID, chirpID uuid.UUID) error
}

// AdminService defines operator actions.
type AdminService interface {
	Reset(ctx context.Context) error
	Hits() int64
}
