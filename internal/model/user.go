package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UnsetPassword is the stored hash of a user whose password was never set.
// It never verifies against any password.
const UnsetPassword = "unset"

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, email, hashedPassword string) (User, error)
	UpdateCredentials(ctx context.Context, id uuid.UUID, email, hashedPassword string) (User, error)
	Upgrade(ctx context.Context, id uuid.UUID) (User, error)
	DeleteAll(ctx context.Context) error
}

// User represents a stored user with authentication material.
type User struct {
	ID             uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Email          string
	HashedPassword string
	IsChirpyRed    bool
}

// PublicUser is the part of User that may leave the server.
type PublicUser struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Email       string    `json:"email"`
	IsChirpyRed bool      `json:"is_chirpy_red"`
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	PublicUser
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// Public strips the password hash.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		Email:       u.Email,
		IsChirpyRed: u.IsChirpyRed,
	}
}
