package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RefreshTokenTTL is how long a refresh token stays usable after issuance.
const RefreshTokenTTL = 60 * 24 * time.Hour

// RefreshTokenStore persists refresh token records.
type RefreshTokenStore interface {
	Create(ctx context.Context, token RefreshToken) error
	GetByToken(ctx context.Context, token string) (RefreshToken, error)
	Revoke(ctx context.Context, token string) error
}

// RefreshToken is a persisted refresh token record keyed by the token itself.
type RefreshToken struct {
	Token     string
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// Active reports whether the token is neither revoked nor expired at now.
func (t RefreshToken) Active(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
