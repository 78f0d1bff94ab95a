package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/chirpy-server/internal/model"
)

var _ model.RefreshTokenStore = (*RefreshTokenRepository)(nil)

type RefreshTokenRepository struct {
	db DB
}

func NewRefreshTokenRepository(db DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

// Create stores token with its expiry normalized to UTC.
func (r *RefreshTokenRepository) Create(ctx context.Context, token model.RefreshToken) error {
	const query = `
        INSERT INTO refresh_tokens (token, user_id, expires_at, revoked_at, created_at, updated_at)
        VALUES ($1, $2, $3, $4, NOW(), NOW())
    `

	_, err := r.db.Exec(ctx, query, token.Token, token.UserID, token.ExpiresAt.UTC(), token.RevokedAt)
	if err != nil {
		return fmt.Errorf("failed to create refresh token: %w", classify(err))
	}
	return nil
}

func (r *RefreshTokenRepository) GetByToken(ctx context.Context, token string) (model.RefreshToken, error) {
	const query = `
        SELECT token, user_id, created_at, updated_at, expires_at, revoked_at
        FROM refresh_tokens WHERE token = $1
    `
	var rt model.RefreshToken
	err := r.db.QueryRow(ctx, query, token).Scan(
		&rt.Token, &rt.UserID, &rt.CreatedAt, &rt.UpdatedAt, &rt.ExpiresAt, &rt.RevokedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RefreshToken{}, model.ErrNotFound
		}
		return model.RefreshToken{}, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return rt, nil
}

// Revoke stamps revoked_at once; unknown and already revoked tokens are untouched.
func (r *RefreshTokenRepository) Revoke(ctx context.Context, token string) error {
	const query = `
        UPDATE refresh_tokens SET revoked_at = NOW(), updated_at = NOW()
        WHERE token = $1 AND revoked_at IS NULL
    `
	if _, err := r.db.Exec(ctx, query, token); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}
