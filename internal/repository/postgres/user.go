package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/chirpy-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `id, created_at, updated_at, email, hashed_password, is_chirpy_red`

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt, &u.Email, &u.HashedPassword, &u.IsChirpyRed)
	return u, err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, email, hashedPassword string) (model.User, error) {
	query := `
        INSERT INTO users (id, email, hashed_password, created_at, updated_at)
        VALUES ($1, $2, $3, NOW(), NOW())
        RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRow(ctx, query, uuid.New(), email, hashedPassword))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", classify(err))
	}
	return u, nil
}

func (r *UserRepository) UpdateCredentials(ctx context.Context, id uuid.UUID, email, hashedPassword string) (model.User, error) {
	query := `
        UPDATE users SET email = $2, hashed_password = $3, updated_at = NOW()
        WHERE id = $1
        RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRow(ctx, query, id, email, hashedPassword))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user credentials: %w", classify(err))
	}
	return u, nil
}

func (r *UserRepository) Upgrade(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `
        UPDATE users SET is_chirpy_red = TRUE, updated_at = NOW()
        WHERE id = $1
        RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to upgrade user: %w", classify(err))
	}
	return u, nil
}

// DeleteAll removes every user; chirps and refresh tokens cascade.
func (r *UserRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("failed to delete users: %w", err)
	}
	return nil
}
