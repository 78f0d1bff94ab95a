package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/chirpy-server/internal/model"
)

var _ model.ChirpStore = (*ChirpRepository)(nil)

const chirpColumns = `id, created_at, updated_at, body, user_id`

type ChirpRepository struct {
	db DB
}

func NewChirpRepository(db DB) *ChirpRepository {
	return &ChirpRepository{db: db}
}

func scanChirp(row pgx.Row) (model.Chirp, error) {
	var c model.Chirp
	err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.Body, &c.UserID)
	return c, err
}

func (r *ChirpRepository) Create(ctx context.Context, userID uuid.UUID, body string) (model.Chirp, error) {
	query := `
        INSERT INTO chirps (id, body, user_id, created_at, updated_at)
        VALUES ($1, $2, $3, NOW(), NOW())
        RETURNING ` + chirpColumns

	c, err := scanChirp(r.db.QueryRow(ctx, query, uuid.New(), body, userID))
	if err != nil {
		return model.Chirp{}, fmt.Errorf("failed to create chirp: %w", classify(err))
	}
	return c, nil
}

func (r *ChirpRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Chirp, error) {
	query := `SELECT ` + chirpColumns + ` FROM chirps WHERE id = $1`

	c, err := scanChirp(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Chirp{}, model.ErrNotFound
		}
		return model.Chirp{}, fmt.Errorf("failed to get chirp: %w", err)
	}
	return c, nil
}

// List returns chirps oldest first, limited to authorID unless it is uuid.Nil.
func (r *ChirpRepository) List(ctx context.Context, authorID uuid.UUID) ([]model.Chirp, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if authorID == uuid.Nil {
		rows, err = r.db.Query(ctx, `SELECT `+chirpColumns+` FROM chirps ORDER BY created_at ASC`)
	} else {
		rows, err = r.db.Query(ctx, `SELECT `+chirpColumns+` FROM chirps WHERE user_id = $1 ORDER BY created_at ASC`, authorID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list chirps: %w", err)
	}
	defer rows.Close()

	chirps := make([]model.Chirp, 0)
	for rows.Next() {
		c, err := scanChirp(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chirp: %w", err)
		}
		chirps = append(chirps, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate chirps: %w", err)
	}

	return chirps, nil
}

func (r *ChirpRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM chirps WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete chirp: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
