package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MaxChirpLength is the maximum number of characters in a chirp body.
const MaxChirpLength = 140

// ChirpStore defines persistence operations for chirps.
type ChirpStore interface {
	Create(ctx context.Context, userID uuid.UUID, body string) (Chirp, error)
	GetByID(ctx context.Context, id uuid.UUID) (Chirp, error)
	List(ctx context.Context, authorID uuid.UUID) ([]Chirp, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Chirp is a short post authored by a user.
type Chirp struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Body      string    `json:"body"`
	UserID    uuid.UUID `json:"user_id"`
}

// SortOrder is the chirp listing order by creation time.
type SortOrder string

const (
	// SortAsc lists oldest chirps first.
	SortAsc SortOrder = "asc"
	// SortDesc lists newest chirps first.
	SortDesc SortOrder = "desc"
)
