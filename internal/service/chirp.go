package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dtroode/chirpy-server/internal/apierrors"
	"github.com/dtroode/chirpy-server/internal/logger"
	"github.com/dtroode/chirpy-server/internal/model"
)

const censored = "****"

var profaneWords = map[string]struct{}{
	"kerfuffle": {},
	"sharbert":  {},
	"fornax":    {},
}

// Chirp manages chirps.
type Chirp struct {
	store  model.ChirpStore
	logger *logger.Logger
}

func NewChirp(store model.ChirpStore, logger *logger.Logger) *Chirp {
	return &Chirp{store: store, logger: logger}
}

// Create validates and censors body, then stores it as a chirp by userID.
func (s *Chirp) Create(ctx context.Context, userID uuid.UUID, body string) (model.Chirp, error) {
	if body == "" {
		return model.Chirp{}, apierrors.NewErrBadRequest("chirp body is required")
	}
	if utf8.RuneCountInString(body) > model.MaxChirpLength {
		return model.Chirp{}, apierrors.NewErrBadRequest("Chirp is too long")
	}

	chirp, err := s.store.Create(ctx, userID, cleanBody(body))
	if errors.Is(err, model.ErrNotFound) {
		return model.Chirp{}, apierrors.NewErrNotFound("user not found")
	}
	if err != nil {
		s.logger.Error("Chirp service: failed to create chirp",
			"user_id", userID,
			"error", err.Error())
		return model.Chirp{}, apierrors.NewErrInternalServerError(fmt.Errorf("failed to create chirp: %w", err))
	}

	return chirp, nil
}

// Get returns a single chirp.
func (s *Chirp) Get(ctx context.Context, id uuid.UUID) (model.Chirp, error) {
	chirp, err := s.store.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Chirp{}, apierrors.NewErrNotFound("Chirp not found")
	}
	if err != nil {
		return model.Chirp{}, apierrors.NewErrInternalServerError(fmt.Errorf("failed to get chirp: %w", err))
	}
	return chirp, nil
}

// List returns chirps by authorID, or by everyone when authorID is uuid.Nil,
// ordered by creation time.
func (s *Chirp) List(ctx context.Context, authorID uuid.UUID, order model.SortOrder) ([]model.Chirp, error) {
	chirps, err := s.store.List(ctx, authorID)
	if err != nil {
		return nil, apierrors.NewErrInternalServerError(fmt.Errorf("failed to list chirps: %w", err))
	}

	sort.SliceStable(chirps, func(i, j int) bool {
		if order == model.SortDesc {
			return chirps[i].CreatedAt.After(chirps[j].CreatedAt)
		}
		return chirps[i].CreatedAt.Before(chirps[j].CreatedAt)
	})

	return chirps, nil
}

// Delete removes a chirp owned by userID.
func (s *Chirp) Delete(ctx context.Context, userID, chirpID uuid.UUID) error {
	chirp, err := s.Get(ctx, chirpID)
	if err != nil {
		return err
	}

	if chirp.UserID != userID {
		return apierrors.NewErrForbidden("You are not the author of this chirp")
	}

	err = s.store.Delete(ctx, chirpID)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrNotFound("Chirp not found")
	}
	if err != nil {
		s.logger.Error("Chirp service: failed to delete chirp",
			"chirp_id", chirpID,
			"error", err.Error())
		return apierrors.NewErrInternalServerError(fmt.Errorf("failed to delete chirp: %w", err))
	}

	s.logger.Info("Chirp service: chirp deleted",
		"chirp_id", chirpID,
		"user_id", userID)

	return nil
}

func cleanBody(body string) string {
	words := strings.Split(body, " ")
	for i, w := range words {
		if _, ok := profaneWords[strings.ToLower(w)]; ok {
			words[i] = censored
		}
	}
	return strings.Join(words, " ")
}
