package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRefreshToken_Active(t *testing.T) {
	t.Parallel()

	now := time.Now()
	revokedAt := now.Add(-time.Minute)

	tests := []struct {
		name  string
		token RefreshToken
		want  bool
	}{
		{
			name:  "active",
			token: RefreshToken{ExpiresAt: now.Add(time.Hour)},
			want:  true,
		},
		{
			name:  "revoked",
			token: RefreshToken{ExpiresAt: now.Add(time.Hour), RevokedAt: &revokedAt},
			want:  false,
		},
		{
			name:  "expires exactly now",
			token: RefreshToken{ExpiresAt: now},
			want:  false,
		},
		{
			name:  "expired",
			token: RefreshToken{ExpiresAt: now.Add(-time.Second)},
			want:  false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.token.Active(now))
		})
	}
}

func TestUser_Public(t *testing.T) {
	t.Parallel()

	u := User{
		ID:             uuid.New(),
		Email:          "a@b.c",
		HashedPassword: "$argon2id$secret",
		IsChirpyRed:    true,
	}

	p := u.Public()
	assert.Equal(t, u.ID, p.ID)
	assert.Equal(t, u.Email, p.Email)
	assert.True(t, p.IsChirpyRed)
}
