package model

import (
	"time"

	"github.com/google/uuid"
)

// AccessTokenTTL is the lifetime of access tokens issued by the server.
const AccessTokenTTL = time.Hour

// TokenManager issues and validates access tokens.
type TokenManager interface {
	IssueAccessToken(userID uuid.UUID, lifetime time.Duration) (string, error)
	ParseAccessToken(token string) (uuid.UUID, error)
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) bool
}
