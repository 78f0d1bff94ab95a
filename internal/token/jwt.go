// Package token issues and validates access tokens and generates refresh tokens.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/chirpy-server/internal/model"
)

// Issuer is the iss claim of every access token.
const Issuer = "chirpy"

// ErrInvalidToken is returned for any token that fails validation.
var ErrInvalidToken = errors.New("invalid token")

// MakeJWT signs an HS256 token for subject that expires lifetime after now.
func MakeJWT(subject string, lifetime time.Duration, secret string) (string, error) {
	issuedAt := time.Now().Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    Issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(lifetime)),
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, nil
}

// ValidateJWT checks signature, expiry and issuer and returns the subject.
func ValidateJWT(tokenString, secret string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(Issuer),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// JWT implements TokenManager backed by a symmetric HMAC secret.
type JWT struct {
	secret string
}

var _ model.TokenManager = (*JWT)(nil)

// NewJWT creates a new JWT token manager with the provided secret.
func NewJWT(secret string) *JWT {
	return &JWT{secret: secret}
}

// IssueAccessToken creates an access token whose subject is userID.
func (j *JWT) IssueAccessToken(userID uuid.UUID, lifetime time.Duration) (string, error) {
	return MakeJWT(userID.String(), lifetime, j.secret)
}

// ParseAccessToken validates token and parses its subject as a user ID.
func (j *JWT) ParseAccessToken(token string) (uuid.UUID, error) {
	subject, err := ValidateJWT(token, j.secret)
	if err != nil {
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}
