package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/chirpy-server/internal/apierrors"
	"github.com/dtroode/chirpy-server/internal/authheader"
	"github.com/dtroode/chirpy-server/internal/logger"
	"github.com/dtroode/chirpy-server/internal/model"
)

const msgIncorrectCredentials = "incorrect email or password"

// Auth authenticates users and manages their sessions.
type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger

	// dummyHash is verified for unknown emails so both failure paths cost one KDF run.
	dummyHash string
}

// NewAuth creates the authentication service. It hashes a random secret
// up front, so it costs one KDF run at startup.
func NewAuth(
	userStore model.UserStore,
	refreshTokenStore model.RefreshTokenStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: NewTokenService(tokenManager, refreshTokenStore, logger),
		logger:       logger,
		dummyHash:    dummyHash(hasher, logger),
	}
}

// Login checks email and password and opens a session.
func (a *Auth) Login(ctx context.Context, email, password string) (model.LoginResult, error) {
	if email == "" || password == "" {
		return model.LoginResult{}, apierrors.NewErrBadRequest("email and password are required")
	}

	a.logger.Debug("Auth service: starting user login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.hasher.Verify(password, a.dummyHash)
		a.logger.Info("Auth service: login for unknown email",
			"email", email)
		return model.LoginResult{}, apierrors.NewErrUnauthorized(msgIncorrectCredentials)
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.LoginResult{}, apierrors.NewErrInternalServerError(fmt.Errorf("failed to get user by email: %w", err))
	}

	if !a.hasher.Verify(password, user.HashedPassword) {
		a.logger.Info("Auth service: password mismatch",
			"user_id", user.ID)
		return model.LoginResult{}, apierrors.NewErrUnauthorized(msgIncorrectCredentials)
	}

	access, err := a.tokenService.IssueAccessToken(user.ID)
	if err != nil {
		return model.LoginResult{}, err
	}

	refresh, err := a.tokenService.IssueRefreshToken(ctx, user.ID)
	if err != nil {
		return model.LoginResult{}, err
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return model.LoginResult{
		PublicUser:   user.Public(),
		Token:        access,
		RefreshToken: refresh,
	}, nil
}

// Refresh exchanges an active refresh token for a new access token.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return a.tokenService.Refresh(ctx, refreshToken)
}

// Revoke ends the session bound to refreshToken.
func (a *Auth) Revoke(ctx context.Context, refreshToken string) error {
	if err := a.tokenService.Revoke(ctx, refreshToken); err != nil {
		a.logger.Error("Auth service: failed to revoke refresh token",
			"error", err.Error())
		return err
	}
	return nil
}

// Authenticate resolves the user behind an Authorization header value.
func (a *Auth) Authenticate(ctx context.Context, authorization string) (uuid.UUID, error) {
	bearer, err := authheader.Bearer(authorization)
	if err != nil {
		return uuid.Nil, apierrors.NewErrUnauthorized(err.Error())
	}
	return a.tokenService.GetUserID(bearer)
}

// dummyHash returns a hash of a random secret using the server's cost parameters.
func dummyHash(hasher model.PasswordHasher, logger *logger.Logger) string {
	h, err := hasher.Hash(uuid.NewString())
	if err != nil {
		logger.Error("Auth service: failed to prepare dummy hash",
			"error", err.Error())
		return model.UnsetPassword
	}
	return h
}
