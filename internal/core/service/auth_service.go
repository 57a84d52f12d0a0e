package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// AuthService implements registration, login and token refresh.
type AuthService struct {
	users     ports.UserRepository
	directory ports.Directory
	tokens    ports.TokenService
	sessions  ports.SessionStore
	logger    zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	directory ports.Directory,
	tokens ports.TokenService,
	sessions ports.SessionStore,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		directory: directory,
		tokens:    tokens,
		sessions:  sessions,
		logger:    logger,
	}
}

// Register validates the input, creates the directory identity and stores the
// user document with a hashed credential. If the document write fails the
// identity is deleted again so the two systems stay consistent.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, error) {
	if username == "" || email == "" || password == "" {
		return "", domain.ErrMissingFields
	}
	email = domain.NormalizeEmail(email)
	if !domain.ValidEmail(email) {
		return "", domain.ErrInvalidEmail
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	uid, err := s.directory.CreateIdentity(ctx, email, password, username)
	if err != nil {
		return "", fmt.Errorf("create identity: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uid,
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleEmployee,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		if delErr := s.directory.DeleteIdentity(ctx, uid); delErr != nil {
			s.logger.Error().Err(delErr).Str("uid", uid).Msg("identity rollback failed")
		}
		return "", err
	}

	s.logger.Info().Str("email", email).Str("uid", uid).Msg("user registered")
	return uid, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.users.UpdateLastLogin(ctx, user.Email, now); err != nil {
		s.logger.Warn().Err(err).Str("email", user.Email).Msg("last login update failed")
	}
	user.LastLogin = &now

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	refresh, err := s.issueRefresh(ctx, user.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", user.Email).Msg("login succeeded")

	return &ports.LoginResult{Token: token, RefreshToken: refresh, User: user}, nil
}

// Refresh exchanges a refresh token for a new access token. The user is
// re-read from the store so a role change is reflected in the new claims.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", domain.ErrInvalidToken
	}

	email, err := s.sessions.LookupRefresh(ctx, refreshToken)
	if err != nil {
		return "", err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// User deleted since the refresh token was issued.
			_ = s.sessions.DeleteRefresh(ctx, refreshToken)
			return "", domain.ErrInvalidToken
		}
		return "", err
	}

	return s.tokens.Issue(user)
}

func (s *AuthService) issueRefresh(ctx context.Context, email string) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	token := hex.EncodeToString(b)

	if err := s.sessions.SaveRefresh(ctx, token, email); err != nil {
		return "", fmt.Errorf("save refresh token: %w", err)
	}
	return token, nil
}
