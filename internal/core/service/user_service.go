package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// UserService implements administrative user operations.
type UserService struct {
	users     ports.UserRepository
	groups    ports.GroupRepository
	directory ports.Directory
	logger    zerolog.Logger
}

func NewUserService(
	users ports.UserRepository,
	groups ports.GroupRepository,
	directory ports.Directory,
	logger zerolog.Logger,
) *UserService {
	return &UserService{users: users, groups: groups, directory: directory, logger: logger}
}

// ListAvailable returns every user whose email is not in any group's member
// set: the set difference of all users minus the union of all memberships.
func (s *UserService) ListAvailable(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string]struct{})
	for _, g := range groups {
		for _, m := range g.Members {
			grouped[domain.NormalizeEmail(m)] = struct{}{}
		}
	}

	available := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if _, ok := grouped[u.Email]; !ok {
			available = append(available, u)
		}
	}
	return available, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) ChangeRole(ctx context.Context, email, role string) error {
	if email == "" || role == "" {
		return domain.ErrMissingFields
	}
	if !domain.ValidRole(role) {
		return domain.ErrInvalidRole
	}

	if err := s.users.UpdateRole(ctx, domain.NormalizeEmail(email), role); err != nil {
		return err
	}

	s.logger.Info().Str("email", email).Str("role", role).Msg("role changed")
	return nil
}

// Delete removes the user document and its paired directory identity, so no
// orphaned identity is left behind.
func (s *UserService) Delete(ctx context.Context, email string) error {
	email = domain.NormalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if err := s.users.DeleteByEmail(ctx, email); err != nil {
		return err
	}

	if err := s.directory.DeleteIdentity(ctx, user.ID); err != nil {
		s.logger.Error().Err(err).Str("uid", user.ID).Msg("directory identity delete failed")
	}

	s.logger.Info().Str("email", email).Msg("user deleted")
	return nil
}

// Add inserts a user directly. The credential goes through the same bcrypt
// step as registration; no write path stores a plaintext password.
func (s *UserService) Add(ctx context.Context, input ports.AddUserInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrMissingFields
	}

	email := domain.NormalizeEmail(input.Email)
	if !domain.ValidEmail(email) {
		return nil, domain.ErrInvalidEmail
	}

	role := input.Role
	if role == "" {
		role = domain.RoleEmployee
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	uid, err := s.directory.CreateIdentity(ctx, email, input.Password, input.Username)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uid,
		Email:        email,
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if delErr := s.directory.DeleteIdentity(ctx, uid); delErr != nil {
			s.logger.Error().Err(delErr).Str("uid", uid).Msg("identity rollback failed")
		}
		return nil, err
	}

	s.logger.Info().Str("email", email).Str("role", role).Msg("user added by admin")
	return created, nil
}
