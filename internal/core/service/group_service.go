package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// GroupService implements group creation and membership management. A user
// belongs to at most one group; that invariant is enforced on every write.
type GroupService struct {
	groups ports.GroupRepository
	logger zerolog.Logger
}

func NewGroupService(groups ports.GroupRepository, logger zerolog.Logger) *GroupService {
	return &GroupService{groups: groups, logger: logger}
}

func (s *GroupService) Create(ctx context.Context, input ports.CreateGroupInput) (*domain.Group, error) {
	if input.Name == "" || input.CreatedBy == "" {
		return nil, domain.ErrMissingFields
	}

	members := domain.MergeMembers(nil, input.Members)
	for _, m := range members {
		if err := s.ensureUngrouped(ctx, m); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	group := &domain.Group{
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   domain.NormalizeEmail(input.CreatedBy),
		Members:     members,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.groups.Create(ctx, group)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("group", created.Name).Int("members", len(created.Members)).Msg("group created")
	return created, nil
}

func (s *GroupService) ListCreatedBy(ctx context.Context, email string) ([]*domain.Group, error) {
	return s.groups.ListByCreator(ctx, domain.NormalizeEmail(email))
}

// MyGroup returns the caller's group, or nil when the caller is ungrouped.
// The repository breaks multi-match ties by earliest created_at.
func (s *GroupService) MyGroup(ctx context.Context, email string) (*domain.Group, error) {
	group, err := s.groups.FindByMember(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrGroupNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return group, nil
}

// AddMembers union-merges members into the named group. The merge is
// idempotent; adding a user who already belongs to a different group fails.
func (s *GroupService) AddMembers(ctx context.Context, groupName string, members []string) (*domain.Group, error) {
	if groupName == "" || len(members) == 0 {
		return nil, domain.ErrMissingFields
	}

	group, err := s.groups.FindByName(ctx, groupName)
	if err != nil {
		return nil, err
	}

	for _, m := range members {
		email := domain.NormalizeEmail(m)
		if group.HasMember(email) {
			continue
		}
		if err := s.ensureUngrouped(ctx, email); err != nil {
			return nil, err
		}
	}

	merged := domain.MergeMembers(group.Members, members)
	updated, err := s.groups.SetMembers(ctx, group.ID, merged)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("group", group.Name).Int("members", len(merged)).Msg("group members merged")
	return updated, nil
}

func (s *GroupService) List(ctx context.Context) ([]*domain.Group, error) {
	return s.groups.List(ctx)
}

func (s *GroupService) ensureUngrouped(ctx context.Context, email string) error {
	_, err := s.groups.FindByMember(ctx, email)
	if err == nil {
		return domain.ErrAlreadyGrouped
	}
	if errors.Is(err, domain.ErrGroupNotFound) {
		return nil
	}
	return err
}
