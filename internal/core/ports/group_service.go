package ports

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// CreateGroupInput carries the fields for a new group.
type CreateGroupInput struct {
	Name        string
	Description string
	CreatedBy   string
	Members     []string
}

// GroupService defines use-case operations for groups.
type GroupService interface {
	Create(ctx context.Context, input CreateGroupInput) (*domain.Group, error)
	ListCreatedBy(ctx context.Context, email string) ([]*domain.Group, error)
	// MyGroup returns the group whose member set contains email, or nil when
	// the user is not in any group.
	MyGroup(ctx context.Context, email string) (*domain.Group, error)
	// AddMembers union-merges members into the named group. Adding a user who
	// already belongs to another group fails with domain.ErrAlreadyGrouped.
	AddMembers(ctx context.Context, groupName string, members []string) (*domain.Group, error)
	List(ctx context.Context) ([]*domain.Group, error)
}
