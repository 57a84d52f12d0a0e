package ports

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// GroupRepository defines persistence operations for group documents.
// Name lookups assume at most one match; implementations must break ties
// deterministically by earliest created_at. FindByMember is an array-contains
// query on the member set.
type GroupRepository interface {
	Create(ctx context.Context, group *domain.Group) (*domain.Group, error)
	FindByName(ctx context.Context, name string) (*domain.Group, error)
	FindByMember(ctx context.Context, email string) (*domain.Group, error)
	ListByCreator(ctx context.Context, email string) ([]*domain.Group, error)
	List(ctx context.Context) ([]*domain.Group, error)
	// SetMembers replaces the member set and bumps updated_at.
	SetMembers(ctx context.Context, id string, members []string) (*domain.Group, error)
}
