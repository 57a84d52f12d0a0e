package ports

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// TaskRepository defines persistence operations for task documents.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// ListByOwner returns self-owned tasks where email matches.
	ListByOwner(ctx context.Context, email string) ([]*domain.Task, error)
	// ListByAssignee returns group tasks assigned to email.
	ListByAssignee(ctx context.Context, email string) ([]*domain.Task, error)
	// ListByGroup returns tasks assigned within the named group.
	ListByGroup(ctx context.Context, groupName string) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
