package ports

import (
	"context"
	"time"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// CreateTaskInput carries the fields for a self-owned task.
type CreateTaskInput struct {
	Name        string
	Description string
	Status      string
	Category    string
	DueDate     *time.Time
	Email       string
}

// EditTaskInput is a full-field task update.
type EditTaskInput struct {
	ID          string
	Name        string
	Description string
	Status      string
	Category    string
	DueDate     *time.Time
	Email       string
}

// AssignTaskInput carries the fields for a group-assigned task. AssignerEmail
// always comes from verified claims, never from the request body.
type AssignTaskInput struct {
	Name          string
	Description   string
	Status        string
	Category      string
	DueDate       *time.Time
	Assignee      string
	GroupName     string
	AssignerEmail string
}

// TaskService defines use-case operations for tasks.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	ListOwned(ctx context.Context, email string) ([]*domain.Task, error)
	Edit(ctx context.Context, input EditTaskInput) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	// Assign creates a group task after verifying the assignee belongs to the
	// named group; fails with domain.ErrNotGroupMember otherwise.
	Assign(ctx context.Context, input AssignTaskInput) (*domain.Task, error)
	ListAssigned(ctx context.Context, email string) ([]*domain.Task, error)
	ListGroup(ctx context.Context, groupName string) ([]*domain.Task, error)
}
