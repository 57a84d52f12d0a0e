package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// TaskService implements self-owned and group-assigned task operations.
type TaskService struct {
	tasks  ports.TaskRepository
	groups ports.GroupRepository
	logger zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, groups ports.GroupRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, groups: groups, logger: logger}
}

func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	if input.Name == "" || input.Status == "" || input.Email == "" {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Name:        input.Name,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      input.Status,
		Category:    input.Category,
		Email:       domain.NormalizeEmail(input.Email),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("task_id", created.ID).Str("email", created.Email).Msg("task created")
	return created, nil
}

func (s *TaskService) ListOwned(ctx context.Context, email string) ([]*domain.Task, error) {
	return s.tasks.ListByOwner(ctx, domain.NormalizeEmail(email))
}

func (s *TaskService) Edit(ctx context.Context, input ports.EditTaskInput) (*domain.Task, error) {
	if input.ID == "" || input.Name == "" || input.Status == "" || input.Email == "" {
		return nil, domain.ErrMissingFields
	}

	existing, err := s.tasks.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.DueDate = input.DueDate
	existing.Status = input.Status
	existing.Category = input.Category
	existing.Email = domain.NormalizeEmail(input.Email)
	existing.UpdatedAt = time.Now().UTC()

	return s.tasks.Update(ctx, existing)
}

func (s *TaskService) UpdateStatus(ctx context.Context, id, status string) (*domain.Task, error) {
	if id == "" || status == "" {
		return nil, domain.ErrMissingFields
	}
	return s.tasks.UpdateStatus(ctx, id, status)
}

// Delete removes a task. An unknown id fails with domain.ErrTaskNotFound
// rather than succeeding silently.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("task_id", id).Msg("task deleted")
	return nil
}

// Assign creates a group task. The assigner always comes from verified
// claims, and the assignee must already be a member of the named group.
func (s *TaskService) Assign(ctx context.Context, input ports.AssignTaskInput) (*domain.Task, error) {
	if input.Name == "" || input.Assignee == "" || input.GroupName == "" {
		return nil, domain.ErrMissingFields
	}

	group, err := s.groups.FindByName(ctx, input.GroupName)
	if err != nil {
		return nil, err
	}

	assignee := domain.NormalizeEmail(input.Assignee)
	if !group.HasMember(assignee) {
		return nil, domain.ErrNotGroupMember
	}

	status := input.Status
	if status == "" {
		status = "pending"
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Name:        input.Name,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      status,
		Category:    input.Category,
		AssignedTo:  assignee,
		GroupName:   group.Name,
		CreatedBy:   domain.NormalizeEmail(input.AssignerEmail),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("task_id", created.ID).
		Str("assigned_to", created.AssignedTo).
		Str("group", created.GroupName).
		Msg("task assigned")
	return created, nil
}

func (s *TaskService) ListAssigned(ctx context.Context, email string) ([]*domain.Task, error) {
	return s.tasks.ListByAssignee(ctx, domain.NormalizeEmail(email))
}

func (s *TaskService) ListGroup(ctx context.Context, groupName string) ([]*domain.Task, error) {
	return s.tasks.ListByGroup(ctx, groupName)
}
