package ports

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// AddUserInput carries the fields for a direct admin user add.
type AddUserInput struct {
	Username string
	Email    string
	Role     string
	Password string
}

// UserService defines administrative user operations.
type UserService interface {
	// ListAvailable returns users not present in any group's member set.
	ListAvailable(ctx context.Context) ([]*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	ChangeRole(ctx context.Context, email, role string) error
	// Delete removes the user document and its paired directory identity.
	Delete(ctx context.Context, email string) error
	Add(ctx context.Context, input AddUserInput) (*domain.User, error)
}
