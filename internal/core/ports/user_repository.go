package ports

import (
	"context"
	"time"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// UserRepository defines persistence operations for user documents.
// Lookups by email assume at most one match; implementations must break ties
// deterministically by earliest created_at.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateLastLogin(ctx context.Context, email string, at time.Time) error
	UpdateRole(ctx context.Context, email, role string) error
	DeleteByEmail(ctx context.Context, email string) error
}
