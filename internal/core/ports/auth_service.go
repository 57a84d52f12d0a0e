package ports

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// LoginResult carries the session material issued on a successful login.
type LoginResult struct {
	Token        string
	RefreshToken string
	User         *domain.User
}

// AuthService implements registration, login and token refresh.
type AuthService interface {
	// Register creates the directory identity and the user document, returning
	// the directory uid. The identity is rolled back if the document write fails.
	Register(ctx context.Context, username, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Refresh exchanges a refresh token for a new access token. Claims are
	// rebuilt from the stored user, so role changes take effect here.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (domain.Claims, error)
}

// SessionStore persists refresh tokens with a TTL.
type SessionStore interface {
	SaveRefresh(ctx context.Context, token, email string) error
	// LookupRefresh returns the email bound to token, or domain.ErrInvalidToken.
	LookupRefresh(ctx context.Context, token string) (string, error)
	DeleteRefresh(ctx context.Context, token string) error
}
