package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

func newAuthFixture() (*AuthService, *stubUserRepo, *stubDirectory, *stubSessions) {
	repo := &stubUserRepo{}
	dir := &stubDirectory{}
	sessions := newStubSessions()
	tokens := NewTokenService("secret", time.Hour)
	svc := NewAuthService(repo, dir, tokens, sessions, zerolog.Nop())
	return svc, repo, dir, sessions
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo, dir, _ := newAuthFixture()

	uid, err := svc.Register(context.Background(), "alice", "Alice@Example.com", "pass123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if uid == "" {
		t.Fatalf("expected uid, got empty")
	}
	if dir.creates != 1 {
		t.Fatalf("expected one directory create, got %d", dir.creates)
	}

	user, err := repo.FindByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("stored user not found: %v", err)
	}
	if user.Role != domain.RoleEmployee {
		t.Fatalf("expected default role employee, got %s", user.Role)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_InvalidEmail(t *testing.T) {
	svc, repo, dir, _ := newAuthFixture()

	// Long TLDs pass the handler's validator tag but not the domain pattern;
	// the rejection is a validation failure, never a credential failure.
	for _, email := range []string{"not-an-email", "user@site.museum"} {
		if _, err := svc.Register(context.Background(), "bob", email, "pass123"); !errors.Is(err, domain.ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail for %q, got %v", email, err)
		}
	}
	// Rejected before any directory or store call.
	if dir.creates != 0 {
		t.Fatalf("directory called for invalid email")
	}
	if len(repo.users) != 0 {
		t.Fatalf("store written for invalid email")
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	if _, err := svc.Register(context.Background(), "", "a@x.com", "pass"); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	if _, err := svc.Register(context.Background(), "bob", "bob@example.com", "pass1"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "robert", "bob@example.com", "pass2"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Register_RollsBackIdentityOnStoreFailure(t *testing.T) {
	svc, repo, dir, _ := newAuthFixture()
	repo.createErr = errors.New("store down")

	if _, err := svc.Register(context.Background(), "carol", "carol@example.com", "pass"); err == nil {
		t.Fatalf("expected error")
	}
	if len(dir.deletes) != 1 || dir.deletes[0] != "uid-1" {
		t.Fatalf("expected identity rollback for uid-1, got %v", dir.deletes)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, _, sessions := newAuthFixture()
	tokens := NewTokenService("secret", time.Hour)

	if _, err := svc.Register(context.Background(), "dave", "dave@example.com", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "Dave@Example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" || result.RefreshToken == "" {
		t.Fatalf("expected token pair, got %+v", result)
	}

	claims, err := tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.Email != "dave@example.com" || claims.Username != "dave" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	user, _ := repo.FindByEmail(context.Background(), "dave@example.com")
	if user.LastLogin == nil {
		t.Fatalf("last login not updated")
	}

	if email, err := sessions.LookupRefresh(context.Background(), result.RefreshToken); err != nil || email != "dave@example.com" {
		t.Fatalf("refresh token not stored: %v %q", err, email)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, _ = svc.Register(context.Background(), "erin", "erin@example.com", "goodpass")
	if _, err := svc.Login(context.Background(), "erin@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	if _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Refresh_ReflectsRoleChange(t *testing.T) {
	svc, repo, _, _ := newAuthFixture()
	tokens := NewTokenService("secret", time.Hour)

	_, _ = svc.Register(context.Background(), "frank", "frank@example.com", "pass")
	result, err := svc.Login(context.Background(), "frank@example.com", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := repo.UpdateRole(context.Background(), "frank@example.com", domain.RoleAdmin); err != nil {
		t.Fatalf("role update failed: %v", err)
	}

	fresh, err := svc.Refresh(context.Background(), result.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	claims, err := tokens.Verify(fresh)
	if err != nil {
		t.Fatalf("refreshed token invalid: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected refreshed role admin, got %s", claims.Role)
	}
}

func TestAuthService_Refresh_UnknownToken(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	if _, err := svc.Refresh(context.Background(), "bogus"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_Refresh_DeletedUser(t *testing.T) {
	svc, repo, _, sessions := newAuthFixture()

	_, _ = svc.Register(context.Background(), "gone", "gone@example.com", "pass")
	result, _ := svc.Login(context.Background(), "gone@example.com", "pass")

	if err := repo.DeleteByEmail(context.Background(), "gone@example.com"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), result.RefreshToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := sessions.LookupRefresh(context.Background(), result.RefreshToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected stale refresh token to be revoked")
	}
}
