package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

func newUserFixture() (*UserService, *stubUserRepo, *stubGroupRepo, *stubDirectory) {
	users := &stubUserRepo{}
	groups := &stubGroupRepo{}
	dir := &stubDirectory{}
	return NewUserService(users, groups, dir, zerolog.Nop()), users, groups, dir
}

func seedUser(repo *stubUserRepo, email string) {
	_, _ = repo.Create(context.Background(), &domain.User{
		ID:    "uid-" + email,
		Email: email,
		Role:  domain.RoleEmployee,
	})
}

func TestUserService_ListAvailable(t *testing.T) {
	svc, users, groups, _ := newUserFixture()

	for _, e := range []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com", "e@x.com"} {
		seedUser(users, e)
	}
	_, _ = groups.Create(context.Background(), &domain.Group{Name: "g1", Members: []string{"a@x.com", "b@x.com"}})
	_, _ = groups.Create(context.Background(), &domain.Group{Name: "g2", Members: []string{"c@x.com"}})

	available, err := svc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(available) != 2 {
		t.Fatalf("expected 2 available users, got %d", len(available))
	}
	for _, u := range available {
		if u.Email != "d@x.com" && u.Email != "e@x.com" {
			t.Fatalf("grouped user %q listed as available", u.Email)
		}
	}
}

func TestUserService_ChangeRole_Success(t *testing.T) {
	svc, users, _, _ := newUserFixture()
	seedUser(users, "a@x.com")

	if err := svc.ChangeRole(context.Background(), "A@x.com", domain.RoleAdmin); err != nil {
		t.Fatalf("change role failed: %v", err)
	}

	user, _ := users.FindByEmail(context.Background(), "a@x.com")
	if user.Role != domain.RoleAdmin {
		t.Fatalf("role not updated: %s", user.Role)
	}
}

func TestUserService_ChangeRole_InvalidRole(t *testing.T) {
	svc, users, _, _ := newUserFixture()
	seedUser(users, "a@x.com")

	if err := svc.ChangeRole(context.Background(), "a@x.com", "superuser"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_ChangeRole_UnknownUser(t *testing.T) {
	svc, _, _, _ := newUserFixture()

	if err := svc.ChangeRole(context.Background(), "ghost@x.com", domain.RoleAdmin); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete_RemovesDirectoryIdentity(t *testing.T) {
	svc, users, _, dir := newUserFixture()
	seedUser(users, "a@x.com")

	if err := svc.Delete(context.Background(), "A@x.com"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := users.FindByEmail(context.Background(), "a@x.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user document still present")
	}
	if len(dir.deletes) != 1 || dir.deletes[0] != "uid-a@x.com" {
		t.Fatalf("directory identity not removed: %v", dir.deletes)
	}
}

func TestUserService_Delete_UnknownUser(t *testing.T) {
	svc, _, _, dir := newUserFixture()

	if err := svc.Delete(context.Background(), "ghost@x.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(dir.deletes) != 0 {
		t.Fatalf("directory called for unknown user")
	}
}

func TestUserService_Add_HashesPassword(t *testing.T) {
	svc, users, _, dir := newUserFixture()

	created, err := svc.Add(context.Background(), ports.AddUserInput{
		Username: "newbie",
		Email:    "Newbie@X.com",
		Password: "pl4intext",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if created.Email != "newbie@x.com" || created.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", created)
	}
	if dir.creates != 1 {
		t.Fatalf("expected one directory create, got %d", dir.creates)
	}

	stored, _ := users.FindByEmail(context.Background(), "newbie@x.com")
	if stored.PasswordHash == "pl4intext" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pl4intext")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_Add_DefaultsToEmployee(t *testing.T) {
	svc, _, _, _ := newUserFixture()

	created, err := svc.Add(context.Background(), ports.AddUserInput{
		Username: "plain", Email: "plain@x.com", Password: "pass",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if created.Role != domain.RoleEmployee {
		t.Fatalf("expected default role employee, got %s", created.Role)
	}
}

func TestUserService_Add_InvalidRole(t *testing.T) {
	svc, _, _, _ := newUserFixture()

	_, err := svc.Add(context.Background(), ports.AddUserInput{
		Username: "u", Email: "u@x.com", Password: "p", Role: "root",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Add_InvalidEmail(t *testing.T) {
	svc, _, _, dir := newUserFixture()

	_, err := svc.Add(context.Background(), ports.AddUserInput{
		Username: "u", Email: "user@site.museum", Password: "p",
	})
	if !errors.Is(err, domain.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if dir.creates != 0 {
		t.Fatalf("directory called for invalid email")
	}
}

func TestUserService_Add_DuplicateEmail(t *testing.T) {
	svc, users, _, _ := newUserFixture()
	seedUser(users, "taken@x.com")

	_, err := svc.Add(context.Background(), ports.AddUserInput{
		Username: "u", Email: "taken@x.com", Password: "p",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Add_LookupFailureStopsInsert(t *testing.T) {
	svc, users, _, dir := newUserFixture()
	lookupErr := errors.New("store down")
	users.findErr = lookupErr

	if _, err := svc.Add(context.Background(), ports.AddUserInput{
		Username: "u", Email: "u@x.com", Password: "p",
	}); !errors.Is(err, lookupErr) {
		t.Fatalf("expected lookup failure to propagate, got %v", err)
	}
	if dir.creates != 0 {
		t.Fatalf("identity created despite lookup failure")
	}
	if len(users.users) != 0 {
		t.Fatalf("user inserted despite lookup failure")
	}
}

func TestUserService_Add_RollsBackIdentityOnStoreFailure(t *testing.T) {
	svc, users, _, dir := newUserFixture()
	users.createErr = errors.New("store down")

	if _, err := svc.Add(context.Background(), ports.AddUserInput{
		Username: "u", Email: "u@x.com", Password: "p",
	}); err == nil {
		t.Fatalf("expected error")
	}
	if len(dir.deletes) != 1 || dir.deletes[0] != "uid-1" {
		t.Fatalf("expected identity rollback for uid-1, got %v", dir.deletes)
	}
}
