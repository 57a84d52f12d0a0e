package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidEmail = errors.New("invalid email address")
var ErrInvalidRole = errors.New("invalid role")

// emailPattern is deliberately permissive: enough to reject obvious garbage
// before touching the directory or the store.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,4}$`)

// User models an account known to both the user directory and the document store.
type User struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	Email        string     `json:"email" bson:"email"`
	Username     string     `json:"username" bson:"username"`
	PasswordHash string     `json:"-" bson:"password_hash"`
	Role         string     `json:"rol" bson:"role"`
	LastLogin    *time.Time `json:"last_login,omitempty" bson:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" bson:"updated_at"`
}

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool {
	return r == RoleEmployee || r == RoleAdmin
}

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// NormalizeEmail lowercases and trims an email so lookups are case-insensitive.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
