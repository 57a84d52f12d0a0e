package ports

import "context"

// Directory is the external user-directory service holding identity records.
// The core only needs identity creation (registration), deletion (admin
// removal and registration rollback) — credential checks happen locally
// against the stored hash.
type Directory interface {
	// CreateIdentity registers a new identity and returns its uid.
	CreateIdentity(ctx context.Context, email, password, displayName string) (string, error)
	DeleteIdentity(ctx context.Context, uid string) error
}
