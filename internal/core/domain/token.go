package domain

import "errors"

// ErrInvalidToken covers malformed, tampered and expired tokens alike; the
// caller only learns "unauthorized".
var ErrInvalidToken = errors.New("invalid token")

// Claims are the identity facts carried inside a verified session token.
type Claims struct {
	UID      string
	Email    string
	Username string
	Role     string
}
