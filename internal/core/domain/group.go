package domain

import (
	"errors"
	"time"
)

var ErrGroupNotFound = errors.New("group not found")
var ErrNotGroupMember = errors.New("user is not a member of the group")
var ErrAlreadyGrouped = errors.New("user already belongs to a group")

// Group is a named set of member emails owned by its creator.
type Group struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedBy   string    `json:"created_by" bson:"created_by"`
	Members     []string  `json:"members" bson:"members"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// HasMember reports whether email is in the member set.
func (g *Group) HasMember(email string) bool {
	for _, m := range g.Members {
		if m == email {
			return true
		}
	}
	return false
}

// MergeMembers unions incoming into current, preserving insertion order and
// suppressing duplicates. Emails are normalized before comparison.
func MergeMembers(current, incoming []string) []string {
	seen := make(map[string]struct{}, len(current)+len(incoming))
	merged := make([]string, 0, len(current)+len(incoming))
	for _, m := range current {
		e := NormalizeEmail(m)
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		merged = append(merged, e)
	}
	for _, m := range incoming {
		e := NormalizeEmail(m)
		if e == "" {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		merged = append(merged, e)
	}
	return merged
}
