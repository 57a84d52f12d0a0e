package domain

import (
	"errors"
	"time"
)

var ErrTaskNotFound = errors.New("task not found")

// ErrMissingFields flags required request fields that were absent or empty.
var ErrMissingFields = errors.New("missing required fields")

// Task is a unit of work in one of two shapes: self-owned (Email set) or
// group-assigned (AssignedTo, GroupName and CreatedBy set). Exactly one shape
// is populated per document so the owner always resolves to a single user.
type Task struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Name        string     `json:"name_task" bson:"name_task"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	DueDate     *time.Time `json:"dead_line" bson:"dead_line"`
	Status      string     `json:"status" bson:"status"`
	Category    string     `json:"category,omitempty" bson:"category,omitempty"`

	// Self-owned shape.
	Email string `json:"email,omitempty" bson:"email,omitempty"`

	// Group-assigned shape.
	AssignedTo string `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	GroupName  string `json:"group,omitempty" bson:"group,omitempty"`
	CreatedBy  string `json:"created_by,omitempty" bson:"created_by,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Owner returns the single email the task resolves to.
func (t *Task) Owner() string {
	if t.AssignedTo != "" {
		return t.AssignedTo
	}
	return t.Email
}
