package handler

import (
	"fmt"
	"time"
)

type createTaskRequest struct {
	Name        string `json:"name_task"   validate:"required"`
	Description string `json:"description"`
	DeadLine    string `json:"dead_line"`
	Status      string `json:"status"      validate:"required"`
	Category    string `json:"category"`
	Email       string `json:"email"       validate:"required,email"`
}

type createTaskResponse struct {
	Message string `json:"message"`
	TaskID  string `json:"taskId"`
}

type editTaskRequest struct {
	Name        string `json:"name_task"   validate:"required"`
	Description string `json:"description"`
	DeadLine    string `json:"dead_line"`
	Status      string `json:"status"      validate:"required"`
	Category    string `json:"category"`
	Email       string `json:"email"       validate:"required,email"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type assignTaskRequest struct {
	Name        string `json:"name_task"   validate:"required"`
	Description string `json:"description"`
	DeadLine    string `json:"dead_line"`
	Status      string `json:"status"`
	Category    string `json:"category"`
	Assignee    string `json:"email"       validate:"required,email"`
	GroupName   string `json:"groupName"   validate:"required"`
}

// parseDeadline accepts RFC 3339 timestamps or bare dates. An empty string
// means no deadline.
func parseDeadline(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("dead_line must be an RFC 3339 timestamp or YYYY-MM-DD date")
}
