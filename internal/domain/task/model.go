package task

import (
	"time"

	"github.com/collaborox/collaboro-gateway/internal/domain/project"
)

// Status is the board column a task sits in.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task is a board card for a project.
type Task struct {
	ID          string           `json:"id"`
	ProjectID   string           `json:"projectId"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	AssigneeID  string           `json:"assigneeId,omitempty"`
	DueDate     *time.Time       `json:"dueDate,omitempty"`
	Priority    project.Priority `json:"priority"`
	Status      Status           `json:"status"`
	Tags        []string         `json:"tags,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}
