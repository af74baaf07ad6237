package task

import "context"

// Repository persists board tasks per session.
type Repository interface {
	Create(ctx context.Context, sessionKey string, t *Task) error
	Get(ctx context.Context, sessionKey, id string) (*Task, error)
	List(ctx context.Context, sessionKey string, opts ListOptions) ([]Task, error)
	UpdateStatus(ctx context.Context, sessionKey, id string, status Status) error
}

// ListOptions provides filtering options for listing tasks.
type ListOptions struct {
	ProjectID  string
	Search     string
	AssigneeID string
	Status     Status
}
