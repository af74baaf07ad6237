package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/collaborox/collaboro-gateway/internal/domain/project"
	"github.com/collaborox/collaboro-gateway/internal/repository"
	"github.com/google/uuid"
)

// Service handles board task operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new task service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines task creation inputs.
type CreateRequest struct {
	ProjectID   string
	Title       string
	Description string
	AssigneeID  string
	DueDate     *time.Time
	Priority    project.Priority
	Tags        []string
}

// Create creates a new board task. Status starts at todo; priority defaults
// to medium when absent.
func (s *Service) Create(ctx context.Context, sessionKey string, req CreateRequest) (*Task, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.ProjectID) == "" {
		return nil, ErrInvalidInput
	}

	priority := req.Priority
	if priority == "" {
		priority = project.PriorityMedium
	}
	if !priority.Valid() {
		return nil, ErrInvalidInput
	}

	t := &Task{
		ID:          uuid.NewString(),
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
		Priority:    priority,
		Status:      StatusTodo,
		Tags:        req.Tags,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, sessionKey, t); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return t, nil
}

// List returns the session's tasks matching opts.
func (s *Service) List(ctx context.Context, sessionKey string, opts ListOptions) ([]Task, error) {
	if opts.Status != "" && !opts.Status.Valid() {
		return nil, ErrInvalidInput
	}
	return s.repo.List(ctx, sessionKey, opts)
}

// UpdateStatus moves a task to another board column.
func (s *Service) UpdateStatus(ctx context.Context, sessionKey, id string, status Status) (*Task, error) {
	if !status.Valid() {
		return nil, ErrInvalidInput
	}

	if err := s.repo.UpdateStatus(ctx, sessionKey, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("updating task status: %w", err)
	}

	t, err := s.repo.Get(ctx, sessionKey, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("getting task: %w", err)
	}
	return t, nil
}
