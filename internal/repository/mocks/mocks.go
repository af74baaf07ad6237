package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/collaborox/collaboro-gateway/internal/domain/assistant"
	"github.com/collaborox/collaboro-gateway/internal/domain/directory"
	"github.com/collaborox/collaboro-gateway/internal/domain/project"
	"github.com/collaborox/collaboro-gateway/internal/domain/task"
)

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) ListProjects(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// UserRepository is a mock for directory.Repository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) ListUsers(ctx context.Context) ([]directory.User, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]directory.User); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ResponseRepository is a mock for assistant.ResponseRepository.
type ResponseRepository struct {
	mock.Mock
}

func (m *ResponseRepository) Append(ctx context.Context, sessionKey string, resp *assistant.Response, capacity int) error {
	args := m.Called(ctx, sessionKey, resp, capacity)
	return args.Error(0)
}

func (m *ResponseRepository) List(ctx context.Context, sessionKey string, limit int) ([]assistant.Response, error) {
	args := m.Called(ctx, sessionKey, limit)
	if list, ok := args.Get(0).([]assistant.Response); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// Generator is a mock for assistant.Generator.
type Generator struct {
	mock.Mock
}

func (m *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// TaskRepository is a mock for task.Repository.
type TaskRepository struct {
	mock.Mock
}

func (m *TaskRepository) Create(ctx context.Context, sessionKey string, t *task.Task) error {
	args := m.Called(ctx, sessionKey, t)
	return args.Error(0)
}

func (m *TaskRepository) Get(ctx context.Context, sessionKey, id string) (*task.Task, error) {
	args := m.Called(ctx, sessionKey, id)
	if t, ok := args.Get(0).(*task.Task); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaskRepository) List(ctx context.Context, sessionKey string, opts task.ListOptions) ([]task.Task, error) {
	args := m.Called(ctx, sessionKey, opts)
	if list, ok := args.Get(0).([]task.Task); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaskRepository) UpdateStatus(ctx context.Context, sessionKey, id string, status task.Status) error {
	args := m.Called(ctx, sessionKey, id, status)
	return args.Error(0)
}
