package project_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/collaborox/collaboro-gateway/internal/domain/directory"
	"github.com/collaborox/collaboro-gateway/internal/domain/project"
	"github.com/collaborox/collaboro-gateway/internal/repository/mocks"
)

func TestProjectService_ListEnriches(t *testing.T) {
	ctx := context.Background()

	projects := &mocks.ProjectRepository{}
	users := &mocks.UserRepository{}
	projects.On("ListProjects", mock.Anything).Return([]project.Project{
		{ID: "p1", Name: "Alpha", ManagerID: "u1", Members: []string{"u1", "u404"}},
	}, nil)
	users.On("ListUsers", mock.Anything).Return([]directory.User{
		{ID: "u1", FirstName: "Alice", LastName: "Lee"},
	}, nil)

	svc := project.NewService(projects, users, nil)
	got, err := svc.List(ctx, project.Query{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Members, 1)
	assert.Equal(t, "Alice Lee", got[0].Members[0].Name)
}

func TestProjectService_ListUnavailableOnEitherFailure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	tests := []struct {
		name        string
		projectsErr error
		usersErr    error
	}{
		{name: "projects fetch fails", projectsErr: boom},
		{name: "users fetch fails", usersErr: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects := &mocks.ProjectRepository{}
			users := &mocks.UserRepository{}
			projects.On("ListProjects", mock.Anything).Return([]project.Project{{ID: "p1"}}, tt.projectsErr)
			users.On("ListUsers", mock.Anything).Return([]directory.User{{ID: "u1"}}, tt.usersErr)

			svc := project.NewService(projects, users, nil)
			got, err := svc.List(ctx, project.Query{})
			require.ErrorIs(t, err, project.ErrUnavailable)
			assert.Empty(t, got)
		})
	}
}

func TestProjectService_Get(t *testing.T) {
	ctx := context.Background()

	projects := &mocks.ProjectRepository{}
	projects.On("ListProjects", mock.Anything).Return([]project.Project{
		{ID: "p1", Name: "Alpha"},
		{ID: "p2", Name: "Beta"},
	}, nil)

	svc := project.NewService(projects, &mocks.UserRepository{}, nil)

	proj, err := svc.Get(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, "Beta", proj.Name)

	_, err = svc.Get(ctx, "p404")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestProjectService_GetUnavailable(t *testing.T) {
	ctx := context.Background()

	projects := &mocks.ProjectRepository{}
	projects.On("ListProjects", mock.Anything).Return(nil, errors.New("boom"))

	svc := project.NewService(projects, &mocks.UserRepository{}, nil)
	_, err := svc.Get(ctx, "p1")
	require.ErrorIs(t, err, project.ErrUnavailable)
}
