package project

import "context"

// Repository provides read access to the upstream project collection.
type Repository interface {
	ListProjects(ctx context.Context) ([]Project, error)
}
