package directory

import "context"

// Repository provides read access to the upstream user collection.
type Repository interface {
	ListUsers(ctx context.Context) ([]User, error)
}
