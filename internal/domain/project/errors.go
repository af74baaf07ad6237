package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist upstream.
	ErrProjectNotFound = errors.New("project not found")
	// ErrUnavailable indicates one of the source collections could not be
	// fetched. The caller gets an empty result, never a partial one.
	ErrUnavailable = errors.New("project data unavailable")
)
