package task

import "errors"

var (
	// ErrTaskNotFound indicates the task doesn't exist in this session.
	ErrTaskNotFound = errors.New("task not found")
	// ErrInvalidInput indicates invalid task input.
	ErrInvalidInput = errors.New("invalid task input")
)
