package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/collaborox/collaboro-gateway/internal/domain/task"
	"github.com/collaborox/collaboro-gateway/internal/repository"
)

// TaskRepository implements task.Repository for SQLite
type TaskRepository struct {
	db *DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(ctx context.Context, sessionKey string, t *task.Task) error {
	tags, err := json.Marshal(t.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	query := `
		INSERT INTO tasks (id, session_key, project_id, title, description, assignee_id, due_date, priority, status, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var dueDate any
	if t.DueDate != nil {
		dueDate = *t.DueDate
	}

	_, err = r.db.ExecContext(ctx, query,
		t.ID,
		sessionKey,
		t.ProjectID,
		t.Title,
		t.Description,
		t.AssigneeID,
		dueDate,
		string(t.Priority),
		string(t.Status),
		string(tags),
		t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// Get retrieves a task by ID
func (r *TaskRepository) Get(ctx context.Context, sessionKey, id string) (*task.Task, error) {
	query := `
		SELECT id, project_id, title, description, assignee_id, due_date, priority, status, tags, created_at
		FROM tasks
		WHERE id = ? AND session_key = ?
	`

	t, err := scanTask(r.db.QueryRowContext(ctx, query, id, sessionKey))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// List returns the session's tasks matching opts, oldest first.
func (r *TaskRepository) List(ctx context.Context, sessionKey string, opts task.ListOptions) ([]task.Task, error) {
	query := `
		SELECT id, project_id, title, description, assignee_id, due_date, priority, status, tags, created_at
		FROM tasks
		WHERE session_key = ?
	`
	args := []any{sessionKey}

	if opts.ProjectID != "" {
		query += " AND project_id = ?"
		args = append(args, opts.ProjectID)
	}
	if opts.AssigneeID != "" {
		query += " AND assignee_id = ?"
		args = append(args, opts.AssigneeID)
	}
	if opts.Status != "" {
		query += " AND status = ?"
		args = append(args, string(opts.Status))
	}
	if opts.Search != "" {
		query += " AND lower(title) LIKE ?"
		args = append(args, "%"+strings.ToLower(opts.Search)+"%")
	}
	query += " ORDER BY rowid ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}

// UpdateStatus moves a task to another board column
func (r *TaskRepository) UpdateStatus(ctx context.Context, sessionKey, id string, status task.Status) error {
	query := `
		UPDATE tasks
		SET status = ?
		WHERE id = ? AND session_key = ?
	`

	result, err := r.db.ExecContext(ctx, query, string(status), id, sessionKey)
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*task.Task, error) {
	var (
		t       task.Task
		dueDate sql.NullTime
		tags    string
	)
	err := row.Scan(
		&t.ID,
		&t.ProjectID,
		&t.Title,
		&t.Description,
		&t.AssigneeID,
		&dueDate,
		&t.Priority,
		&t.Status,
		&tags,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if dueDate.Valid {
		due := dueDate.Time
		t.DueDate = &due
	}
	if err := json.Unmarshal([]byte(tags), &t.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	return &t, nil
}
