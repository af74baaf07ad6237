package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the gateway schema. The gateway only persists what
// the upstream API does not own: assistant response history and board tasks,
// both scoped by the hashed session token.
func (db *DB) RunMigrations() error {
	migration := `
-- Assistant response history, newest entries have the highest rowid
CREATE TABLE IF NOT EXISTS ai_responses (
    id TEXT PRIMARY KEY,
    session_key TEXT NOT NULL,
    type TEXT NOT NULL CHECK(type IN ('analysis', 'suggestion', 'chat')),
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    recommendations TEXT NOT NULL,
    project_id TEXT,
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_session_responses ON ai_responses(session_key);

-- Board tasks
CREATE TABLE IF NOT EXISTS tasks (
    id TEXT PRIMARY KEY,
    session_key TEXT NOT NULL,
    project_id TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    assignee_id TEXT NOT NULL DEFAULT '',
    due_date TIMESTAMP,
    priority TEXT NOT NULL CHECK(priority IN ('low', 'medium', 'high', 'urgent')),
    status TEXT NOT NULL CHECK(status IN ('todo', 'in_progress', 'done')),
    tags TEXT NOT NULL DEFAULT '[]',
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_session_tasks ON tasks(session_key);
CREATE INDEX IF NOT EXISTS idx_project_tasks ON tasks(project_id);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
