package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/collaborox/collaboro-gateway/internal/domain/assistant"
)

// ResponseRepository implements assistant.ResponseRepository for SQLite
type ResponseRepository struct {
	db *DB
}

// NewResponseRepository creates a new ResponseRepository
func NewResponseRepository(db *DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

// Append stores a response and prunes the session history down to capacity,
// oldest entries first. A capacity of zero or less means unbounded.
func (r *ResponseRepository) Append(ctx context.Context, sessionKey string, resp *assistant.Response, capacity int) error {
	recommendations, err := json.Marshal(resp.Recommendations)
	if err != nil {
		return fmt.Errorf("failed to encode recommendations: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO ai_responses (id, session_key, type, title, content, recommendations, project_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, insertQuery,
		resp.ID,
		sessionKey,
		string(resp.Type),
		resp.Title,
		resp.Content,
		string(recommendations),
		resp.ProjectID,
		resp.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to append response: %w", err)
	}

	if capacity > 0 {
		pruneQuery := `
			DELETE FROM ai_responses
			WHERE session_key = ?
			AND rowid NOT IN (
				SELECT rowid FROM ai_responses
				WHERE session_key = ?
				ORDER BY rowid DESC
				LIMIT ?
			)
		`
		if _, err := tx.ExecContext(ctx, pruneQuery, sessionKey, sessionKey, capacity); err != nil {
			return fmt.Errorf("failed to prune responses: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// List returns up to limit responses for the session, newest first.
func (r *ResponseRepository) List(ctx context.Context, sessionKey string, limit int) ([]assistant.Response, error) {
	query := `
		SELECT id, type, title, content, recommendations, project_id, created_at
		FROM ai_responses
		WHERE session_key = ?
		ORDER BY rowid DESC
	`
	args := []any{sessionKey}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	defer rows.Close()

	var responses []assistant.Response
	for rows.Next() {
		var (
			resp            assistant.Response
			recommendations string
		)
		err := rows.Scan(
			&resp.ID,
			&resp.Type,
			&resp.Title,
			&resp.Content,
			&recommendations,
			&resp.ProjectID,
			&resp.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		if err := json.Unmarshal([]byte(recommendations), &resp.Recommendations); err != nil {
			return nil, fmt.Errorf("failed to decode recommendations: %w", err)
		}
		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating response rows: %w", err)
	}

	return responses, nil
}
