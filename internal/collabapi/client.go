// Package collabapi is the HTTP client for the upstream CollaboroX backend,
// the opaque service that owns all durable user and project state.
package collabapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/collaborox/collaboro-gateway/internal/domain/directory"
	"github.com/collaborox/collaboro-gateway/internal/domain/project"
)

// Client talks to the upstream REST API. It implements directory.Repository
// and project.Repository.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client for the given base URL. timeout bounds each
// request on top of any context deadline.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// The upstream serves lowercase field names and dates as strings; these wire
// types are mapped to domain types before they leave this package.

type userDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
}

type projectDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	ManagerID   string   `json:"managerid"`
	Members     []string `json:"members"`
	Priority    string   `json:"priority"`
	CreatedAt   string   `json:"createdat"`
}

// ListUsers fetches the full user collection.
func (c *Client) ListUsers(ctx context.Context) ([]directory.User, error) {
	var dtos []userDTO
	if err := c.getJSON(ctx, "/projects/allusers", &dtos); err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}

	users := make([]directory.User, 0, len(dtos))
	for _, d := range dtos {
		users = append(users, directory.User{
			ID:        d.ID,
			FirstName: d.FirstName,
			LastName:  d.LastName,
			Email:     d.Email,
		})
	}
	return users, nil
}

// ListProjects fetches the full project collection.
func (c *Client) ListProjects(ctx context.Context) ([]project.Project, error) {
	var dtos []projectDTO
	if err := c.getJSON(ctx, "/projects/allprojects", &dtos); err != nil {
		return nil, fmt.Errorf("fetching projects: %w", err)
	}

	projects := make([]project.Project, 0, len(dtos))
	for _, d := range dtos {
		priority := project.Priority(d.Priority)
		if !priority.Valid() {
			priority = project.PriorityMedium
		}
		projects = append(projects, project.Project{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Tags:        d.Tags,
			ManagerID:   d.ManagerID,
			Members:     d.Members,
			Priority:    priority,
			CreatedAt:   parseCreatedAt(d.CreatedAt),
		})
	}
	return projects, nil
}

func parseCreatedAt(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("upstream returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) (int, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return 0, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decoding response: %w", err)
	}
	return resp.StatusCode, nil
}
