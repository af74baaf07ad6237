package integration_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collaborox/collaboro-gateway/internal/domain/assistant"
	"github.com/collaborox/collaboro-gateway/internal/domain/directory"
	"github.com/collaborox/collaboro-gateway/internal/domain/project"
	"github.com/collaborox/collaboro-gateway/internal/domain/task"
	"github.com/collaborox/collaboro-gateway/internal/testserver"
)

func seedBoard(ts *testserver.TestServer) {
	ts.Upstream.SetUsers([]directory.User{
		{ID: "u1", FirstName: "Alice", LastName: "Lee", Email: "alice@example.com"},
		{ID: "u2", FirstName: "Bob", LastName: "Smith", Email: "bob@example.com"},
	})
	ts.Upstream.SetProjects([]project.Project{
		{
			ID:        "p1",
			Name:      "Apollo",
			Tags:      []string{"go", "react"},
			ManagerID: "u1",
			Members:   []string{"u1", "u2", "u404"},
			Priority:  project.PriorityHigh,
			CreatedAt: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "p2",
			Name:      "Borealis",
			ManagerID: "u2",
			Priority:  project.PriorityLow,
			CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	})
}

func TestGateway_ListProjectsEnriched(t *testing.T) {
	ts := testserver.New(t, "")
	seedBoard(ts)

	var got []project.Enriched
	status := ts.Do(t, http.MethodGet, "/api/projects", nil, &got)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, got, 2)

	apollo := got[0]
	assert.Equal(t, "p1", apollo.ID)
	// The unknown member id is dropped, the rest resolve to full names.
	require.Len(t, apollo.Members, 2)
	assert.Equal(t, "Alice Lee", apollo.Members[0].Name)
	assert.Contains(t, apollo.Members[0].AvatarURL, "seed=alicelee")
	assert.Equal(t, "Bob Smith", apollo.Members[1].Name)

	assert.Equal(t, project.StatusForProgress(apollo.Progress), apollo.Status)
	assert.NotEmpty(t, apollo.DueDate)
	assert.NotEmpty(t, apollo.Description)

	// Placeholder metrics are stable across requests.
	var again []project.Enriched
	ts.Do(t, http.MethodGet, "/api/projects", nil, &again)
	assert.Equal(t, got, again)
}

func TestGateway_ListProjectsFilters(t *testing.T) {
	ts := testserver.New(t, "")
	seedBoard(ts)

	var got []project.Enriched
	status := ts.Do(t, http.MethodGet, "/api/projects?priority=high", nil, &got)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)

	status = ts.Do(t, http.MethodGet, "/api/projects?q=borealis", nil, &got)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)

	status = ts.Do(t, http.MethodGet, "/api/projects?status=bogus", nil, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGateway_UpstreamDown(t *testing.T) {
	ts := testserver.New(t, "")
	seedBoard(ts)
	ts.Upstream.Fail(true)

	status := ts.Do(t, http.MethodGet, "/api/projects", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestGateway_RequiresBearerToken(t *testing.T) {
	ts := testserver.New(t, "")

	resp, err := http.Get(ts.Gateway.URL + "/api/projects")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGateway_GetProject(t *testing.T) {
	ts := testserver.New(t, "")
	seedBoard(ts)

	var got project.Project
	status := ts.Do(t, http.MethodGet, "/api/projects/p2", nil, &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Borealis", got.Name)

	status = ts.Do(t, http.MethodGet, "/api/projects/p404", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestGateway_AssistFallbackAndHistory(t *testing.T) {
	ts := testserver.New(t, "")
	seedBoard(ts)

	// No AI endpoint configured: the assistant answers from local synthesis
	// and the client still receives a well-formed response.
	var analysis assistant.Response
	status := ts.Do(t, http.MethodPost, "/api/assist/analysis", map[string]string{"projectId": "p1"}, &analysis)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, assistant.TypeAnalysis, analysis.Type)
	assert.Equal(t, "AI Analysis: Apollo", analysis.Title)
	assert.Contains(t, analysis.Content, "Project Health Score")
	assert.Len(t, analysis.Recommendations, 4)

	var chat assistant.Response
	status = ts.Do(t, http.MethodPost, "/api/assist/chat", map[string]string{
		"projectId": "p1",
		"message":   "where should we start?",
	}, &chat)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, assistant.TypeChat, chat.Type)
	assert.Contains(t, chat.Content, "Apollo")
	assert.Empty(t, chat.Recommendations)

	var history []assistant.Response
	status = ts.Do(t, http.MethodGet, "/api/assist/history", nil, &history)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, history, 2)
	assert.Equal(t, chat.ID, history[0].ID)
	assert.Equal(t, analysis.ID, history[1].ID)
}

func TestGateway_AssistValidation(t *testing.T) {
	ts := testserver.New(t, "")
	seedBoard(ts)

	status := ts.Do(t, http.MethodPost, "/api/assist/analysis", map[string]string{}, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status = ts.Do(t, http.MethodPost, "/api/assist/chat", map[string]string{"projectId": "p1", "message": "  "}, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status = ts.Do(t, http.MethodPost, "/api/assist/suggestions", map[string]string{"projectId": "p404"}, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestGateway_TaskLifecycle(t *testing.T) {
	ts := testserver.New(t, "")
	seedBoard(ts)

	var created task.Task
	status := ts.Do(t, http.MethodPost, "/api/projects/p1/tasks", map[string]any{
		"title":      "Write onboarding docs",
		"assigneeId": "u2",
		"tags":       []string{"docs"},
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "p1", created.ProjectID)
	assert.Equal(t, task.StatusTodo, created.Status)
	assert.Equal(t, project.PriorityMedium, created.Priority)

	var list []task.Task
	status = ts.Do(t, http.MethodGet, "/api/projects/p1/tasks", nil, &list)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list, 1)

	var updated task.Task
	status = ts.Do(t, http.MethodPatch, "/api/tasks/"+created.ID+"/status", map[string]string{"status": "done"}, &updated)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, task.StatusDone, updated.Status)

	status = ts.Do(t, http.MethodPatch, "/api/tasks/missing/status", map[string]string{"status": "done"}, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status = ts.Do(t, http.MethodPost, "/api/projects/p1/tasks", map[string]string{"title": "  "}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGateway_AuthProxy(t *testing.T) {
	ts := testserver.New(t, "")

	var creds struct {
		Token string `json:"token"`
	}
	status := ts.Do(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "Str0ng!pass",
	}, &creds)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, strings.HasPrefix(creds.Token, "token-"))

	status = ts.Do(t, http.MethodPost, "/auth/login", map[string]string{
		"email":    "not-an-email",
		"password": "Str0ng!pass",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGateway_Signup(t *testing.T) {
	ts := testserver.New(t, "")

	var weak struct {
		Error    string `json:"error"`
		Strength struct {
			Score int    `json:"score"`
			Label string `json:"label"`
		} `json:"strength"`
	}
	status := ts.Do(t, http.MethodPost, "/auth/signup", map[string]string{
		"firstName": "Alice",
		"lastName":  "Lee",
		"email":     "alice@example.com",
		"password":  "abc",
	}, &weak)
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "password too weak", weak.Error)
	assert.NotEmpty(t, weak.Strength.Label)

	var creds struct {
		Token string `json:"token"`
	}
	status = ts.Do(t, http.MethodPost, "/auth/signup", map[string]string{
		"firstName": "Alice",
		"lastName":  "Lee",
		"email":     "alice@example.com",
		"password":  "Str0ng!pass",
	}, &creds)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "token-alice@example.com", creds.Token)
}
