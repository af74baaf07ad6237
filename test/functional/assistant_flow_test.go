package functional_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collaborox/collaboro-gateway/internal/domain/assistant"
	"github.com/collaborox/collaboro-gateway/internal/domain/directory"
	"github.com/collaborox/collaboro-gateway/internal/domain/project"
	"github.com/collaborox/collaboro-gateway/internal/testserver"
)

func seedProject(ts *testserver.TestServer) {
	ts.Upstream.SetUsers([]directory.User{
		{ID: "u1", FirstName: "Alice", LastName: "Lee", Email: "alice@example.com"},
	})
	ts.Upstream.SetProjects([]project.Project{
		{
			ID:        "p1",
			Name:      "Apollo",
			Tags:      []string{"go"},
			ManagerID: "u1",
			Members:   []string{"u1"},
			Priority:  project.PriorityHigh,
			CreatedAt: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	})
}

func TestAssistantFlow_RemoteGeneration(t *testing.T) {
	var prompts atomic.Int32
	ai := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Prompt string `json:"prompt"`
			Model  string `json:"model"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Prompt)
		require.Equal(t, "gpt-3.5-turbo", req.Model)
		prompts.Add(1)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "remote answer"})
	}))
	defer ai.Close()

	ts := testserver.New(t, ai.URL)
	seedProject(ts)

	var resp assistant.Response
	status := ts.Do(t, http.MethodPost, "/api/assist/analysis", map[string]string{"projectId": "p1"}, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "remote answer", resp.Content)
	assert.Equal(t, int32(1), prompts.Load())
}

func TestAssistantFlow_RemoteFailureDegradesSilently(t *testing.T) {
	ai := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer ai.Close()

	ts := testserver.New(t, ai.URL)
	seedProject(ts)

	// The client still gets 200 with a synthesized answer.
	var resp assistant.Response
	status := ts.Do(t, http.MethodPost, "/api/assist/suggestions", map[string]string{"projectId": "p1"}, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, assistant.TypeSuggestion, resp.Type)
	assert.Contains(t, resp.Content, "task suggestions")

	// The fallback answer still lands in the history.
	var history []assistant.Response
	status = ts.Do(t, http.MethodGet, "/api/assist/history", nil, &history)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, history, 1)
	assert.Equal(t, resp.ID, history[0].ID)
}
