package testserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/collaborox/collaboro-gateway/internal/collabapi"
	"github.com/collaborox/collaboro-gateway/internal/domain/assistant"
	"github.com/collaborox/collaboro-gateway/internal/domain/directory"
	"github.com/collaborox/collaboro-gateway/internal/domain/project"
	"github.com/collaborox/collaboro-gateway/internal/domain/task"
	"github.com/collaborox/collaboro-gateway/internal/llm"
	"github.com/collaborox/collaboro-gateway/internal/sqlite"
	"github.com/collaborox/collaboro-gateway/internal/transport"
)

// Upstream is a fake CollaboroX backend for tests. Collections are mutable
// between requests; Fail makes both collection endpoints return 500.
type Upstream struct {
	mu       sync.Mutex
	users    []directory.User
	projects []project.Project
	fail     bool

	Server *httptest.Server
}

// SetUsers replaces the served user collection.
func (u *Upstream) SetUsers(users []directory.User) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.users = users
}

// SetProjects replaces the served project collection.
func (u *Upstream) SetProjects(projects []project.Project) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.projects = projects
}

// Fail toggles hard failure of the collection endpoints.
func (u *Upstream) Fail(fail bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.fail = fail
}

func (u *Upstream) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/projects/allusers", func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		defer u.mu.Unlock()
		if u.fail {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		dtos := make([]map[string]any, 0, len(u.users))
		for _, usr := range u.users {
			dtos = append(dtos, map[string]any{
				"id":        usr.ID,
				"firstname": usr.FirstName,
				"lastname":  usr.LastName,
				"email":     usr.Email,
			})
		}
		writeJSON(w, http.StatusOK, dtos)
	})
	mux.HandleFunc("/projects/allprojects", func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		defer u.mu.Unlock()
		if u.fail {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		dtos := make([]map[string]any, 0, len(u.projects))
		for _, p := range u.projects {
			dtos = append(dtos, map[string]any{
				"id":          p.ID,
				"name":        p.Name,
				"description": p.Description,
				"tags":        p.Tags,
				"managerid":   p.ManagerID,
				"members":     p.Members,
				"priority":    string(p.Priority),
				"createdat":   p.CreatedAt.Format(time.RFC3339),
			})
		}
		writeJSON(w, http.StatusOK, dtos)
	})
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "bad credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"token": "token-" + req.Email,
			"user":  map[string]string{"id": "u-login", "email": req.Email},
		})
	})
	mux.HandleFunc("/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		var req collabapi.SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad request"})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"token": "token-" + req.Email,
			"user":  map[string]string{"id": "u-signup", "email": req.Email},
		})
	})
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// TestServer runs the whole gateway in-process against a fake upstream.
type TestServer struct {
	Gateway  *httptest.Server
	Upstream *Upstream
	DB       *sqlite.DB
	Token    string
}

// New boots a gateway wired to a fresh fake upstream and an in-memory
// database. aiEndpoint may be empty, which forces the assistant onto its
// local fallback.
func New(t *testing.T, aiEndpoint string) *TestServer {
	t.Helper()

	upstream := &Upstream{}
	upstream.Server = httptest.NewServer(upstream.handler())

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	apiClient := collabapi.NewClient(upstream.Server.URL, 5*time.Second, nil)
	generator := llm.NewClient(aiEndpoint, "gpt-3.5-turbo", 5*time.Second)

	projectSvc := project.NewService(apiClient, apiClient, nil)
	assistantSvc := assistant.NewService(generator, sqlite.NewResponseRepository(db), 5*time.Second, 50, nil)
	taskSvc := task.NewService(sqlite.NewTaskRepository(db), nil)

	router := transport.NewServer(transport.Services{
		Projects:  projectSvc,
		Assistant: assistantSvc,
		Tasks:     taskSvc,
		Auth:      apiClient,
	}, nil)
	gateway := httptest.NewServer(router)

	ts := &TestServer{
		Gateway:  gateway,
		Upstream: upstream,
		DB:       db,
		Token:    "test-token",
	}

	t.Cleanup(func() {
		gateway.Close()
		upstream.Server.Close()
		_ = db.Close()
	})

	return ts
}

// Do sends an authenticated request to the gateway and decodes the JSON
// response into out when it is non-nil.
func (ts *TestServer) Do(t *testing.T, method, path string, body any, out any) int {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(payload))
	} else {
		reader = strings.NewReader("")
	}

	req, err := http.NewRequest(method, ts.Gateway.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+ts.Token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}
