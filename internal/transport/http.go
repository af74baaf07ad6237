package transport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/collaborox/collaboro-gateway/internal/auth"
	"github.com/collaborox/collaboro-gateway/internal/collabapi"
	"github.com/collaborox/collaboro-gateway/internal/domain/assistant"
	"github.com/collaborox/collaboro-gateway/internal/domain/project"
	"github.com/collaborox/collaboro-gateway/internal/domain/task"
)

// AuthClient proxies credentials to the upstream auth endpoints.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (*collabapi.Credentials, error)
	Signup(ctx context.Context, req collabapi.SignupRequest) (*collabapi.Credentials, error)
}

// Services bundles the domain services behind the REST API.
type Services struct {
	Projects  *project.Service
	Assistant *assistant.Service
	Tasks     *task.Service
	Auth      AuthClient
}

// Server wires HTTP handlers.
type Server struct {
	services Services
	logger   *slog.Logger
}

// NewServer creates the gateway router.
func NewServer(services Services, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}
	srv := &Server{services: services, logger: logger}

	r := chi.NewRouter()
	r.Get("/health", srv.handleHealth)
	r.Post("/auth/login", srv.handleLogin)
	r.Post("/auth/signup", srv.handleSignup)

	r.Route("/api", func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Get("/projects", srv.handleListProjects)
		r.Get("/projects/{id}", srv.handleGetProject)
		r.Get("/projects/{id}/tasks", srv.handleListTasks)
		r.Post("/projects/{id}/tasks", srv.handleCreateTask)
		r.Patch("/tasks/{id}/status", srv.handleUpdateTaskStatus)

		r.Post("/assist/analysis", srv.handleAnalysis)
		r.Post("/assist/suggestions", srv.handleSuggestions)
		r.Post("/assist/chat", srv.handleChat)
		r.Get("/assist/history", srv.handleHistory)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !strings.Contains(req.Email, "@") || len(req.Password) < 6 {
		writeError(w, http.StatusBadRequest, "invalid email or password")
		return
	}

	creds, err := s.services.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, collabapi.ErrAuthRejected) {
			writeError(w, http.StatusUnauthorized, "login failed, check your credentials")
			return
		}
		s.logger.Error("login proxy failed", "error", err)
		writeError(w, http.StatusBadGateway, "authentication service unavailable")
		return
	}
	writeJSON(w, http.StatusOK, creds)
}

type signupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" || !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "missing name or email")
		return
	}

	if strength := auth.Score(req.Password); strength.Score < 3 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":    "password too weak",
			"strength": strength,
		})
		return
	}

	creds, err := s.services.Auth.Signup(r.Context(), collabapi.SignupRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, collabapi.ErrAuthRejected) {
			writeError(w, http.StatusUnauthorized, "signup rejected")
			return
		}
		s.logger.Error("signup proxy failed", "error", err)
		writeError(w, http.StatusBadGateway, "authentication service unavailable")
		return
	}
	writeJSON(w, http.StatusCreated, creds)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := project.Query{
		Search:   params.Get("q"),
		Status:   project.Status(params.Get("status")),
		Priority: project.Priority(params.Get("priority")),
		SortBy:   params.Get("sort"),
	}
	if q.Status != "" && !q.Status.Valid() {
		writeError(w, http.StatusBadRequest, "unknown status filter")
		return
	}
	if q.Priority != "" && !q.Priority.Valid() {
		writeError(w, http.StatusBadRequest, "unknown priority filter")
		return
	}

	projects, err := s.services.Projects.List(r.Context(), q)
	if err != nil {
		s.writeProjectError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	proj, err := s.services.Projects.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeProjectError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, proj)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	sessionKey, _ := SessionKeyFromContext(r.Context())
	params := r.URL.Query()

	opts := task.ListOptions{
		ProjectID:  chi.URLParam(r, "id"),
		Search:     params.Get("q"),
		AssigneeID: params.Get("assignee"),
		Status:     task.Status(params.Get("status")),
	}

	tasks, err := s.services.Tasks.List(r.Context(), sessionKey, opts)
	if err != nil {
		if errors.Is(err, task.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "unknown status filter")
			return
		}
		s.logger.Error("listing tasks failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

type createTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	AssigneeID  string   `json:"assigneeId"`
	DueDate     string   `json:"dueDate"`
	Priority    string   `json:"priority"`
	Tags        []string `json:"tags"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	sessionKey, _ := SessionKeyFromContext(r.Context())

	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		due, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid due date")
			return
		}
		dueDate = &due
	}

	created, err := s.services.Tasks.Create(r.Context(), sessionKey, task.CreateRequest{
		ProjectID:   chi.URLParam(r, "id"),
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		DueDate:     dueDate,
		Priority:    project.Priority(req.Priority),
		Tags:        req.Tags,
	})
	if err != nil {
		if errors.Is(err, task.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid task input")
			return
		}
		s.logger.Error("creating task failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type updateTaskStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleUpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	sessionKey, _ := SessionKeyFromContext(r.Context())

	var req updateTaskStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.services.Tasks.UpdateStatus(r.Context(), sessionKey, chi.URLParam(r, "id"), task.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, task.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "unknown status")
		case errors.Is(err, task.ErrTaskNotFound):
			writeError(w, http.StatusNotFound, "task not found")
		default:
			s.logger.Error("updating task failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

type assistRequest struct {
	ProjectID string `json:"projectId"`
	Message   string `json:"message"`
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	s.handleAssist(w, r, func(ctx context.Context, sessionKey string, p project.Project, _ string) (*assistant.Response, error) {
		return s.services.Assistant.Analyze(ctx, sessionKey, p)
	}, false)
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	s.handleAssist(w, r, func(ctx context.Context, sessionKey string, p project.Project, _ string) (*assistant.Response, error) {
		return s.services.Assistant.Suggest(ctx, sessionKey, p)
	}, false)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	s.handleAssist(w, r, func(ctx context.Context, sessionKey string, p project.Project, message string) (*assistant.Response, error) {
		return s.services.Assistant.Chat(ctx, sessionKey, p, message)
	}, true)
}

type assistFunc func(ctx context.Context, sessionKey string, p project.Project, message string) (*assistant.Response, error)

func (s *Server) handleAssist(w http.ResponseWriter, r *http.Request, fn assistFunc, needsMessage bool) {
	sessionKey, _ := SessionKeyFromContext(r.Context())

	var req assistRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProjectID == "" {
		writeError(w, http.StatusBadRequest, "missing project id")
		return
	}
	if needsMessage && strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "missing message")
		return
	}

	proj, err := s.services.Projects.Get(r.Context(), req.ProjectID)
	if err != nil {
		s.writeProjectError(w, err)
		return
	}

	resp, err := fn(r.Context(), sessionKey, *proj, req.Message)
	if err != nil {
		s.logger.Error("assistant pipeline failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sessionKey, _ := SessionKeyFromContext(r.Context())

	history, err := s.services.Assistant.History(r.Context(), sessionKey)
	if err != nil {
		s.logger.Error("listing history failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if history == nil {
		history = []assistant.Response{}
	}
	writeJSON(w, http.StatusOK, history)
}

func (s *Server) writeProjectError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		writeError(w, http.StatusNotFound, "project not found")
	case errors.Is(err, project.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "project data unavailable, try again")
	default:
		s.logger.Error("project pipeline failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
