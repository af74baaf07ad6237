package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/collaborox/collaboro-gateway/internal/domain/project"
)

// Service runs the assistant pipeline: build a prompt, try the remote
// generator once under a deadline, degrade silently to local synthesis on any
// failure, then record the response in the session history.
type Service struct {
	generator    Generator
	responses    ResponseRepository
	timeout      time.Duration
	historyLimit int
	logger       *slog.Logger
}

// NewService creates a new assistant service. timeout bounds a single remote
// attempt; historyLimit caps the per-session response log.
func NewService(generator Generator, responses ResponseRepository, timeout time.Duration, historyLimit int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		generator:    generator,
		responses:    responses,
		timeout:      timeout,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

// Analyze produces a deep-analysis response for the project.
func (s *Service) Analyze(ctx context.Context, sessionKey string, p project.Project) (*Response, error) {
	return s.respond(ctx, sessionKey, TypeAnalysis, p, analysisPrompt(p), "AI Analysis: "+p.Name)
}

// Suggest produces task suggestions for the project.
func (s *Service) Suggest(ctx context.Context, sessionKey string, p project.Project) (*Response, error) {
	return s.respond(ctx, sessionKey, TypeSuggestion, p, suggestionPrompt(p), "Task Suggestions: "+p.Name)
}

// Chat answers a free-form question in the context of the project.
func (s *Service) Chat(ctx context.Context, sessionKey string, p project.Project, input string) (*Response, error) {
	return s.respond(ctx, sessionKey, TypeChat, p, chatPrompt(p, input), "AI Chat Response")
}

// History returns the session's responses, newest first.
func (s *Service) History(ctx context.Context, sessionKey string) ([]Response, error) {
	list, err := s.responses.List(ctx, sessionKey, s.historyLimit)
	if err != nil {
		return nil, fmt.Errorf("listing responses: %w", err)
	}
	return list, nil
}

func (s *Service) respond(ctx context.Context, sessionKey string, t ResponseType, p project.Project, prompt, title string) (*Response, error) {
	content := s.generate(ctx, t, p, prompt)

	resp := &Response{
		ID:              uuid.NewString(),
		Type:            t,
		Title:           title,
		Content:         content,
		Recommendations: recommendationsFor(t),
		Timestamp:       time.Now().UTC(),
		ProjectID:       p.ID,
	}

	if err := s.responses.Append(ctx, sessionKey, resp, s.historyLimit); err != nil {
		return nil, fmt.Errorf("appending response: %w", err)
	}
	return resp, nil
}

// generate tries the remote generator once. Every failure mode, transport
// error, bad status, malformed or empty body, timeout, lands on the local
// fallback; the user never sees an assistant error.
func (s *Service) generate(ctx context.Context, t ResponseType, p project.Project, prompt string) string {
	if s.generator == nil {
		return fallbackContent(t, p)
	}

	genCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.generator.Generate(genCtx, prompt)
	if err != nil {
		s.logger.Warn("remote generation failed, using local fallback", "type", t, "error", err)
		return fallbackContent(t, p)
	}
	return text
}
