package project

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/collaborox/collaboro-gateway/internal/domain/directory"
)

// Service runs the collection enrichment pipeline: fetch users and projects
// together, join them, then filter and sort for the board.
type Service struct {
	projects Repository
	users    directory.Repository
	logger   *slog.Logger
}

// NewService creates a new project service.
func NewService(projects Repository, users directory.Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{projects: projects, users: users, logger: logger}
}

// List fetches both source collections concurrently and returns the
// enriched, filtered, sorted board view. If either fetch fails the result is
// empty and the error wraps ErrUnavailable; the board is never rendered from
// one collection alone.
func (s *Service) List(ctx context.Context, q Query) ([]Enriched, error) {
	var (
		rawProjects []Project
		users       []directory.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rawProjects, err = s.projects.ListProjects(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.users.ListUsers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Warn("collection fetch failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	enriched := Enrich(rawProjects, users, time.Now())
	return Sort(Filter(enriched, q), q.SortBy), nil
}

// Get returns a raw project by ID. The upstream has no per-project endpoint,
// so this scans the collection.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	rawProjects, err := s.projects.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	for i := range rawProjects {
		if rawProjects[i].ID == id {
			return &rawProjects[i], nil
		}
	}
	return nil, ErrProjectNotFound
}
