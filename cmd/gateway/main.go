package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/collaborox/collaboro-gateway/internal/collabapi"
	"github.com/collaborox/collaboro-gateway/internal/config"
	"github.com/collaborox/collaboro-gateway/internal/domain/assistant"
	"github.com/collaborox/collaboro-gateway/internal/domain/project"
	"github.com/collaborox/collaboro-gateway/internal/domain/task"
	"github.com/collaborox/collaboro-gateway/internal/llm"
	"github.com/collaborox/collaboro-gateway/internal/sqlite"
	"github.com/collaborox/collaboro-gateway/internal/transport"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	apiClient := collabapi.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout(), logger)
	generator := llm.NewClient(cfg.AI.Endpoint, cfg.AI.Model, cfg.AI.Timeout())
	if cfg.AI.Endpoint == "" {
		logger.Warn("no AI endpoint configured, assistant will answer from local synthesis")
	}

	projectSvc := project.NewService(apiClient, apiClient, logger)
	assistantSvc := assistant.NewService(generator, sqlite.NewResponseRepository(db), cfg.AI.Timeout(), cfg.Assistant.HistoryLimit, logger)
	taskSvc := task.NewService(sqlite.NewTaskRepository(db), logger)

	router := transport.NewServer(transport.Services{
		Projects:  projectSvc,
		Assistant: assistantSvc,
		Tasks:     taskSvc,
		Auth:      apiClient,
	}, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("gateway listening", "addr", addr, "upstream", cfg.Upstream.BaseURL)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
