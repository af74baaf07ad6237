package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines gateway configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Upstream  UpstreamConfig  `yaml:"upstream"`
	AI        AIConfig        `yaml:"ai"`
	DB        DBConfig        `yaml:"db"`
	Assistant AssistantConfig `yaml:"assistant"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// UpstreamConfig points at the CollaboroX backend that owns all durable
// user and project state.
type UpstreamConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the upstream request timeout.
func (c UpstreamConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// AIConfig points at the text-generation endpoint.
type AIConfig struct {
	Endpoint       string `yaml:"endpoint"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the deadline applied to a single generation attempt.
func (c AIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type AssistantConfig struct {
	HistoryLimit int `yaml:"history_limit"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Upstream: UpstreamConfig{
			BaseURL:        "https://collaboro-backend.vercel.app",
			TimeoutSeconds: 10,
		},
		AI: AIConfig{
			Model:          "gpt-3.5-turbo",
			TimeoutSeconds: 15,
		},
		DB: DBConfig{
			Path: "collaboro.db",
		},
		Assistant: AssistantConfig{
			HistoryLimit: 50,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("COLLABORO_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("COLLABORO_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("COLLABORO_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid COLLABORO_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if base := os.Getenv("COLLABORO_UPSTREAM_URL"); base != "" {
		cfg.Upstream.BaseURL = base
	}
	if endpoint := os.Getenv("COLLABORO_AI_ENDPOINT"); endpoint != "" {
		cfg.AI.Endpoint = endpoint
	}
	if model := os.Getenv("COLLABORO_AI_MODEL"); model != "" {
		cfg.AI.Model = model
	}
	if dbPath := os.Getenv("COLLABORO_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if limitStr := os.Getenv("COLLABORO_HISTORY_LIMIT"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid COLLABORO_HISTORY_LIMIT: %w", err)
		}
		cfg.Assistant.HistoryLimit = limit
	}
	if level := os.Getenv("COLLABORO_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
