// Package llm is the HTTP client for the configured text-generation endpoint.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNotConfigured indicates no generation endpoint is set.
var ErrNotConfigured = errors.New("generation endpoint not configured")

// Client posts prompts to a single remote endpoint. Any failure is returned
// as an error; the assistant pipeline decides how to degrade.
type Client struct {
	endpoint   string
	model      string
	httpClient *http.Client
}

// NewClient creates a generation client. An empty endpoint is allowed; every
// Generate call then fails with ErrNotConfigured, which keeps the fallback
// path exercised in development.
func NewClient(endpoint, model string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate sends the prompt and returns the generated text. One attempt, no
// retries.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.endpoint == "" {
		return "", ErrNotConfigured
	}

	payload, err := json.Marshal(generateRequest{Prompt: prompt, Model: c.model})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("generation endpoint returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if strings.TrimSpace(out.Response) == "" {
		return "", errors.New("generation endpoint returned empty response")
	}
	return out.Response, nil
}
