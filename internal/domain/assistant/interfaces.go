package assistant

import "context"

// Generator produces text for a prompt, typically over the network.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ResponseRepository persists the per-session response history.
type ResponseRepository interface {
	// Append stores a response and evicts the oldest entries beyond the
	// session's capacity.
	Append(ctx context.Context, sessionKey string, resp *Response, capacity int) error
	// List returns up to limit responses, newest first.
	List(ctx context.Context, sessionKey string, limit int) ([]Response, error)
}
