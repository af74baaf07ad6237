package collabapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/collaborox/collaboro-gateway/internal/domain/directory"
)

// ErrAuthRejected indicates the upstream refused the credentials.
var ErrAuthRejected = errors.New("authentication rejected")

// Credentials is the upstream login/signup result relayed to the SPA. The
// token is opaque to the gateway.
type Credentials struct {
	Token string         `json:"token"`
	User  directory.User `json:"user"`
}

// SignupRequest holds new-account fields.
type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type authResponse struct {
	Token   string         `json:"token"`
	User    directory.User `json:"user"`
	Message string         `json:"message"`
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (*Credentials, error) {
	body := map[string]string{"email": email, "password": password}

	var out authResponse
	status, err := c.postJSON(ctx, "/auth/login", body, &out)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if status != http.StatusOK || out.Token == "" {
		c.logger.Info("login rejected", "status", status)
		return nil, fmt.Errorf("%w: %s", ErrAuthRejected, out.Message)
	}

	return &Credentials{Token: out.Token, User: out.User}, nil
}

// Signup creates an account and returns its session token.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*Credentials, error) {
	var out authResponse
	status, err := c.postJSON(ctx, "/auth/signup", req, &out)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	if (status != http.StatusOK && status != http.StatusCreated) || out.Token == "" {
		c.logger.Info("signup rejected", "status", status)
		return nil, fmt.Errorf("%w: %s", ErrAuthRejected, out.Message)
	}

	return &Credentials{Token: out.Token, User: out.User}, nil
}
