package transport_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collaborox/collaboro-gateway/internal/transport"
)

func TestAuthMiddleware_RejectsMissingToken(t *testing.T) {
	handler := transport.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "empty bearer", header: "Bearer "},
		{name: "bare word", header: "Bearer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMiddleware_DerivesSessionKey(t *testing.T) {
	var gotKey, gotToken string
	handler := transport.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, ok := transport.SessionKeyFromContext(r.Context())
		require.True(t, ok)
		gotKey = key

		token, ok := transport.TokenFromContext(r.Context())
		require.True(t, ok)
		gotToken = token
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Authorization", "Bearer opaque-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "opaque-token", gotToken)
	assert.Equal(t, transport.SessionKey("opaque-token"), gotKey)
	assert.Len(t, gotKey, 64)
	assert.NotEqual(t, transport.SessionKey("other-token"), gotKey)
}
