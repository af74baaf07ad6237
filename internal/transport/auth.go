package transport

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

type sessionKeyCtx struct{}
type tokenCtx struct{}

// SessionKeyFromContext returns the hashed session key, if present.
func SessionKeyFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(sessionKeyCtx{}).(string)
	return key, ok
}

// TokenFromContext returns the raw bearer token, if present.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenCtx{}).(string)
	return token, ok
}

// AuthMiddleware gates protected routes on the presence of a bearer token.
// The token is opaque, issued by the upstream auth endpoints and never
// validated here; its SHA-256 hex forms the session key that scopes assistant
// history and board tasks.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const prefix = "Bearer "
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, prefix) {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(auth, prefix))
		if token == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		ctx := context.WithValue(r.Context(), tokenCtx{}, token)
		ctx = context.WithValue(ctx, sessionKeyCtx{}, SessionKey(token))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionKey hashes an opaque token into the key used for per-session state.
func SessionKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
