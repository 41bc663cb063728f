package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/SHIV24116/Quick-Teams-web-app/internal/logger"
	"github.com/SHIV24116/Quick-Teams-web-app/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "user_claims"

// ActorID extracts the authenticated user's ID from the request context.
// Handlers pass this explicitly into every service call; there is no
// ambient current-user state anywhere below this layer.
func ActorID(ctx context.Context) (int32, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*security.UserClaims)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}

// AuthMiddleware validates the bearer token and stores the claims in the
// request context.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
				return
			}

			claims, err := tokens.ValidateToken(token)
			if err != nil {
				writeError(w, err)
				return
			}
			if claims.Type != security.TokenTypeAccess {
				writeError(w, security.ErrWrongTokenType)
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LoggingMiddleware logs every request with method, path, status and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
