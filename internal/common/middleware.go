package common

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type contextKey string

const callerIDKey contextKey = "caller_id"

// CallerID returns the authenticated user's ID from the request context, or
// nil for an anonymous request.
func CallerID(ctx context.Context) *int64 {
	if id, ok := ctx.Value(callerIDKey).(int64); ok {
		return &id
	}
	return nil
}

// WithCallerID is exposed for handler tests.
func WithCallerID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, callerIDKey, id)
}

// Session resolves an optional bearer token into a caller ID. A missing or
// invalid token leaves the request anonymous; it never rejects the request,
// since every read endpoint works without a session.
func Session(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			parts := strings.Fields(r.Header.Get("Authorization"))
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				if claims, err := ValidToken(secret, parts[1]); err == nil {
					r = r.WithContext(WithCallerID(r.Context(), claims.UserID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger logs each request using zap.
func RequestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
			)
		})
	}
}

// CORS adds permissive CORS headers.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
