package middleware

import (
	"context"
	"net/http"

	"github.com/lucasmrqs/EAS-BookingService/internal/api/handlers"
)

type contextKey string

// UserIDKey stores the authenticated user id in the request context.
const UserIDKey contextKey = "userID"

const userIDHeader = "X-User-ID"

// Auth gates a subrouter on the X-User-ID header. It identifies the caller
// for protected admin routes; real authentication sits in front of this
// service.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(userIDHeader)
		if userID == "" {
			handlers.RespondUnauthorized(w, "missing "+userIDHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the id set by Auth.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok
}
