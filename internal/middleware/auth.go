package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey int

const courierIDKey ctxKey = iota

// APIKeyMiddleware guards the admin and internal surfaces. Courier traffic
// never goes through here; it is authenticated by the gateway in front.
func APIKeyMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				http.Error(w, "admin api disabled", http.StatusForbidden)
				return
			}
			provided := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CourierIdentity pulls the authenticated courier id out of the
// X-Courier-ID header set by the gateway and stores it on the context.
func CourierIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-Courier-ID")
		if raw == "" {
			http.Error(w, "missing X-Courier-ID", http.StatusUnauthorized)
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid X-Courier-ID", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), courierIDKey, id)))
	})
}

// CourierIDFrom returns the courier id placed by CourierIdentity.
func CourierIDFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(courierIDKey).(uuid.UUID)
	return id, ok
}
