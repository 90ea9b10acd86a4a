// ABOUTME: Feature flag middleware that exposes the flag manager to handlers
// ABOUTME: Downstream code reads flags through featureflags.IsEnabled on the request context

package middleware

import (
	"net/http"

	"news-aggregator-api/pkg/featureflags"
)

// FeatureFlagsMiddleware attaches manager to every request context
func FeatureFlagsMiddleware(manager featureflags.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(featureflags.WithManager(r.Context(), manager)))
		})
	}
}
