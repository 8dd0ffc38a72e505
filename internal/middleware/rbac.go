// middleware/rbac.go
// Middleware RBAC sederhana berbasis claim role dari JWT

package middleware

import (
	"net/http"

	"shopfloor-tracker/internal/util"
)

// RequireRole harus dipasang setelah AdminJWTAuth.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := ClaimsFrom(r.Context())
			if c == nil || !allowed[c.Role] {
				util.WriteError(w, http.StatusForbidden, util.AppError{Code: "forbidden", Message: "role not allowed"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
