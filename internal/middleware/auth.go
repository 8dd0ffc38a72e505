// middleware/auth.go
// Middleware untuk cek API key (opsional; kosong = tidak dicek)

package middleware

import (
	"crypto/subtle"
	"net/http"

	"shopfloor-tracker/internal/util"
)

func APIKey(expected string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || expected == "" {
				next.ServeHTTP(w, r)
				return
			}
			got := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
				util.WriteError(w, http.StatusUnauthorized, util.Unauthorized("invalid api key"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
