package middleware

import (
	"net/http"

	"rodacerta/frotagest/internal/auth"
	"rodacerta/frotagest/internal/constants"
)

// RequireManager gates engine mutations and registry writes to manager
// and admin accounts (and integration keys, which act as managers).
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		if claims == nil || !claims.CanManage() {
			http.Error(w, "Forbidden. Manager role required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin gates operator account administration.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		if claims == nil || claims.Role() != constants.RoleAdmin {
			http.Error(w, "Forbidden. Admin role required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
