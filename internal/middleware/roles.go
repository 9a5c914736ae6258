package middleware

import (
	"net/http"

	"flightline/opsdeck/internal/auth"
	"flightline/opsdeck/internal/constants"
)

// RequireRole gates a route group behind a minimum role tier.
func RequireRole(minimum constants.OpsRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())

			if claims == nil || !claims.Role().AtLeast(minimum) {
				http.Error(w, "Unauthorized. Need "+minimum.String()+" perms", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsPlannerMiddleware requires the planner tier (planner, controller, admin)
func IsPlannerMiddleware() func(http.Handler) http.Handler {
	return RequireRole(constants.RolePlanner)
}

// IsControllerMiddleware requires the controller tier (controller, admin)
func IsControllerMiddleware() func(http.Handler) http.Handler {
	return RequireRole(constants.RoleController)
}

// IsAdminMiddleware requires the admin tier
func IsAdminMiddleware() func(http.Handler) http.Handler {
	return RequireRole(constants.RoleAdmin)
}
