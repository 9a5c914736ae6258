package middleware

import (
	"net/http"
	"strings"

	"flightline/opsdeck/internal/auth"
	"flightline/opsdeck/internal/common"
	"flightline/opsdeck/internal/constants"
	"flightline/opsdeck/internal/db/repositories"
	"flightline/opsdeck/internal/logging"
)

// AuthMiddleware authenticates every request on the API surface. Two
// credentials are accepted: an X-API-Key header resolved against the
// api_keys table, or a Bearer presigned dashboard token validated by the
// URL signer.
func AuthMiddleware(userRepo *repositories.UserRepository, keysRepo *repositories.KeysRepo, signer *common.URLSignerService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			authHeader := r.Header.Get("Authorization")
			apiKey := r.Header.Get("X-API-Key")

			var claims auth.UserClaims

			switch {
			case strings.HasPrefix(authHeader, "Bearer "):
				tokenString := strings.TrimPrefix(authHeader, "Bearer ")

				signed, err := signer.ValidateToken(r.Context(), tokenString)
				if err != nil {
					logging.Warn("Rejected bearer token", "error", err.Error())
					http.Error(w, constants.ErrMsgUnauthorized, http.StatusUnauthorized)
					return
				}

				claims = &auth.SessionClaims{
					UserUUID:  signed.UserID,
					RoleValue: constants.OpsRole(signed.Role),
					TokenID:   signed.TokenID,
				}

			case apiKey != "":
				keyRes, err := keysRepo.GetStatus(r.Context(), apiKey)
				if err != nil {
					http.Error(w, constants.ErrMsgInvalidAPIKey, http.StatusUnauthorized)
					return
				}

				if !keyRes.Status {
					http.Error(w, constants.ErrMsgInactiveAPIKey, http.StatusUnauthorized)
					return
				}

				claims, err = auth.MakeClaimsFromAPIKey(r.Context(), userRepo, keyRes.UserID)
				if err != nil {
					logging.Warn("Rejected API key user", "error", err.Error())
					http.Error(w, constants.ErrMsgUnauthorized, http.StatusUnauthorized)
					return
				}

			default:
				http.Error(w, constants.ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
