package api

import (
	"net/http"
	"time"

	"flightline/opsdeck/internal/auth"
	"flightline/opsdeck/internal/models/dtos"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

// GenerateDashboardLinkHandler generates a presigned URL for dashboard access
func (h *Handlers) GenerateDashboardLinkHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Claims were set by the auth middleware
		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		// 15 minute expiry, single use
		token, err := h.deps.Services.URLSigner.GeneratePresignedURL(
			claims.UserID(),
			claims.Role().String(),
			15*time.Minute,
		)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to generate token")
			return
		}

		link := dtos.DashboardLinkDto{
			URL:       r.Host + "/dashboard?token=" + token,
			ExpiresIn: 900,
		}
		respondWithSuccess(w, http.StatusOK, &link)
	}
}

// DashboardTokenLoginHandler exchanges a presigned URL token (?token=...)
// for a dashboard session. The token is consumed on first use.
func (h *Handlers) DashboardTokenLoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			respondWithError(w, http.StatusBadRequest, "Missing token")
			return
		}

		signedToken, err := h.deps.Services.URLSigner.ValidateToken(r.Context(), token)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		// Mark token as used (single-use enforcement)
		if err := h.deps.Services.URLSigner.MarkTokenAsUsed(r.Context(), signedToken.TokenID); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to process token")
			return
		}

		session := dtos.DashboardSessionDto{
			UserID:    signedToken.UserID,
			Role:      signedToken.Role,
			ExpiresAt: signedToken.ExpiresAt,
		}
		respondWithSuccess(w, http.StatusOK, &session)
	}
}
