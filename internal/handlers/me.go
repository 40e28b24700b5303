package handlers

import (
	"context"
	"net/http"

	"github.com/hyunjk/bookreview/internal/jwt"
)

// MeTokener defines the token operations needed to identify the caller.
type MeTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// MeResponse echoes the verified session claims, or a null user when the
// request carries no valid session.
// swagger:model MeResponse
type MeResponse struct {
	// True when a valid session is present
	OK bool `json:"ok"`

	// Verified identity, null when unauthenticated
	User *SessionUser `json:"user"`
}

// NewMeHandler returns an HTTP handler reporting the current identity.
// This endpoint is the client's only window into the session: the raw
// token is opaque to client-side script.
// @Summary Current user
// @Description Returns the identity carried by the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MeResponse "Verified identity"
// @Failure 401 {object} handlers.MeResponse "No valid session"
// @Router /me [get]
func NewMeHandler(tokener MeTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenString, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, MeResponse{OK: false, User: nil})
			return
		}

		claims, err := tokener.GetClaims(ctx, tokenString)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, MeResponse{OK: false, User: nil})
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, MeResponse{OK: false, User: nil})
			return
		}

		writeJSON(w, http.StatusOK, MeResponse{
			OK:   true,
			User: &SessionUser{ID: userID, Username: claims.Username, IsAdmin: claims.IsAdmin},
		})
	}
}
