package handlers

import (
	"net/http"
)

// SessionClearer builds the cookie that removes the session.
type SessionClearer interface {
	ClearCookie() *http.Cookie
}

// LogoutResponse represents a successful logout
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Always true
	OK bool `json:"ok"`
}

// NewLogoutHandler returns an HTTP handler for logout. The token is
// invalidated client-side only: the cookie is cleared and the token
// simply ages out. There is no server-side revocation list.
// @Summary Log out
// @Description Clears the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Session cookie cleared"
// @Router /logout [post]
func NewLogoutHandler(cookies SessionClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, cookies.ClearCookie())
		writeJSON(w, http.StatusOK, LogoutResponse{OK: true})
	}
}
