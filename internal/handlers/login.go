package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/hyunjk/bookreview/internal/models"
	"github.com/hyunjk/bookreview/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, *models.User, error)
}

// SessionCookier builds the cookie that carries the session token.
type SessionCookier interface {
	NewCookie(token string) *http.Cookie
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret1
	Password string `json:"password"`
}

// SessionUser is the identity echoed back to an authenticated client.
type SessionUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	IsAdmin  bool      `json:"isAdmin"`
}

// LoginResponse represents a successful login response. The token itself
// travels only in the httpOnly cookie.
// swagger:model LoginResponse
type LoginResponse struct {
	// Always true
	OK bool `json:"ok"`

	// Authenticated identity
	User SessionUser `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Verifies credentials and sets the session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Session cookie set"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Router /login [post]
func NewLoginHandler(svc Loginer, cookies SessionCookier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "validation_error", "invalid request body")
			return
		}

		if req.Username == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "validation_error", "username and password are required")
			return
		}

		token, user, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password")
				return
			}
			writeInternalError(w, err)
			return
		}

		http.SetCookie(w, cookies.NewCookie(token))
		writeJSON(w, http.StatusOK, LoginResponse{
			OK:   true,
			User: SessionUser{ID: user.ID, Username: user.Username, IsAdmin: user.IsAdmin},
		})
	}
}
