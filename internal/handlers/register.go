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

// Registerer defines the interface that the registration service must
// implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Email (optional)
	// default: alice@example.com
	Email string `json:"email"`

	// Password, at least 6 characters
	// required: true
	// default: secret1
	Password string `json:"password"`
}

// RegisteredUser is the identity echoed back after registration.
type RegisteredUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Always true
	OK bool `json:"ok"`

	// Created identity
	User RegisteredUser `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new non-admin account. Username and email must be unique; the password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields or password too short"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already exists"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "validation_error", "invalid request body")
			return
		}

		if req.Username == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "validation_error", "username and password are required")
			return
		}

		user, err := svc.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPasswordTooShort):
				writeError(w, http.StatusBadRequest, "validation_error", err.Error())
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "conflict", "username or email already exists")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			OK:   true,
			User: RegisteredUser{ID: user.ID, Username: user.Username},
		})
	}
}
