package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/hyunjk/bookreview/internal/middlewares"
	"github.com/hyunjk/bookreview/internal/models"
	"github.com/hyunjk/bookreview/internal/services"
)

// UserListService lists all users for the admin view.
type UserListService interface {
	List(ctx context.Context) ([]models.User, error)
}

// AdminSetService toggles the admin flag of a user.
type AdminSetService interface {
	SetAdmin(ctx context.Context, userID uuid.UUID, isAdmin bool, actorID string) (*models.User, error)
}

// UserListResponse represents the admin user listing
// swagger:model UserListResponse
type UserListResponse struct {
	// All users, password hashes excluded
	Users []models.User `json:"users"`
}

// UpdateAdminRequest represents the JSON body for toggling an admin flag
// swagger:model UpdateAdminRequest
type UpdateAdminRequest struct {
	// Target user id
	// required: true
	UserID string `json:"userId"`

	// Desired admin flag
	// required: true
	IsAdmin *bool `json:"isAdmin"`
}

// UpdateAdminResponse represents a successful admin flag update
// swagger:model UpdateAdminResponse
type UpdateAdminResponse struct {
	// Success message
	// default: admin flag updated
	Message string `json:"message"`

	// Updated user
	User *models.User `json:"user"`
}

// NewAdminUsersListHandler returns the gate-protected user listing.
// @Summary List users
// @Description Returns all users without password hashes. Requires an admin session.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.UserListResponse "User list"
// @Failure 401 {object} handlers.ErrorResponse "No valid session"
// @Failure 403 {object} handlers.ErrorResponse "Not an admin"
// @Router /admin/users [get]
func NewAdminUsersListHandler(svc UserListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, UserListResponse{Users: users})
	}
}

// NewAdminUsersUpdateHandler returns the gate-protected admin flag toggle.
// The action is attributed to the caller via the claims stored by the
// gate; self-demotion is permitted and does not invalidate the caller's
// current token.
// @Summary Set admin flag
// @Description Grants or revokes admin rights on any user. Requires an admin session.
// @Tags admin
// @Accept json
// @Produce json
// @Param updateAdminRequest body handlers.UpdateAdminRequest true "Target user and flag"
// @Success 200 {object} handlers.UpdateAdminResponse "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Malformed body"
// @Failure 401 {object} handlers.ErrorResponse "No valid session"
// @Failure 403 {object} handlers.ErrorResponse "Not an admin"
// @Failure 404 {object} handlers.ErrorResponse "Unknown user"
// @Router /admin/users [put]
func NewAdminUsersUpdateHandler(svc AdminSetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateAdminRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "validation_error", "invalid request body")
			return
		}

		if req.UserID == "" || req.IsAdmin == nil {
			writeError(w, http.StatusBadRequest, "validation_error", "userId and isAdmin are required")
			return
		}

		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation_error", "userId must be a valid id")
			return
		}

		var actorID string
		if claims := middlewares.GetClaimsFromContext(r.Context()); claims != nil {
			actorID = claims.Subject
		}

		user, err := svc.SetAdmin(r.Context(), userID, *req.IsAdmin, actorID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "not_found", "user not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, UpdateAdminResponse{
			Message: "admin flag updated",
			User:    user,
		})
	}
}
