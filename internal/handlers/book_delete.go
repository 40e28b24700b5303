package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/hyunjk/bookreview/internal/services"
)

// BookDeleteService removes a book from the catalog.
type BookDeleteService interface {
	Delete(ctx context.Context, id uuid.UUID, actorID string) error
}

// BookDeleteResponse represents a successful deletion
// swagger:model BookDeleteResponse
type BookDeleteResponse struct {
	// Always true
	OK bool `json:"ok"`
}

// NewBookDeleteHandler returns the gate-protected book deletion endpoint.
// @Summary Delete a book
// @Description Removes a book and its comments. Requires an admin session.
// @Tags books
// @Produce json
// @Param id path string true "Book id"
// @Success 200 {object} handlers.BookDeleteResponse "Book deleted"
// @Failure 401 {object} handlers.ErrorResponse "No valid session"
// @Failure 403 {object} handlers.ErrorResponse "Not an admin"
// @Failure 404 {object} handlers.ErrorResponse "Unknown book"
// @Router /books/{id} [delete]
func NewBookDeleteHandler(svc BookDeleteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := bookURLParam(r)
		if !ok {
			writeError(w, http.StatusNotFound, "not_found", "book not found")
			return
		}

		if err := svc.Delete(r.Context(), id, actorFromContext(r.Context())); err != nil {
			if errors.Is(err, services.ErrBookNotFound) {
				writeError(w, http.StatusNotFound, "not_found", "book not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, BookDeleteResponse{OK: true})
	}
}
