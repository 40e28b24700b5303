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

// BookUpdateService replaces the fields of an existing book.
type BookUpdateService interface {
	Update(ctx context.Context, id uuid.UUID, in models.BookInput, actorID string) (*models.BookDB, error)
}

// NewBookUpdateHandler returns the gate-protected book update endpoint.
// @Summary Update a book
// @Description Replaces the fields of an existing book. Requires an admin session.
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book id"
// @Param bookRequest body handlers.BookRequest true "Book fields"
// @Success 200 {object} models.BookDB "Updated book"
// @Failure 400 {object} handlers.ErrorResponse "Malformed body"
// @Failure 401 {object} handlers.ErrorResponse "No valid session"
// @Failure 403 {object} handlers.ErrorResponse "Not an admin"
// @Failure 404 {object} handlers.ErrorResponse "Unknown book"
// @Router /books/{id} [put]
func NewBookUpdateHandler(svc BookUpdateService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := bookURLParam(r)
		if !ok {
			writeError(w, http.StatusNotFound, "not_found", "book not found")
			return
		}

		var req BookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "validation_error", "invalid request body")
			return
		}

		book, err := svc.Update(r.Context(), id, req.input(), actorFromContext(r.Context()))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidBook):
				writeError(w, http.StatusBadRequest, "validation_error", err.Error())
			case errors.Is(err, services.ErrBookNotFound):
				writeError(w, http.StatusNotFound, "not_found", "book not found")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, book)
	}
}
