package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hyunjk/bookreview/internal/models"
	"github.com/hyunjk/bookreview/internal/services"
)

// BookGetService fetches a single book.
type BookGetService interface {
	Get(ctx context.Context, id uuid.UUID) (*models.BookDB, error)
}

// bookURLParam extracts and validates the {id} URL parameter.
func bookURLParam(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

// NewBookGetHandler returns the public book detail endpoint.
// @Summary Get a book
// @Description Returns a single book by id.
// @Tags books
// @Produce json
// @Param id path string true "Book id"
// @Success 200 {object} models.BookDB "Book"
// @Failure 404 {object} handlers.ErrorResponse "Unknown book"
// @Router /books/{id} [get]
func NewBookGetHandler(svc BookGetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := bookURLParam(r)
		if !ok {
			writeError(w, http.StatusNotFound, "not_found", "book not found")
			return
		}

		book, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrBookNotFound) {
				writeError(w, http.StatusNotFound, "not_found", "book not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, book)
	}
}
