package handlers

import (
	"context"
	"net/http"

	"github.com/hyunjk/bookreview/internal/models"
)

// BookListService lists the catalog.
type BookListService interface {
	List(ctx context.Context) ([]models.BookDB, error)
}

// BookListResponse represents the catalog listing
// swagger:model BookListResponse
type BookListResponse struct {
	// Books, newest first
	Books []models.BookDB `json:"books"`
}

// NewBookListHandler returns the public catalog listing.
// @Summary List books
// @Description Returns all books, newest first.
// @Tags books
// @Produce json
// @Success 200 {object} handlers.BookListResponse "Book list"
// @Router /books [get]
func NewBookListHandler(svc BookListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := svc.List(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, BookListResponse{Books: books})
	}
}
