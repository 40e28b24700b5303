package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hyunjk/bookreview/internal/middlewares"
	"github.com/hyunjk/bookreview/internal/models"
	"github.com/hyunjk/bookreview/internal/services"
)

// BookCreateService adds a book to the catalog.
type BookCreateService interface {
	Create(ctx context.Context, in models.BookInput, actorID string) (*models.BookDB, error)
}

// BookRequest represents the JSON body for creating or updating a book
// swagger:model BookRequest
type BookRequest struct {
	// Title
	// required: true
	Title string `json:"title"`

	// Author
	// required: true
	Author string `json:"author"`

	// Cover image URL
	CoverImage *string `json:"coverImage"`

	// Rating, 0 to 5
	Rating int `json:"rating"`

	// Review text
	Review string `json:"review"`

	// Genre
	Genre *string `json:"genre"`

	// Publish date, free-form
	PublishedDate *string `json:"publishedDate"`
}

func (req *BookRequest) input() models.BookInput {
	return models.BookInput{
		Title:         req.Title,
		Author:        req.Author,
		CoverImage:    req.CoverImage,
		Rating:        req.Rating,
		Review:        req.Review,
		Genre:         req.Genre,
		PublishedDate: req.PublishedDate,
	}
}

// actorFromContext returns the caller's user id stored by the gate.
func actorFromContext(ctx context.Context) string {
	if claims := middlewares.GetClaimsFromContext(ctx); claims != nil {
		return claims.Subject
	}
	return ""
}

// NewBookCreateHandler returns the gate-protected book creation endpoint.
// @Summary Create a book
// @Description Adds a book to the catalog. Requires an admin session.
// @Tags books
// @Accept json
// @Produce json
// @Param bookRequest body handlers.BookRequest true "Book fields"
// @Success 201 {object} models.BookDB "Created book"
// @Failure 400 {object} handlers.ErrorResponse "Malformed body"
// @Failure 401 {object} handlers.ErrorResponse "No valid session"
// @Failure 403 {object} handlers.ErrorResponse "Not an admin"
// @Router /books [post]
func NewBookCreateHandler(svc BookCreateService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "validation_error", "invalid request body")
			return
		}

		book, err := svc.Create(r.Context(), req.input(), actorFromContext(r.Context()))
		if err != nil {
			if errors.Is(err, services.ErrInvalidBook) {
				writeError(w, http.StatusBadRequest, "validation_error", err.Error())
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, book)
	}
}
