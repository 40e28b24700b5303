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

// CommentListService lists the comments of a book.
type CommentListService interface {
	ListComments(ctx context.Context, bookID uuid.UUID) ([]models.CommentDB, error)
}

// CommentAddService stores a visitor comment.
type CommentAddService interface {
	AddComment(ctx context.Context, bookID uuid.UUID, author, content string) (*models.CommentDB, error)
}

// CommentRequest represents the JSON body for adding a comment
// swagger:model CommentRequest
type CommentRequest struct {
	// Display name of the commenter
	// required: true
	Author string `json:"author"`

	// Comment text
	// required: true
	Content string `json:"content"`
}

// CommentListResponse represents the comments of a book
// swagger:model CommentListResponse
type CommentListResponse struct {
	// Comments, newest first
	Comments []models.CommentDB `json:"comments"`
}

// NewCommentListHandler returns the public comment listing.
// @Summary List comments
// @Description Returns the comments of a book, newest first.
// @Tags comments
// @Produce json
// @Param id path string true "Book id"
// @Success 200 {object} handlers.CommentListResponse "Comment list"
// @Router /books/{id}/comments [get]
func NewCommentListHandler(svc CommentListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := bookURLParam(r)
		if !ok {
			writeError(w, http.StatusNotFound, "not_found", "book not found")
			return
		}

		comments, err := svc.ListComments(r.Context(), id)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, CommentListResponse{Comments: comments})
	}
}

// NewCommentCreateHandler returns the public comment creation endpoint.
// Commenting needs no session; only the catalog mutations sit behind the
// gate.
// @Summary Add a comment
// @Description Adds a visitor comment to an existing book.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Book id"
// @Param commentRequest body handlers.CommentRequest true "Comment fields"
// @Success 201 {object} models.CommentDB "Created comment"
// @Failure 400 {object} handlers.ErrorResponse "Missing author or content"
// @Failure 404 {object} handlers.ErrorResponse "Unknown book"
// @Router /books/{id}/comments [post]
func NewCommentCreateHandler(svc CommentAddService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := bookURLParam(r)
		if !ok {
			writeError(w, http.StatusNotFound, "not_found", "book not found")
			return
		}

		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "validation_error", "invalid request body")
			return
		}

		comment, err := svc.AddComment(r.Context(), id, req.Author, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidComment):
				writeError(w, http.StatusBadRequest, "validation_error", err.Error())
			case errors.Is(err, services.ErrBookNotFound):
				writeError(w, http.StatusNotFound, "not_found", "book not found")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, comment)
	}
}
