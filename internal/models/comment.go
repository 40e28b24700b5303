package models

import (
	"time"

	"github.com/google/uuid"
)

// CommentDB represents a visitor comment on a book.
type CommentDB struct {
	ID        uuid.UUID `json:"id" db:"id"`
	BookID    uuid.UUID `json:"bookId" db:"book_id"`
	Author    string    `json:"author" db:"author"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
