package models

import (
	"time"

	"github.com/google/uuid"
)

// BookDB represents a catalog entry in the database.
type BookDB struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Author        string    `json:"author" db:"author"`
	CoverImage    *string   `json:"coverImage" db:"cover_image"`
	Rating        int       `json:"rating" db:"rating"`
	Review        string    `json:"review" db:"review"`
	Genre         *string   `json:"genre" db:"genre"`
	PublishedDate *string   `json:"publishedDate" db:"published_date"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// BookInput carries the mutable fields of a book for create and update.
type BookInput struct {
	Title         string
	Author        string
	CoverImage    *string
	Rating        int
	Review        string
	Genre         *string
	PublishedDate *string
}
