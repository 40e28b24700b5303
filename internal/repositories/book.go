package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/hyunjk/bookreview/internal/logger"
	"github.com/hyunjk/bookreview/internal/middlewares"
	"github.com/hyunjk/bookreview/internal/models"
	"github.com/jmoiron/sqlx"
)

type BookReadRepository struct {
	db *sqlx.DB
}

func NewBookReadRepository(db *sqlx.DB) *BookReadRepository {
	return &BookReadRepository{db: db}
}

// List returns all books, newest first.
func (r *BookReadRepository) List(ctx context.Context) ([]models.BookDB, error) {
	const query = `
		SELECT id, title, author, cover_image, rating, review, genre, published_date, created_at, updated_at
		FROM books
		ORDER BY created_at DESC
	`

	books := []models.BookDB{}
	err := sqlx.SelectContext(ctx, r.queryer(ctx), &books, query)

	logger.Log.Debugw("book list query",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(books),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return books, nil
}

// GetByID returns the book with the given id, or nil when absent.
func (r *BookReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.BookDB, error) {
	const query = `
		SELECT id, title, author, cover_image, rating, review, genre, published_date, created_at, updated_at
		FROM books
		WHERE id = $1
	`

	var book models.BookDB
	err := sqlx.GetContext(ctx, r.queryer(ctx), &book, query, id)

	logger.Log.Debugw("book query",
		"query", strings.Join(strings.Fields(query), " "),
		"id", id,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *BookReadRepository) queryer(ctx context.Context) sqlx.QueryerContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

type BookWriteRepository struct {
	db *sqlx.DB
}

func NewBookWriteRepository(db *sqlx.DB) *BookWriteRepository {
	return &BookWriteRepository{db: db}
}

// Save inserts a new book and returns the stored record.
func (r *BookWriteRepository) Save(ctx context.Context, in models.BookInput) (*models.BookDB, error) {
	const query = `
		INSERT INTO books (title, author, cover_image, rating, review, genre, published_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, title, author, cover_image, rating, review, genre, published_date, created_at, updated_at
	`

	var book models.BookDB
	err := sqlx.GetContext(ctx, r.queryer(ctx), &book, query,
		in.Title, in.Author, in.CoverImage, in.Rating, in.Review, in.Genre, in.PublishedDate)

	logger.Log.Debugw("book insert",
		"query", strings.Join(strings.Fields(query), " "),
		"title", in.Title,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Update replaces the mutable fields of an existing book, or returns
// ErrNotFound.
func (r *BookWriteRepository) Update(ctx context.Context, id uuid.UUID, in models.BookInput) (*models.BookDB, error) {
	const query = `
		UPDATE books
		SET title = $2, author = $3, cover_image = $4, rating = $5, review = $6,
		    genre = $7, published_date = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, author, cover_image, rating, review, genre, published_date, created_at, updated_at
	`

	var book models.BookDB
	err := sqlx.GetContext(ctx, r.queryer(ctx), &book, query,
		id, in.Title, in.Author, in.CoverImage, in.Rating, in.Review, in.Genre, in.PublishedDate)

	logger.Log.Debugw("book update",
		"query", strings.Join(strings.Fields(query), " "),
		"id", id,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Delete removes a book and its comments, or returns ErrNotFound.
func (r *BookWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM books WHERE id = $1`

	res, err := r.execer(ctx).ExecContext(ctx, query, id)

	logger.Log.Debugw("book delete",
		"query", query,
		"id", id,
		"error", err,
	)

	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookWriteRepository) queryer(ctx context.Context) sqlx.QueryerContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

func (r *BookWriteRepository) execer(ctx context.Context) sqlx.ExecerContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}
