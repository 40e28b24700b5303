package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/hyunjk/bookreview/internal/logger"
	"github.com/hyunjk/bookreview/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

// pgForeignKeyViolation is the Postgres error code for a foreign key
// constraint violation.
const pgForeignKeyViolation = "23503"

type CommentReadRepository struct {
	db *sqlx.DB
}

func NewCommentReadRepository(db *sqlx.DB) *CommentReadRepository {
	return &CommentReadRepository{db: db}
}

// ListByBookID returns the comments of a book, newest first.
func (r *CommentReadRepository) ListByBookID(ctx context.Context, bookID uuid.UUID) ([]models.CommentDB, error) {
	const query = `
		SELECT id, book_id, author, content, created_at
		FROM comments
		WHERE book_id = $1
		ORDER BY created_at DESC
	`

	comments := []models.CommentDB{}
	err := r.db.SelectContext(ctx, &comments, query, bookID)

	logger.Log.Debugw("comment list query",
		"query", strings.Join(strings.Fields(query), " "),
		"book_id", bookID,
		"count", len(comments),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return comments, nil
}

type CommentWriteRepository struct {
	db *sqlx.DB
}

func NewCommentWriteRepository(db *sqlx.DB) *CommentWriteRepository {
	return &CommentWriteRepository{db: db}
}

// Save inserts a comment for a book. An unknown book surfaces as
// ErrNotFound via the foreign key.
func (r *CommentWriteRepository) Save(ctx context.Context, bookID uuid.UUID, author, content string) (*models.CommentDB, error) {
	const query = `
		INSERT INTO comments (book_id, author, content, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, book_id, author, content, created_at
	`

	var comment models.CommentDB
	err := r.db.GetContext(ctx, &comment, query, bookID, author, content)

	logger.Log.Debugw("comment insert",
		"query", strings.Join(strings.Fields(query), " "),
		"book_id", bookID,
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
