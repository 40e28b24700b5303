package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/hyunjk/bookreview/internal/logger"
	"github.com/hyunjk/bookreview/internal/models"
	"github.com/hyunjk/bookreview/internal/repositories"
)

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrInvalidBook    = errors.New("title and author are required and rating must be between 0 and 5")
	ErrInvalidComment = errors.New("author and content are required")
)

// BookReader defines read operations on the catalog.
type BookReader interface {
	List(ctx context.Context) ([]models.BookDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.BookDB, error)
}

// BookWriter defines write operations on the catalog.
type BookWriter interface {
	Save(ctx context.Context, in models.BookInput) (*models.BookDB, error)
	Update(ctx context.Context, id uuid.UUID, in models.BookInput) (*models.BookDB, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CommentReader lists comments of a book.
type CommentReader interface {
	ListByBookID(ctx context.Context, bookID uuid.UUID) ([]models.CommentDB, error)
}

// CommentWriter stores visitor comments.
type CommentWriter interface {
	Save(ctx context.Context, bookID uuid.UUID, author, content string) (*models.CommentDB, error)
}

// BookService handles the catalog and its comments. Mutations are
// reachable only through the admin gate.
type BookService struct {
	reader        BookReader
	writer        BookWriter
	commentReader CommentReader
	commentWriter CommentWriter
	kafkaWriter   KafkaWriter
}

// NewBookService creates a new BookService. kafkaWriter may be nil.
func NewBookService(
	reader BookReader,
	writer BookWriter,
	commentReader CommentReader,
	commentWriter CommentWriter,
	kafkaWriter KafkaWriter,
) *BookService {
	return &BookService{
		reader:        reader,
		writer:        writer,
		commentReader: commentReader,
		commentWriter: commentWriter,
		kafkaWriter:   kafkaWriter,
	}
}

// List returns the catalog, newest first.
func (svc *BookService) List(ctx context.Context) ([]models.BookDB, error) {
	books, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list books", "err", err)
		return nil, err
	}
	return books, nil
}

// Get returns a single book or ErrBookNotFound.
func (svc *BookService) Get(ctx context.Context, id uuid.UUID) (*models.BookDB, error) {
	book, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get book", "id", id, "err", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// Create adds a book to the catalog.
func (svc *BookService) Create(ctx context.Context, in models.BookInput, actorID string) (*models.BookDB, error) {
	if err := validateBook(&in); err != nil {
		return nil, err
	}

	book, err := svc.writer.Save(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to save book", "title", in.Title, "err", err)
		return nil, err
	}

	publishAudit(ctx, svc.kafkaWriter, "book.created", actorID, book.ID.String(), book.Title)
	return book, nil
}

// Update replaces the mutable fields of an existing book.
func (svc *BookService) Update(ctx context.Context, id uuid.UUID, in models.BookInput, actorID string) (*models.BookDB, error) {
	if err := validateBook(&in); err != nil {
		return nil, err
	}

	book, err := svc.writer.Update(ctx, id, in)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update book", "id", id, "err", err)
		return nil, err
	}

	publishAudit(ctx, svc.kafkaWriter, "book.updated", actorID, book.ID.String(), book.Title)
	return book, nil
}

// Delete removes a book from the catalog.
func (svc *BookService) Delete(ctx context.Context, id uuid.UUID, actorID string) error {
	err := svc.writer.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrBookNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete book", "id", id, "err", err)
		return err
	}

	publishAudit(ctx, svc.kafkaWriter, "book.deleted", actorID, id.String(), "")
	return nil
}

// ListComments returns the comments of a book, newest first.
func (svc *BookService) ListComments(ctx context.Context, bookID uuid.UUID) ([]models.CommentDB, error) {
	comments, err := svc.commentReader.ListByBookID(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to list comments", "book_id", bookID, "err", err)
		return nil, err
	}
	return comments, nil
}

// AddComment stores a visitor comment on an existing book.
func (svc *BookService) AddComment(ctx context.Context, bookID uuid.UUID, author, content string) (*models.CommentDB, error) {
	author = strings.TrimSpace(author)
	content = strings.TrimSpace(content)
	if author == "" || content == "" {
		return nil, ErrInvalidComment
	}

	comment, err := svc.commentWriter.Save(ctx, bookID, author, content)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to save comment", "book_id", bookID, "err", err)
		return nil, err
	}
	return comment, nil
}

func validateBook(in *models.BookInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	if in.Title == "" || in.Author == "" {
		return ErrInvalidBook
	}
	if in.Rating < 0 || in.Rating > 5 {
		return ErrInvalidBook
	}
	return nil
}
