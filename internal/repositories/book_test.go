package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hyunjk/bookreview/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewBookWriteRepository(db)
	ctx := context.Background()

	t.Run("full record", func(t *testing.T) {
		book, err := repo.Save(ctx, models.BookInput{
			Title:         "Dune",
			Author:        "Frank Herbert",
			CoverImage:    strPtr("https://example.com/dune.jpg"),
			Rating:        5,
			Review:        "a classic",
			Genre:         strPtr("sci-fi"),
			PublishedDate: strPtr("1965"),
		})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, book.ID)
		assert.Equal(t, "Dune", book.Title)
		assert.Equal(t, 5, book.Rating)
		require.NotNil(t, book.Genre)
		assert.Equal(t, "sci-fi", *book.Genre)
		assert.False(t, book.CreatedAt.IsZero())
	})

	t.Run("optional fields omitted", func(t *testing.T) {
		book, err := repo.Save(ctx, models.BookInput{Title: "Solaris", Author: "Stanislaw Lem"})
		require.NoError(t, err)
		assert.Nil(t, book.CoverImage)
		assert.Nil(t, book.Genre)
		assert.Nil(t, book.PublishedDate)
		assert.Zero(t, book.Rating)
	})
}

func TestBookReadRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewBookWriteRepository(db)
	readRepo := NewBookReadRepository(db)
	ctx := context.Background()

	first, err := writeRepo.Save(ctx, models.BookInput{Title: "First", Author: "A"})
	require.NoError(t, err)
	second, err := writeRepo.Save(ctx, models.BookInput{Title: "Second", Author: "B"})
	require.NoError(t, err)

	t.Run("List newest first", func(t *testing.T) {
		books, err := readRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, second.ID, books[0].ID)
		assert.Equal(t, first.ID, books[1].ID)
	})

	t.Run("GetByID", func(t *testing.T) {
		book, err := readRepo.GetByID(ctx, first.ID)
		require.NoError(t, err)
		require.NotNil(t, book)
		assert.Equal(t, "First", book.Title)
	})

	t.Run("GetByID absent returns nil without error", func(t *testing.T) {
		book, err := readRepo.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, book)
	})
}

func TestBookWriteRepository_Update(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewBookWriteRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, models.BookInput{Title: "Draft", Author: "A", Rating: 2})
	require.NoError(t, err)

	t.Run("replaces fields", func(t *testing.T) {
		updated, err := repo.Update(ctx, saved.ID, models.BookInput{
			Title:  "Final",
			Author: "A",
			Rating: 4,
			Review: "much improved",
		})
		require.NoError(t, err)
		assert.Equal(t, saved.ID, updated.ID)
		assert.Equal(t, "Final", updated.Title)
		assert.Equal(t, 4, updated.Rating)
		assert.Equal(t, "much improved", updated.Review)
		assert.Equal(t, saved.CreatedAt, updated.CreatedAt)
	})

	t.Run("unknown book", func(t *testing.T) {
		_, err := repo.Update(ctx, uuid.New(), models.BookInput{Title: "X", Author: "Y"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestBookWriteRepository_Delete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	bookRepo := NewBookWriteRepository(db)
	commentRepo := NewCommentWriteRepository(db)
	commentReadRepo := NewCommentReadRepository(db)
	ctx := context.Background()

	saved, err := bookRepo.Save(ctx, models.BookInput{Title: "Doomed", Author: "A"})
	require.NoError(t, err)
	_, err = commentRepo.Save(ctx, saved.ID, "visitor", "shame to see it go")
	require.NoError(t, err)

	t.Run("removes book and cascades to comments", func(t *testing.T) {
		err := bookRepo.Delete(ctx, saved.ID)
		require.NoError(t, err)

		comments, err := commentReadRepo.ListByBookID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("deleting again reports not found", func(t *testing.T) {
		err := bookRepo.Delete(ctx, saved.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
