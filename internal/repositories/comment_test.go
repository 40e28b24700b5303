package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hyunjk/bookreview/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	bookRepo := NewBookWriteRepository(db)
	repo := NewCommentWriteRepository(db)
	ctx := context.Background()

	book, err := bookRepo.Save(ctx, models.BookInput{Title: "Dune", Author: "Frank Herbert"})
	require.NoError(t, err)

	t.Run("inserts comment", func(t *testing.T) {
		comment, err := repo.Save(ctx, book.ID, "visitor", "loved it")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, comment.ID)
		assert.Equal(t, book.ID, comment.BookID)
		assert.Equal(t, "visitor", comment.Author)
		assert.Equal(t, "loved it", comment.Content)
		assert.False(t, comment.CreatedAt.IsZero())
	})

	t.Run("unknown book surfaces as not found", func(t *testing.T) {
		_, err := repo.Save(ctx, uuid.New(), "visitor", "hello")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCommentReadRepository_ListByBookID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	bookRepo := NewBookWriteRepository(db)
	writeRepo := NewCommentWriteRepository(db)
	readRepo := NewCommentReadRepository(db)
	ctx := context.Background()

	book, err := bookRepo.Save(ctx, models.BookInput{Title: "Dune", Author: "Frank Herbert"})
	require.NoError(t, err)
	other, err := bookRepo.Save(ctx, models.BookInput{Title: "Solaris", Author: "Stanislaw Lem"})
	require.NoError(t, err)

	first, err := writeRepo.Save(ctx, book.ID, "a", "first")
	require.NoError(t, err)
	second, err := writeRepo.Save(ctx, book.ID, "b", "second")
	require.NoError(t, err)
	_, err = writeRepo.Save(ctx, other.ID, "c", "unrelated")
	require.NoError(t, err)

	t.Run("newest first, scoped to the book", func(t *testing.T) {
		comments, err := readRepo.ListByBookID(ctx, book.ID)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, second.ID, comments[0].ID)
		assert.Equal(t, first.ID, comments[1].ID)
	})

	t.Run("book without comments yields empty slice", func(t *testing.T) {
		third, err := bookRepo.Save(ctx, models.BookInput{Title: "Empty", Author: "X"})
		require.NoError(t, err)

		comments, err := readRepo.ListByBookID(ctx, third.ID)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}
