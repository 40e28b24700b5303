package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/hyunjk/bookreview/internal/models"
	"github.com/hyunjk/bookreview/internal/repositories"
	"github.com/hyunjk/bookreview/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookService(ctrl *gomock.Controller) (
	*services.BookService,
	*services.MockBookReader,
	*services.MockBookWriter,
	*services.MockCommentReader,
	*services.MockCommentWriter,
) {
	reader := services.NewMockBookReader(ctrl)
	writer := services.NewMockBookWriter(ctrl)
	commentReader := services.NewMockCommentReader(ctrl)
	commentWriter := services.NewMockCommentWriter(ctrl)
	svc := services.NewBookService(reader, writer, commentReader, commentWriter, nil)
	return svc, reader, writer, commentReader, commentWriter
}

func TestBookService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, _, _ := newBookService(ctrl)

	bookID := uuid.New()

	t.Run("found", func(t *testing.T) {
		reader.EXPECT().GetByID(gomock.Any(), bookID).
			Return(&models.BookDB{ID: bookID, Title: "Dune"}, nil)

		book, err := svc.Get(context.Background(), bookID)
		require.NoError(t, err)
		assert.Equal(t, "Dune", book.Title)
	})

	t.Run("absent", func(t *testing.T) {
		reader.EXPECT().GetByID(gomock.Any(), bookID).Return(nil, nil)

		book, err := svc.Get(context.Background(), bookID)
		assert.ErrorIs(t, err, services.ErrBookNotFound)
		assert.Nil(t, book)
	})

	t.Run("store error", func(t *testing.T) {
		reader.EXPECT().GetByID(gomock.Any(), bookID).Return(nil, errors.New("db error"))

		_, err := svc.Get(context.Background(), bookID)
		require.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrBookNotFound)
	})
}

func TestBookService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer, _, _ := newBookService(ctrl)

	tests := []struct {
		name    string
		in      models.BookInput
		save    bool
		wantErr error
	}{
		{
			name: "valid book",
			in:   models.BookInput{Title: "Dune", Author: "Frank Herbert", Rating: 5},
			save: true,
		},
		{
			name: "title and author are trimmed",
			in:   models.BookInput{Title: "  Dune  ", Author: " Frank Herbert ", Rating: 3},
			save: true,
		},
		{
			name:    "missing title",
			in:      models.BookInput{Author: "Frank Herbert"},
			wantErr: services.ErrInvalidBook,
		},
		{
			name:    "blank author",
			in:      models.BookInput{Title: "Dune", Author: "   "},
			wantErr: services.ErrInvalidBook,
		},
		{
			name:    "rating above range",
			in:      models.BookInput{Title: "Dune", Author: "Frank Herbert", Rating: 6},
			wantErr: services.ErrInvalidBook,
		},
		{
			name:    "rating below range",
			in:      models.BookInput{Title: "Dune", Author: "Frank Herbert", Rating: -1},
			wantErr: services.ErrInvalidBook,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.save {
				writer.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in models.BookInput) (*models.BookDB, error) {
						assert.Equal(t, "Dune", in.Title)
						assert.Equal(t, "Frank Herbert", in.Author)
						return &models.BookDB{ID: uuid.New(), Title: in.Title, Author: in.Author}, nil
					})
			}

			book, err := svc.Create(context.Background(), tt.in, "actor-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, book)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, book)
		})
	}
}

func TestBookService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer, _, _ := newBookService(ctrl)

	bookID := uuid.New()
	in := models.BookInput{Title: "Dune", Author: "Frank Herbert", Rating: 4}

	t.Run("success", func(t *testing.T) {
		writer.EXPECT().
			Update(gomock.Any(), bookID, in).
			Return(&models.BookDB{ID: bookID, Title: "Dune", Author: "Frank Herbert", Rating: 4}, nil)

		book, err := svc.Update(context.Background(), bookID, in, "actor-1")
		require.NoError(t, err)
		assert.Equal(t, 4, book.Rating)
	})

	t.Run("unknown book", func(t *testing.T) {
		writer.EXPECT().
			Update(gomock.Any(), bookID, in).
			Return(nil, repositories.ErrNotFound)

		_, err := svc.Update(context.Background(), bookID, in, "actor-1")
		assert.ErrorIs(t, err, services.ErrBookNotFound)
	})

	t.Run("invalid input skips the store", func(t *testing.T) {
		_, err := svc.Update(context.Background(), bookID, models.BookInput{}, "actor-1")
		assert.ErrorIs(t, err, services.ErrInvalidBook)
	})
}

func TestBookService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, writer, _, _ := newBookService(ctrl)

	bookID := uuid.New()

	t.Run("success", func(t *testing.T) {
		writer.EXPECT().Delete(gomock.Any(), bookID).Return(nil)

		err := svc.Delete(context.Background(), bookID, "actor-1")
		require.NoError(t, err)
	})

	t.Run("unknown book", func(t *testing.T) {
		writer.EXPECT().Delete(gomock.Any(), bookID).Return(repositories.ErrNotFound)

		err := svc.Delete(context.Background(), bookID, "actor-1")
		assert.ErrorIs(t, err, services.ErrBookNotFound)
	})
}

func TestBookService_AddComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, commentWriter := newBookService(ctrl)

	bookID := uuid.New()

	t.Run("success trims fields", func(t *testing.T) {
		commentWriter.EXPECT().
			Save(gomock.Any(), bookID, "visitor", "great read").
			Return(&models.CommentDB{ID: uuid.New(), BookID: bookID, Author: "visitor", Content: "great read"}, nil)

		comment, err := svc.AddComment(context.Background(), bookID, " visitor ", " great read ")
		require.NoError(t, err)
		assert.Equal(t, "visitor", comment.Author)
	})

	t.Run("blank content", func(t *testing.T) {
		_, err := svc.AddComment(context.Background(), bookID, "visitor", "   ")
		assert.ErrorIs(t, err, services.ErrInvalidComment)
	})

	t.Run("unknown book", func(t *testing.T) {
		commentWriter.EXPECT().
			Save(gomock.Any(), bookID, "visitor", "hello").
			Return(nil, repositories.ErrNotFound)

		_, err := svc.AddComment(context.Background(), bookID, "visitor", "hello")
		assert.ErrorIs(t, err, services.ErrBookNotFound)
	})
}

func TestBookService_ListComments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, commentReader, _ := newBookService(ctrl)

	bookID := uuid.New()
	want := []models.CommentDB{
		{ID: uuid.New(), BookID: bookID, Author: "a", Content: "first"},
		{ID: uuid.New(), BookID: bookID, Author: "b", Content: "second"},
	}
	commentReader.EXPECT().ListByBookID(gomock.Any(), bookID).Return(want, nil)

	got, err := svc.ListComments(context.Background(), bookID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
