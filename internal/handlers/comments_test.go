package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/hyunjk/bookreview/internal/models"
	"github.com/hyunjk/bookreview/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookID := uuid.New()

	mockSvc := NewMockCommentListService(ctrl)
	want := []models.CommentDB{
		{ID: uuid.New(), BookID: bookID, Author: "visitor", Content: "loved it"},
	}
	mockSvc.EXPECT().ListComments(gomock.Any(), bookID).Return(want, nil)

	r := chi.NewRouter()
	r.Get("/books/{id}/comments", NewCommentListHandler(mockSvc))

	req := httptest.NewRequest(http.MethodGet, "/books/"+bookID.String()+"/comments", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp CommentListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, want, resp.Comments)
}

func TestCommentCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookID := uuid.New()

	tests := []struct {
		name         string
		url          string
		body         string
		mockSetup    func(m *MockCommentAddService)
		expectedCode int
	}{
		{
			name: "created",
			url:  "/books/" + bookID.String() + "/comments",
			body: `{"author":"visitor","content":"loved it"}`,
			mockSetup: func(m *MockCommentAddService) {
				m.EXPECT().
					AddComment(gomock.Any(), bookID, "visitor", "loved it").
					Return(&models.CommentDB{ID: uuid.New(), BookID: bookID, Author: "visitor", Content: "loved it"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "blank fields",
			url:  "/books/" + bookID.String() + "/comments",
			body: `{"author":"","content":""}`,
			mockSetup: func(m *MockCommentAddService) {
				m.EXPECT().
					AddComment(gomock.Any(), bookID, "", "").
					Return(nil, services.ErrInvalidComment)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "unknown book",
			url:  "/books/" + bookID.String() + "/comments",
			body: `{"author":"visitor","content":"hello"}`,
			mockSetup: func(m *MockCommentAddService) {
				m.EXPECT().
					AddComment(gomock.Any(), bookID, "visitor", "hello").
					Return(nil, services.ErrBookNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "malformed book id",
			url:          "/books/nope/comments",
			body:         `{"author":"visitor","content":"hello"}`,
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid JSON",
			url:          "/books/" + bookID.String() + "/comments",
			body:         `{`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCommentAddService(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Post("/books/{id}/comments", NewCommentCreateHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPost, tt.url, bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
