package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/hyunjk/bookreview/internal/models"
	"github.com/hyunjk/bookreview/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			body: `{"username":"alice","email":"alice@example.com","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret1").
					Return(&models.User{ID: userID, Username: "alice"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid JSON",
			body:         `{not json`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "validation_error",
		},
		{
			name:         "missing username",
			body:         `{"password":"secret1"}`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "validation_error",
		},
		{
			name:         "missing password",
			body:         `{"username":"alice"}`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  "validation_error",
		},
		{
			name: "password too short",
			body: `{"username":"alice","password":"12345"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "", "12345").
					Return(nil, services.ErrPasswordTooShort)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "validation_error",
		},
		{
			name: "duplicate username",
			body: `{"username":"alice","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "", "secret1").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "conflict",
		},
		{
			name: "internal error",
			body: `{"username":"alice","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "", "secret1").
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedErr != "" {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.False(t, resp.OK)
				assert.Equal(t, tt.expectedErr, resp.Error)
				assert.NotEmpty(t, resp.Message)
				return
			}

			var resp RegisterResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.True(t, resp.OK)
			assert.Equal(t, userID, resp.User.ID)
			assert.Equal(t, "alice", resp.User.Username)
		})
	}
}
