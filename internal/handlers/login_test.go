package handlers

import (
	"bytes"
	"encoding/json"
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

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(svc *MockLoginer, cookies *MockSessionCookier)
		expectedCode int
		expectedErr  string
		wantCookie   bool
	}{
		{
			name: "success sets session cookie",
			body: `{"username":"alice","password":"secret1"}`,
			mockSetup: func(svc *MockLoginer, cookies *MockSessionCookier) {
				svc.EXPECT().
					Login(gomock.Any(), "alice", "secret1").
					Return("signed-token", &models.User{ID: userID, Username: "alice", IsAdmin: true}, nil)
				cookies.EXPECT().
					NewCookie("signed-token").
					Return(&http.Cookie{Name: "auth_token", Value: "signed-token", Path: "/", HttpOnly: true})
			},
			expectedCode: http.StatusOK,
			wantCookie:   true,
		},
		{
			name:         "invalid JSON",
			body:         `{`,
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
			name: "bad credentials",
			body: `{"username":"alice","password":"wrong"}`,
			mockSetup: func(svc *MockLoginer, cookies *MockSessionCookier) {
				svc.EXPECT().
					Login(gomock.Any(), "alice", "wrong").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "invalid_credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			mockCookies := NewMockSessionCookier(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc, mockCookies)
			}

			handler := NewLoginHandler(mockSvc, mockCookies)

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			cookies := rec.Result().Cookies()
			if !tt.wantCookie {
				assert.Empty(t, cookies)
			}

			if tt.expectedErr != "" {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
				return
			}

			require.Len(t, cookies, 1)
			assert.Equal(t, "auth_token", cookies[0].Name)
			assert.Equal(t, "signed-token", cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)

			var resp LoginResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.True(t, resp.OK)
			assert.Equal(t, userID, resp.User.ID)
			assert.True(t, resp.User.IsAdmin)

			// the token itself must never leak into the body
			assert.NotContains(t, rec.Body.String(), "signed-token")
		})
	}
}
