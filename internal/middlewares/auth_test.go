package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/hyunjk/bookreview/internal/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminClaims := &jwt.Claims{
		Username: "alice",
		IsAdmin:  true,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject: uuid.New().String(),
		},
	}

	tests := []struct {
		name             string
		mockSetup        func(m *MockTokener)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name: "no token",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", jwt.ErrNoToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "invalid token",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("garbage", nil)
				m.EXPECT().GetClaims(gomock.Any(), "garbage").
					Return(nil, jwt.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "valid token",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("token", nil)
				m.EXPECT().GetClaims(gomock.Any(), "token").
					Return(adminClaims, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			tt.mockSetup(mockTokener)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				claims := GetClaimsFromContext(r.Context())
				require.NotNil(t, claims)
				assert.Equal(t, "alice", claims.Username)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
			rec := httptest.NewRecorder()
			AuthMiddleware(mockTokener)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)

			if tt.expectedStatus == http.StatusUnauthorized {
				var body gateError
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.False(t, body.OK)
				assert.Equal(t, "unauthorized", body.Error)
			}
		})
	}
}

func TestAdminOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("no claims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
		rec := httptest.NewRecorder()
		AdminOnly()(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-admin claims", func(t *testing.T) {
		claims := &jwt.Claims{Username: "bob", IsAdmin: false}
		req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
		req = req.WithContext(SetClaimsToContext(req.Context(), claims))
		rec := httptest.NewRecorder()
		AdminOnly()(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)

		var body gateError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "forbidden", body.Error)
	})

	t.Run("admin claims", func(t *testing.T) {
		claims := &jwt.Claims{Username: "alice", IsAdmin: true}
		req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
		req = req.WithContext(SetClaimsToContext(req.Context(), claims))
		rec := httptest.NewRecorder()
		AdminOnly()(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

// TestGateOutcomes drives the full gate with real signed tokens: no
// cookie, a non-admin cookie, and an admin cookie, each against GET and
// PUT on an admin route.
func TestGateOutcomes(t *testing.T) {
	tokens := jwt.New("test-secret", "")

	signFor := func(t *testing.T, isAdmin bool) *http.Cookie {
		t.Helper()
		token, err := tokens.Generate(context.Background(), uuid.New(), "someone", isAdmin)
		require.NoError(t, err)
		return tokens.NewCookie(token)
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	gate := AuthMiddleware(tokens)(AdminOnly()(handler))

	tests := []struct {
		name           string
		cookie         *http.Cookie
		expectedStatus int
	}{
		{
			name:           "no cookie",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "non-admin cookie",
			cookie:         signFor(t, false),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "admin cookie",
			cookie:         signFor(t, true),
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, method := range []string{http.MethodGet, http.MethodPut} {
				req := httptest.NewRequest(method, "/admin/users", nil)
				if tt.cookie != nil {
					req.AddCookie(tt.cookie)
				}
				rec := httptest.NewRecorder()
				gate.ServeHTTP(rec, req)

				assert.Equal(t, tt.expectedStatus, rec.Code, "method %s", method)
			}
		})
	}
}

// TestGateOutcomes_StaleClaim covers the promotion flow: a token minted
// before the user became admin keeps its embedded flag, so the gate
// still refuses it. Rights arrive with the next login's token.
func TestGateOutcomes_StaleClaim(t *testing.T) {
	tokens := jwt.New("test-secret", "")
	userID := uuid.New()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	gate := AuthMiddleware(tokens)(AdminOnly()(handler))

	serve := func(t *testing.T, token string) int {
		t.Helper()
		req := httptest.NewRequest(http.MethodPut, "/admin/users", nil)
		req.AddCookie(tokens.NewCookie(token))
		rec := httptest.NewRecorder()
		gate.ServeHTTP(rec, req)
		return rec.Code
	}

	beforePromotion, err := tokens.Generate(context.Background(), userID, "alice", false)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, serve(t, beforePromotion))

	// the store now says alice is an admin; her old token does not
	assert.Equal(t, http.StatusForbidden, serve(t, beforePromotion))

	afterRelogin, err := tokens.Generate(context.Background(), userID, "alice", true)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, serve(t, afterRelogin))
}

func TestGateOutcomes_TamperedToken(t *testing.T) {
	tokens := jwt.New("test-secret", "")
	other := jwt.New("other-secret", "")

	token, err := other.Generate(context.Background(), uuid.New(), "mallory", true)
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	gate := AuthMiddleware(tokens)(AdminOnly()(handler))

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.AddCookie(tokens.NewCookie(token))
	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetClaimsFromContext_Empty(t *testing.T) {
	assert.Nil(t, GetClaimsFromContext(context.Background()))
}
