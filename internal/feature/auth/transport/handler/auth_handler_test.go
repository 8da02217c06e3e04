package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/usecase"
	jwtmw "shop_backend/internal/platform/jwt"
	"shop_backend/internal/shared/apperr"
	"shop_backend/internal/shared/role"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc       func(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	LoginFunc          func(ctx context.Context, email, password string) (*usecase.Session, error)
	RefreshFunc        func(ctx context.Context, accessToken, refreshToken string) (*usecase.Session, error)
	LogoutFunc         func(ctx context.Context, userID uint) error
	UpdatePasswordFunc func(ctx context.Context, userID uint, current, next string) error
}

func (m *mockAuthUsecase) Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error) {
	return m.RegisterFunc(ctx, in)
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (*usecase.Session, error) {
	return m.LoginFunc(ctx, email, password)
}

func (m *mockAuthUsecase) Refresh(ctx context.Context, accessToken, refreshToken string) (*usecase.Session, error) {
	return m.RefreshFunc(ctx, accessToken, refreshToken)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, userID uint) error {
	return m.LogoutFunc(ctx, userID)
}

func (m *mockAuthUsecase) UpdatePassword(ctx context.Context, userID uint, current, next string) error {
	return m.UpdatePasswordFunc(ctx, userID, current, next)
}

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newAuthRouter(uc AuthUsecase, callerID uint) *gin.Engine {
	h := NewAuthHandler(uc)
	h.now = func() time.Time { return fixedNow }

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)

	authed := r.Group("/auth", func(c *gin.Context) {
		if callerID != 0 {
			c.Set(jwtmw.ContextUserID, callerID)
			c.Set(jwtmw.ContextRole, role.User)
		}
	})
	authed.POST("/logout", h.Logout)
	authed.PUT("/password", h.UpdatePassword)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func testSession() *usecase.Session {
	return &usecase.Session{
		User: &entity.User{ID: 3, Name: "Ana", Email: "ana@example.com", Role: role.User},
		Tokens: usecase.TokenPair{
			AccessToken:      "access",
			AccessExpiresAt:  fixedNow.Add(15 * time.Minute),
			RefreshToken:     "refresh",
			RefreshExpiresAt: fixedNow.Add(24 * time.Hour),
		},
	}
}

func TestAuthHandler_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		body         string
		registerFunc func(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
		wantStatus   int
		wantError    string
	}{
		{
			name: "success",
			body: `{"name":"Ana","email":"ana@example.com","password":"password123"}`,
			registerFunc: func(_ context.Context, in usecase.RegisterInput) (*entity.User, error) {
				return &entity.User{ID: 3, Name: in.Name, Email: in.Email, Role: role.User, Password: "hash"}, nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed body",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "validation failed",
		},
		{
			name: "duplicate email",
			body: `{"name":"Ana","email":"ana@example.com","password":"password123"}`,
			registerFunc: func(context.Context, usecase.RegisterInput) (*entity.User, error) {
				return nil, usecase.ErrEmailAlreadyExists
			},
			wantStatus: http.StatusConflict,
			wantError:  usecase.ErrEmailAlreadyExists.Message,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := newAuthRouter(&mockAuthUsecase{RegisterFunc: tt.registerFunc}, 0)

			w := doJSON(r, http.MethodPost, "/auth/register", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
				return
			}
			assert.Equal(t, "ana@example.com", body["email"])
			assert.Equal(t, "User", body["role"])
			assert.NotContains(t, body, "password")
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	t.Run("success returns the token pair and user summary", func(t *testing.T) {
		t.Parallel()
		uc := &mockAuthUsecase{LoginFunc: func(_ context.Context, email, password string) (*usecase.Session, error) {
			assert.Equal(t, "ana@example.com", email)
			assert.Equal(t, "password123", password)
			return testSession(), nil
		}}

		w := doJSON(newAuthRouter(uc, 0), http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"password123"}`)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "access", body["access_token"])
		assert.Equal(t, "refresh", body["refresh_token"])
		assert.Equal(t, "Bearer", body["token_type"])
		assert.EqualValues(t, 900, body["expires_in"])
		assert.Equal(t, "2025-03-02T12:00:00Z", body["refresh_expires_at"])
		user := body["user"].(map[string]any)
		assert.EqualValues(t, 3, user["id"])
	})

	t.Run("bad credentials", func(t *testing.T) {
		t.Parallel()
		uc := &mockAuthUsecase{LoginFunc: func(context.Context, string, string) (*usecase.Session, error) {
			return nil, usecase.ErrInvalidCredentials
		}}

		w := doJSON(newAuthRouter(uc, 0), http.MethodPost, "/auth/login", `{"email":"x@example.com","password":"nope"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), usecase.ErrInvalidCredentials.Message)
	})

	t.Run("too many attempts", func(t *testing.T) {
		t.Parallel()
		uc := &mockAuthUsecase{LoginFunc: func(context.Context, string, string) (*usecase.Session, error) {
			return nil, usecase.ErrTooManyAttempts
		}}

		w := doJSON(newAuthRouter(uc, 0), http.MethodPost, "/auth/login", `{"email":"x@example.com","password":"nope"}`)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Parallel()

	uc := &mockAuthUsecase{RefreshFunc: func(_ context.Context, access, refresh string) (*usecase.Session, error) {
		if access == "old-access" && refresh == "old-refresh" {
			return testSession(), nil
		}
		return nil, usecase.ErrInvalidRefreshToken
	}}
	r := newAuthRouter(uc, 0)

	w := doJSON(r, http.MethodPost, "/auth/refresh", `{"access_token":"old-access","refresh_token":"old-refresh"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"refresh_token":"refresh"`)

	w = doJSON(r, http.MethodPost, "/auth/refresh", `{"refresh_token":"stolen"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Parallel()

	var loggedOut uint
	uc := &mockAuthUsecase{LogoutFunc: func(_ context.Context, userID uint) error {
		loggedOut = userID
		return nil
	}}

	w := doJSON(newAuthRouter(uc, 7), http.MethodPost, "/auth/logout", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, uint(7), loggedOut)

	w = doJSON(newAuthRouter(uc, 0), http.MethodPost, "/auth/logout", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_UpdatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
	}{
		{name: "success", body: `{"current_password":"old-password","new_password":"new-password"}`, wantStatus: http.StatusNoContent},
		{name: "wrong current password", body: `{"current_password":"bad","new_password":"new-password"}`, ucErr: usecase.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{
			name:       "weak new password",
			body:       `{"current_password":"old-password","new_password":"short"}`,
			ucErr:      apperr.Invalid([]apperr.FieldError{{Field: "new_password", Message: "too short"}}),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			uc := &mockAuthUsecase{UpdatePasswordFunc: func(_ context.Context, userID uint, _, _ string) error {
				assert.Equal(t, uint(7), userID)
				return tt.ucErr
			}}

			w := doJSON(newAuthRouter(uc, 7), http.MethodPut, "/auth/password", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
