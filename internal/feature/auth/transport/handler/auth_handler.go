// Package handler provides the HTTP handlers of the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/transport/http/dto"
	"shop_backend/internal/feature/auth/usecase"
	"shop_backend/internal/platform/http/request"
	"shop_backend/internal/platform/http/respond"
	jwtmw "shop_backend/internal/platform/jwt"
	"shop_backend/internal/shared/apperr"
)

// AuthUsecase defines the account flows used by AuthHandler.
// The interface lives with its consumer, not with the usecase package.
type AuthUsecase interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*usecase.Session, error)
	Refresh(ctx context.Context, accessToken, refreshToken string) (*usecase.Session, error)
	Logout(ctx context.Context, userID uint) error
	UpdatePassword(ctx context.Context, userID uint, current, next string) error
}

var errNoIdentity = apperr.Unauthenticated("missing identity")

// AuthHandler handles registration, login and token lifecycle requests.
type AuthHandler struct {
	auth AuthUsecase
	now  func() time.Time
}

// NewAuthHandler returns the auth handler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth, now: time.Now}
}

// Register handles POST /auth/register and returns the new user with 201.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := request.JSON(c, &req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		respond.Error(c, err)
		return
	}

	user, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		respond.Error(c, err)
		return
	}

	slog.Info("user registered", "user_id", user.ID, "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.ToUserRes(*user))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := request.JSON(c, &req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		respond.Error(c, err)
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// The usecase returns one undifferentiated error for unknown email and bad password.
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		respond.Error(c, err)
		return
	}

	slog.Info("user login successful", "user_id", session.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.ToLoginRes(session, h.now()))
}

// Refresh handles POST /auth/refresh, rotating the refresh token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshReq
	if err := request.JSON(c, &req); err != nil {
		respond.Error(c, err)
		return
	}

	session, err := h.auth.Refresh(c.Request.Context(), req.AccessToken, req.RefreshToken)
	if err != nil {
		slog.Warn("token refresh failed", "error", err, "remote_addr", c.ClientIP())
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginRes(session, h.now()))
}

// Logout handles POST /auth/logout for the authenticated caller.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Error(c, errNoIdentity)
		return
	}
	if err := h.auth.Logout(c.Request.Context(), userID); err != nil {
		respond.Error(c, err)
		return
	}
	slog.Info("user logged out", "user_id", userID, "remote_addr", c.ClientIP())
	c.Status(http.StatusNoContent)
}

// UpdatePassword handles PUT /auth/password for the authenticated caller.
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Error(c, errNoIdentity)
		return
	}

	var req dto.PasswordReq
	if err := request.JSON(c, &req); err != nil {
		respond.Error(c, err)
		return
	}

	if err := h.auth.UpdatePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		slog.Warn("password update failed", "error", err, "user_id", userID, "remote_addr", c.ClientIP())
		respond.Error(c, err)
		return
	}
	slog.Info("password updated", "user_id", userID)
	c.Status(http.StatusNoContent)
}
