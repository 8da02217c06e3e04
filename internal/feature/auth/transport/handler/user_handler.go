package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/transport/http/dto"
	"shop_backend/internal/platform/http/request"
	"shop_backend/internal/platform/http/respond"
	jwtmw "shop_backend/internal/platform/jwt"
	"shop_backend/internal/platform/pagination"
)

// UserUsecase defines the user administration operations.
type UserUsecase interface {
	List(ctx context.Context) ([]entity.User, error)
	ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.User], error)
	Get(ctx context.Context, id uint) (*entity.User, error)
	Delete(ctx context.Context, id uint) error
}

// UserHandler serves /usuarios and /auth/me.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler returns the user handler.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /usuarios (admin).
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResList(users))
}

// ListPage handles GET /usuarios/paginado (admin).
func (h *UserHandler) ListPage(c *gin.Context) {
	p, err := request.Page(c)
	if err != nil {
		respond.Error(c, err)
		return
	}
	page, err := h.users.ListPage(c.Request.Context(), p)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, pagination.NewResponse(page, dto.ToUserRes))
}

// Get handles GET /usuarios/:id (admin).
func (h *UserHandler) Get(c *gin.Context) {
	id, err := request.ID(c, "id")
	if err != nil {
		respond.Error(c, err)
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserRes(*user))
}

// Me returns the authenticated caller.
func (h *UserHandler) Me(c *gin.Context) {
	id, ok := jwtmw.UserID(c)
	if !ok {
		respond.Error(c, errNoIdentity)
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserRes(*user))
}

// Delete handles DELETE /usuarios/:id (admin).
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := request.ID(c, "id")
	if err != nil {
		respond.Error(c, err)
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		respond.Error(c, err)
		return
	}
	slog.Info("user deleted", "user_id", id, "by", c.GetUint(jwtmw.ContextUserID))
	c.Status(http.StatusNoContent)
}
