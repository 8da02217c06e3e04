package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/transport/http/dto"
	"shop_backend/internal/platform/http/request"
	"shop_backend/internal/platform/http/respond"
	"shop_backend/internal/platform/pagination"
)

// CategoryUsecase defines the category operations used by CategoryHandler.
type CategoryUsecase interface {
	List(ctx context.Context) ([]entity.Category, error)
	ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Category], error)
	Get(ctx context.Context, id uint) (*entity.Category, error)
	Create(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, id uint, name string) (*entity.Category, error)
	Delete(ctx context.Context, id uint) error
}

// CategoryHandler serves /categorias.
type CategoryHandler struct {
	uc CategoryUsecase
}

// NewCategoryHandler returns the category handler.
func NewCategoryHandler(uc CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List handles GET /categorias.
func (h *CategoryHandler) List(c *gin.Context) { writeList(c, h.uc.List, dto.ToCategoryRes) }

// ListPage handles GET /categorias/paginado.
func (h *CategoryHandler) ListPage(c *gin.Context) { writePage(c, h.uc.ListPage, dto.ToCategoryRes) }

// Get handles GET /categorias/:id.
func (h *CategoryHandler) Get(c *gin.Context) { writeOne(c, h.uc.Get, dto.ToCategoryRes) }

// Create handles POST /categorias (admin).
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.NameReq
	if err := request.JSON(c, &req); err != nil {
		respond.Error(c, err)
		return
	}
	category, err := h.uc.Create(c.Request.Context(), req.Name)
	writeSaved(c, http.StatusCreated, category, err, dto.ToCategoryRes)
}

// Update handles PUT /categorias/:id (admin).
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := request.ID(c, "id")
	if err != nil {
		respond.Error(c, err)
		return
	}
	var req dto.NameReq
	if err := request.JSON(c, &req); err != nil {
		respond.Error(c, err)
		return
	}
	category, err := h.uc.Update(c.Request.Context(), id, req.Name)
	writeSaved(c, http.StatusOK, category, err, dto.ToCategoryRes)
}

// Delete also removes the category's products.
func (h *CategoryHandler) Delete(c *gin.Context) { writeDelete(c, h.uc.Delete) }
