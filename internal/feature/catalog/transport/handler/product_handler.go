package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/transport/http/dto"
	"shop_backend/internal/feature/catalog/usecase"
	"shop_backend/internal/platform/http/request"
	"shop_backend/internal/platform/http/respond"
	"shop_backend/internal/platform/pagination"
)

// ProductUsecase defines the product operations used by ProductHandler.
type ProductUsecase interface {
	List(ctx context.Context) ([]entity.Product, error)
	ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Product], error)
	Get(ctx context.Context, id uint) (*entity.Product, error)
	Create(ctx context.Context, in usecase.ProductInput) (*entity.Product, error)
	Update(ctx context.Context, id uint, in usecase.ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id uint) error
}

// ProductHandler serves /productos.
type ProductHandler struct {
	uc ProductUsecase
}

// NewProductHandler returns the product handler.
func NewProductHandler(uc ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List handles GET /productos.
func (h *ProductHandler) List(c *gin.Context) { writeList(c, h.uc.List, dto.ToProductRes) }

// ListPage handles GET /productos/paginado.
func (h *ProductHandler) ListPage(c *gin.Context) { writePage(c, h.uc.ListPage, dto.ToProductRes) }

// Get handles GET /productos/:id.
func (h *ProductHandler) Get(c *gin.Context) { writeOne(c, h.uc.Get, dto.ToProductRes) }

// Create handles POST /productos (admin).
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductReq
	if err := request.JSON(c, &req); err != nil {
		respond.Error(c, err)
		return
	}
	product, err := h.uc.Create(c.Request.Context(), req.Input())
	writeSaved(c, http.StatusCreated, product, err, dto.ToProductRes)
}

// Update handles PUT /productos/:id (admin).
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := request.ID(c, "id")
	if err != nil {
		respond.Error(c, err)
		return
	}
	var req dto.ProductReq
	if err := request.JSON(c, &req); err != nil {
		respond.Error(c, err)
		return
	}
	product, err := h.uc.Update(c.Request.Context(), id, req.Input())
	writeSaved(c, http.StatusOK, product, err, dto.ToProductRes)
}

// Delete handles DELETE /productos/:id (admin).
func (h *ProductHandler) Delete(c *gin.Context) { writeDelete(c, h.uc.Delete) }
