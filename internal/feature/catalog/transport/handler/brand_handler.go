package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/transport/http/dto"
	"shop_backend/internal/feature/catalog/usecase"
	"shop_backend/internal/platform/http/request"
	"shop_backend/internal/platform/http/respond"
	"shop_backend/internal/platform/pagination"
)

// BrandUsecase defines the brand operations used by BrandHandler.
type BrandUsecase interface {
	List(ctx context.Context) ([]entity.Brand, error)
	ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Brand], error)
	Get(ctx context.Context, id uint) (*entity.Brand, error)
	Create(ctx context.Context, in usecase.BrandInput) (*entity.Brand, error)
	Update(ctx context.Context, id uint, in usecase.BrandInput) (*entity.Brand, error)
	Delete(ctx context.Context, id uint) error
}

// BrandHandler serves /marcas.
type BrandHandler struct {
	uc BrandUsecase
}

// NewBrandHandler returns the brand handler.
func NewBrandHandler(uc BrandUsecase) *BrandHandler {
	return &BrandHandler{uc: uc}
}

// List handles GET /marcas.
func (h *BrandHandler) List(c *gin.Context) { writeList(c, h.uc.List, dto.ToBrandRes) }

// ListPage handles GET /marcas/paginado.
func (h *BrandHandler) ListPage(c *gin.Context) { writePage(c, h.uc.ListPage, dto.ToBrandRes) }

// Get handles GET /marcas/:id.
func (h *BrandHandler) Get(c *gin.Context) { writeOne(c, h.uc.Get, dto.ToBrandRes) }

// Create handles POST /marcas (admin).
func (h *BrandHandler) Create(c *gin.Context) {
	var req dto.BrandReq
	if err := request.JSON(c, &req); err != nil {
		respond.Error(c, err)
		return
	}
	brand, err := h.uc.Create(c.Request.Context(), req.Input())
	writeSaved(c, http.StatusCreated, brand, err, dto.ToBrandRes)
}

// Update handles PUT /marcas/:id (admin).
func (h *BrandHandler) Update(c *gin.Context) {
	id, err := request.ID(c, "id")
	if err != nil {
		respond.Error(c, err)
		return
	}
	var req dto.BrandReq
	if err := request.JSON(c, &req); err != nil {
		respond.Error(c, err)
		return
	}
	brand, err := h.uc.Update(c.Request.Context(), id, req.Input())
	writeSaved(c, http.StatusOK, brand, err, dto.ToBrandRes)
}

// Delete cascades to the brand's products, which is logged for auditing.
func (h *BrandHandler) Delete(c *gin.Context) {
	writeDelete(c, func(ctx context.Context, id uint) error {
		if err := h.uc.Delete(ctx, id); err != nil {
			return err
		}
		slog.Info("brand deleted with its products", "brand_id", id, "remote_addr", c.ClientIP())
		return nil
	})
}
