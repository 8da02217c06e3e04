package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/transport/http/dto"
	"shop_backend/internal/platform/http/request"
	"shop_backend/internal/platform/http/respond"
)

// CategoryBrandUsecase defines the category-brand association operations used by CategoryBrandHandler.
type CategoryBrandUsecase interface {
	List(ctx context.Context) ([]entity.CategoryBrand, error)
	Get(ctx context.Context, id uint) (*entity.CategoryBrand, error)
	Create(ctx context.Context, categoryID, brandID uint) (*entity.CategoryBrand, error)
	Delete(ctx context.Context, id uint) error
	BrandsByCategory(ctx context.Context, categoryID uint) ([]entity.Brand, error)
	CategoriesByBrand(ctx context.Context, brandID uint) ([]entity.Category, error)
}

// CategoryBrandHandler serves /categoriaMarca.
type CategoryBrandHandler struct {
	uc CategoryBrandUsecase
}

// NewCategoryBrandHandler returns the category-brand association handler.
func NewCategoryBrandHandler(uc CategoryBrandUsecase) *CategoryBrandHandler {
	return &CategoryBrandHandler{uc: uc}
}

// List handles GET /categoriaMarca.
func (h *CategoryBrandHandler) List(c *gin.Context) { writeList(c, h.uc.List, dto.ToCategoryBrandRes) }

// Get handles GET /categoriaMarca/:id.
func (h *CategoryBrandHandler) Get(c *gin.Context) { writeOne(c, h.uc.Get, dto.ToCategoryBrandRes) }

// Create handles POST /categoriaMarca (admin).
func (h *CategoryBrandHandler) Create(c *gin.Context) {
	var req dto.CategoryBrandReq
	if err := request.JSON(c, &req); err != nil {
		respond.Error(c, err)
		return
	}
	link, err := h.uc.Create(c.Request.Context(), req.CategoryID, req.BrandID)
	writeSaved(c, http.StatusCreated, link, err, dto.ToCategoryBrandRes)
}

// Delete handles DELETE /categoriaMarca/:id (admin).
func (h *CategoryBrandHandler) Delete(c *gin.Context) { writeDelete(c, h.uc.Delete) }

// BrandsByCategory handles GET /categoriaMarca/categoria/:id.
func (h *CategoryBrandHandler) BrandsByCategory(c *gin.Context) {
	writeList(c, func(ctx context.Context) ([]entity.Brand, error) {
		id, err := request.ID(c, "id")
		if err != nil {
			return nil, err
		}
		return h.uc.BrandsByCategory(ctx, id)
	}, dto.ToBrandRes)
}

// CategoriesByBrand handles GET /categoriaMarca/marca/:id.
func (h *CategoryBrandHandler) CategoriesByBrand(c *gin.Context) {
	writeList(c, func(ctx context.Context) ([]entity.Category, error) {
		id, err := request.ID(c, "id")
		if err != nil {
			return nil, err
		}
		return h.uc.CategoriesByBrand(ctx, id)
	}, dto.ToCategoryRes)
}
