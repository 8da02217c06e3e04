package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/transport/http/dto"
	"shop_backend/internal/platform/http/request"
	"shop_backend/internal/platform/http/respond"
	"shop_backend/internal/platform/pagination"
)

// CountryUsecase defines the country operations used by CountryHandler.
type CountryUsecase interface {
	List(ctx context.Context) ([]entity.Country, error)
	ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Country], error)
	Get(ctx context.Context, id uint) (*entity.Country, error)
	Create(ctx context.Context, name string) (*entity.Country, error)
	Update(ctx context.Context, id uint, name string) (*entity.Country, error)
	Delete(ctx context.Context, id uint) error
}

// CountryHandler serves /paises.
type CountryHandler struct {
	uc CountryUsecase
}

// NewCountryHandler returns the country handler.
func NewCountryHandler(uc CountryUsecase) *CountryHandler {
	return &CountryHandler{uc: uc}
}

// List handles GET /paises.
func (h *CountryHandler) List(c *gin.Context) { writeList(c, h.uc.List, dto.ToCountryRes) }

// ListPage handles GET /paises/paginado.
func (h *CountryHandler) ListPage(c *gin.Context) { writePage(c, h.uc.ListPage, dto.ToCountryRes) }

// Get handles GET /paises/:id.
func (h *CountryHandler) Get(c *gin.Context) { writeOne(c, h.uc.Get, dto.ToCountryRes) }

// Create handles POST /paises (admin).
func (h *CountryHandler) Create(c *gin.Context) {
	var req dto.NameReq
	if err := request.JSON(c, &req); err != nil {
		respond.Error(c, err)
		return
	}
	country, err := h.uc.Create(c.Request.Context(), req.Name)
	if err == nil {
		slog.Info("country created", "country_id", country.ID)
	}
	writeSaved(c, http.StatusCreated, country, err, dto.ToCountryRes)
}

// Update handles PUT /paises/:id (admin).
func (h *CountryHandler) Update(c *gin.Context) {
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
	country, err := h.uc.Update(c.Request.Context(), id, req.Name)
	writeSaved(c, http.StatusOK, country, err, dto.ToCountryRes)
}

// Delete handles DELETE /paises/:id (admin).
func (h *CountryHandler) Delete(c *gin.Context) { writeDelete(c, h.uc.Delete) }
