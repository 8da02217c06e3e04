// Package handler provides the HTTP handlers of the cart feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/cart/domain/entity"
	"shop_backend/internal/feature/cart/transport/http/dto"
	"shop_backend/internal/platform/http/request"
	"shop_backend/internal/platform/http/respond"
	jwtmw "shop_backend/internal/platform/jwt"
)

// CartUsecase defines the cart operations used by CartHandler.
type CartUsecase interface {
	Get(ctx context.Context, userID uint) (*entity.Cart, error)
	AddProduct(ctx context.Context, userID, productID uint, quantity int) (*entity.Cart, error)
	SetQuantity(ctx context.Context, userID, productID uint, quantity int) (*entity.Cart, error)
	RemoveProduct(ctx context.Context, userID, productID uint) (*entity.Cart, error)
	Clear(ctx context.Context, userID uint) error
}

// CartHandler serves /carritos/:usuarioId. Callers may only touch their
// own cart unless they are administrators.
type CartHandler struct {
	uc CartUsecase
}

// NewCartHandler returns the cart handler.
func NewCartHandler(uc CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// owner reads :usuarioId and checks the caller may act for it.
func owner(c *gin.Context) (uint, bool) {
	userID, err := request.ID(c, "usuarioId")
	if err != nil {
		respond.Error(c, err)
		return 0, false
	}
	if !jwtmw.EnsureCanActFor(c, userID) {
		return 0, false
	}
	return userID, true
}

// line reads :usuarioId and :productoId.
func line(c *gin.Context) (uint, uint, bool) {
	userID, ok := owner(c)
	if !ok {
		return 0, 0, false
	}
	productID, err := request.ID(c, "productoId")
	if err != nil {
		respond.Error(c, err)
		return 0, 0, false
	}
	return userID, productID, true
}

func writeCart(c *gin.Context, status int, cart *entity.Cart, err error) {
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(status, dto.ToCartRes(cart))
}

// Get handles GET /carritos/:usuarioId.
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}
	cart, err := h.uc.Get(c.Request.Context(), userID)
	writeCart(c, http.StatusOK, cart, err)
}

// AddProduct handles POST /carritos/:usuarioId/productos/:productoId?cantidad=N.
// cantidad defaults to 1.
func (h *CartHandler) AddProduct(c *gin.Context) {
	userID, productID, ok := line(c)
	if !ok {
		return
	}
	qty, err := request.Quantity(c, 1)
	if err != nil {
		respond.Error(c, err)
		return
	}
	cart, err := h.uc.AddProduct(c.Request.Context(), userID, productID, qty)
	writeCart(c, http.StatusOK, cart, err)
}

// SetQuantity handles PUT /carritos/:usuarioId/productos/:productoId?cantidad=N.
func (h *CartHandler) SetQuantity(c *gin.Context) {
	userID, productID, ok := line(c)
	if !ok {
		return
	}
	qty, err := request.Quantity(c, 0)
	if err != nil {
		respond.Error(c, err)
		return
	}
	cart, err := h.uc.SetQuantity(c.Request.Context(), userID, productID, qty)
	writeCart(c, http.StatusOK, cart, err)
}

// RemoveProduct handles DELETE /carritos/:usuarioId/productos/:productoId.
func (h *CartHandler) RemoveProduct(c *gin.Context) {
	userID, productID, ok := line(c)
	if !ok {
		return
	}
	cart, err := h.uc.RemoveProduct(c.Request.Context(), userID, productID)
	writeCart(c, http.StatusOK, cart, err)
}

// Clear handles DELETE /carritos/:usuarioId.
func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := owner(c)
	if !ok {
		return
	}
	if err := h.uc.Clear(c.Request.Context(), userID); err != nil {
		respond.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
