// Package handler provides the HTTP handlers of the order feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/order/domain/entity"
	"shop_backend/internal/feature/order/transport/http/dto"
	"shop_backend/internal/feature/order/usecase"
	"shop_backend/internal/platform/http/request"
	"shop_backend/internal/platform/http/respond"
	jwtmw "shop_backend/internal/platform/jwt"
	"shop_backend/internal/platform/pagination"
	"shop_backend/internal/shared/apperr"
)

// OrderUsecase defines the order operations used by OrderHandler.
type OrderUsecase interface {
	Create(ctx context.Context, in usecase.CreateInput) (*entity.Order, error)
	Update(ctx context.Context, id uint, address string, lines []usecase.LineInput) (*entity.Order, error)
	AddProduct(ctx context.Context, id uint, line usecase.LineInput) (*entity.Order, error)
	ChangeStatus(ctx context.Context, id uint, to entity.Status) (*entity.Order, error)
	List(ctx context.Context) ([]entity.Order, error)
	ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Order], error)
	Get(ctx context.Context, id uint) (*entity.Order, error)
	ByUser(ctx context.Context, userID uint) ([]entity.Order, error)
	Delete(ctx context.Context, id uint) error
}

var errNoIdentity = apperr.Unauthenticated("missing identity")

// OrderHandler serves /pedidos. Reads and edits of a single order are
// limited to its owner and administrators.
type OrderHandler struct {
	uc OrderUsecase
}

// NewOrderHandler returns the order handler.
func NewOrderHandler(uc OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func writeOrder(c *gin.Context, status int, o *entity.Order, err error) {
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(status, dto.ToOrderRes(*o))
}

// owned loads :id and checks the caller may act for its owner.
func (h *OrderHandler) owned(c *gin.Context) (*entity.Order, bool) {
	id, err := request.ID(c, "id")
	if err != nil {
		respond.Error(c, err)
		return nil, false
	}
	o, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return nil, false
	}
	if !jwtmw.EnsureCanActFor(c, o.UserID) {
		return nil, false
	}
	return o, true
}

// List handles GET /pedidos (admin).
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.uc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResList(orders))
}

// ListPage handles GET /pedidos/paginado?page=&size=&filter= (admin).
func (h *OrderHandler) ListPage(c *gin.Context) {
	p, err := request.Page(c)
	if err != nil {
		respond.Error(c, err)
		return
	}
	page, err := h.uc.ListPage(c.Request.Context(), p)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, pagination.NewResponse(page, dto.ToOrderRes))
}

// Get handles GET /pedidos/:id (owner or admin).
func (h *OrderHandler) Get(c *gin.Context) {
	o, ok := h.owned(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderRes(*o))
}

// ByUser handles GET /pedidos/usuario/:usuarioId.
func (h *OrderHandler) ByUser(c *gin.Context) {
	userID, err := request.ID(c, "usuarioId")
	if err != nil {
		respond.Error(c, err)
		return
	}
	if !jwtmw.EnsureCanActFor(c, userID) {
		return
	}
	orders, err := h.uc.ByUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResList(orders))
}

// Create places an order for the caller. Administrators may set user_id
// to order on behalf of another user.
func (h *OrderHandler) Create(c *gin.Context) {
	callerID, ok := jwtmw.UserID(c)
	if !ok {
		respond.Error(c, errNoIdentity)
		return
	}
	var req dto.OrderReq
	if err := request.JSON(c, &req); err != nil {
		respond.Error(c, err)
		return
	}
	userID := callerID
	if req.UserID != 0 {
		if !jwtmw.EnsureCanActFor(c, req.UserID) {
			return
		}
		userID = req.UserID
	}

	o, err := h.uc.Create(c.Request.Context(), usecase.CreateInput{
		UserID:          userID,
		ShippingAddress: req.ShippingAddress,
		Lines:           req.LineInputs(),
	})
	if err != nil {
		slog.Warn("order create failed", "error", err, "user_id", userID)
	}
	writeOrder(c, http.StatusCreated, o, err)
}

// Update handles PUT /pedidos/:id and replaces every line.
func (h *OrderHandler) Update(c *gin.Context) {
	current, ok := h.owned(c)
	if !ok {
		return
	}
	var req dto.OrderReq
	if err := request.JSON(c, &req); err != nil {
		respond.Error(c, err)
		return
	}
	o, err := h.uc.Update(c.Request.Context(), current.ID, req.ShippingAddress, req.LineInputs())
	writeOrder(c, http.StatusOK, o, err)
}

// AddProduct handles POST /pedidos/:id/productos.
func (h *OrderHandler) AddProduct(c *gin.Context) {
	current, ok := h.owned(c)
	if !ok {
		return
	}
	var req dto.LineReq
	if err := request.JSON(c, &req); err != nil {
		respond.Error(c, err)
		return
	}
	o, err := h.uc.AddProduct(c.Request.Context(), current.ID, req.Input())
	writeOrder(c, http.StatusOK, o, err)
}

// ChangeStatus handles PATCH /pedidos/:id/estado (admin).
func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	id, err := request.ID(c, "id")
	if err != nil {
		respond.Error(c, err)
		return
	}
	var req dto.StatusReq
	if err := request.JSON(c, &req); err != nil {
		respond.Error(c, err)
		return
	}
	status, err := entity.ParseStatus(req.Status)
	if err != nil {
		respond.Error(c, apperr.Invalid([]apperr.FieldError{{Field: "status", Message: err.Error()}}))
		return
	}
	o, err := h.uc.ChangeStatus(c.Request.Context(), id, status)
	writeOrder(c, http.StatusOK, o, err)
}

// Delete handles DELETE /pedidos/:id (admin).
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := request.ID(c, "id")
	if err != nil {
		respond.Error(c, err)
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		respond.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
