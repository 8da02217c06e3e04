// Package handler exposes payment intents over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"shop_backend/internal/feature/payment/domain/entity"
	"shop_backend/internal/feature/payment/transport/http/dto"
	"shop_backend/internal/platform/http/request"
	"shop_backend/internal/platform/http/respond"
	jwtmw "shop_backend/internal/platform/jwt"
)

// PaymentUsecase defines the payment operations used by PaymentHandler.
type PaymentUsecase interface {
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (*entity.Intent, error)
	GetIntent(ctx context.Context, id string) (*entity.Intent, error)
}

// PaymentHandler serves /pagos.
type PaymentHandler struct {
	uc PaymentUsecase
}

// NewPaymentHandler returns the payment handler.
func NewPaymentHandler(uc PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// CreateIntent handles POST /pagos/intents.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req dto.IntentReq
	if err := request.JSON(c, &req); err != nil {
		respond.Error(c, err)
		return
	}
	intent, err := h.uc.CreateIntent(c.Request.Context(), req.Amount, req.Currency)
	if err != nil {
		respond.Error(c, err)
		return
	}
	userID, _ := jwtmw.UserID(c)
	slog.Info("payment intent created", "intent_id", intent.ID, "user_id", userID, "currency", intent.Currency)
	c.JSON(http.StatusCreated, dto.ToIntentRes(intent))
}

// GetIntent handles GET /pagos/intents/:id.
func (h *PaymentHandler) GetIntent(c *gin.Context) {
	intent, err := h.uc.GetIntent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToIntentRes(intent))
}
