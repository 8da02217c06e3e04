// Package di provides dependency injection factories for creating application components.
package di

import (
	"log/slog"

	paymentadapters "shop_backend/internal/feature/payment/adapters"
	"shop_backend/internal/platform/config"
	infrahttp "shop_backend/internal/platform/http"
)

// NewPaymentGateway creates the payment gateway with its own HTTP client.
func NewPaymentGateway(cfg config.PaymentConfig) *paymentadapters.HTTPGateway {
	if cfg.SecretKey == "" {
		slog.Warn("PAYMENT_SECRET_KEY is not set; payment endpoints will answer 503")
	}
	return paymentadapters.NewHTTPGateway(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}
