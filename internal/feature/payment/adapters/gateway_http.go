// Package adapters calls the payment gateway over HTTP.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"shop_backend/internal/feature/payment/adapters/dto"
	"shop_backend/internal/feature/payment/domain/entity"
	"shop_backend/internal/feature/payment/usecase"
	"shop_backend/internal/platform/config"
	"shop_backend/internal/shared/apperr"
)

const (
	serviceName  = "payment gateway"
	maxErrorBody = 4 << 10
)

var errNotConfigured = apperr.Unavailable("payment gateway is not configured", nil)

// HTTPGateway creates and reads payment intents with a bearer secret key.
type HTTPGateway struct {
	cfg    config.PaymentConfig
	client *http.Client
}

var _ usecase.Gateway = (*HTTPGateway)(nil)

// NewHTTPGateway returns a gateway client for cfg. A trailing slash on the base URL is ignored.
func NewHTTPGateway(cfg config.PaymentConfig, client *http.Client) *HTTPGateway {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &HTTPGateway{cfg: cfg, client: client}
}

// CreateIntent posts a form-encoded intent request.
func (g *HTTPGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string) (*entity.Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinor, 10))
	form.Set("currency", currency)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return g.do(req)
}

// GetIntent fetches an intent by id.
func (g *HTTPGateway) GetIntent(ctx context.Context, id string) (*entity.Intent, error) {
	u := fmt.Sprintf("%s/v1/payment_intents/%s", g.cfg.BaseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	return g.do(req)
}

func (g *HTTPGateway) do(req *http.Request) (*entity.Intent, error) {
	if g.cfg.SecretKey == "" {
		return nil, errNotConfigured
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.SecretKey)
	req.Header.Set("Accept", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, apperr.Unavailable("payment gateway unreachable", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		slog.Warn("payment gateway error", "status", res.StatusCode, "method", req.Method, "path", req.URL.Path)
		return nil, apperr.Upstream(serviceName, res.StatusCode, strings.TrimSpace(string(body)))
	}

	var body dto.PaymentIntentResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "payment gateway returned malformed JSON", err)
	}
	return &entity.Intent{
		ID:           body.ID,
		Status:       body.Status,
		Amount:       decimal.New(body.Amount, -2),
		Currency:     body.Currency,
		ClientSecret: body.ClientSecret,
	}, nil
}
