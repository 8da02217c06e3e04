// Package usecase validates payment requests before they reach the gateway.
package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"shop_backend/internal/feature/payment/domain/entity"
	"shop_backend/internal/platform/validation"
)

// MaxAmount caps a single intent.
var MaxAmount = decimal.RequireFromString("999999.99")

var currencyCode = regexp.MustCompile(`^[a-z]{3}$`)

// Gateway is the external payment provider. amountMinor is in the
// currency's minor unit (cents).
type Gateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (*entity.Intent, error)
	GetIntent(ctx context.Context, id string) (*entity.Intent, error)
}

type paymentUsecase struct {
	gateway Gateway
}

// NewPaymentUsecase returns a usecase that charges through gateway.
func NewPaymentUsecase(gateway Gateway) *paymentUsecase {
	return &paymentUsecase{gateway: gateway}
}

// CreateIntent rounds amount to cents and forwards it with a lower-cased
// ISO 4217 currency code.
func (u *paymentUsecase) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (*entity.Intent, error) {
	currency = strings.ToLower(strings.TrimSpace(currency))

	var v validation.Errors
	v.Amount("amount", amount, MaxAmount)
	if !currencyCode.MatchString(currency) {
		v.Add("currency", "must be a 3-letter ISO 4217 code")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	minor := amount.Round(2).Shift(2).IntPart()
	return u.gateway.CreateIntent(ctx, minor, currency)
}

// GetIntent looks an intent up by its gateway id.
func (u *paymentUsecase) GetIntent(ctx context.Context, id string) (*entity.Intent, error) {
	var v validation.Errors
	v.Required("id", id)
	if err := v.Err(); err != nil {
		return nil, err
	}
	return u.gateway.GetIntent(ctx, strings.TrimSpace(id))
}
