// Package dto defines the payment request and response bodies.
package dto

import (
	"github.com/shopspring/decimal"

	"shop_backend/internal/feature/payment/domain/entity"
)

// IntentReq takes amount in major units, e.g. 19.99.
type IntentReq struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// IntentRes is the JSON view of a payment intent.
type IntentRes struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	ClientSecret string `json:"client_secret,omitempty"`
}

// ToIntentRes formats the amount with two decimals.
func ToIntentRes(i *entity.Intent) IntentRes {
	return IntentRes{
		ID:           i.ID,
		Status:       i.Status,
		Amount:       i.Amount.StringFixed(2),
		Currency:     i.Currency,
		ClientSecret: i.ClientSecret,
	}
}
