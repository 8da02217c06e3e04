// Package entity defines the payment intent returned by the gateway.
package entity

import "github.com/shopspring/decimal"

// Intent is a gateway payment intent normalized to major currency units.
type Intent struct {
	ID       string
	Status   string
	Amount   decimal.Decimal
	Currency string
	// ClientSecret is only present while the intent awaits confirmation.
	ClientSecret string
}
