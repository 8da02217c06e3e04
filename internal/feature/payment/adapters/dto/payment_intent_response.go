// Package dto holds the wire format of the payment gateway.
package dto

// PaymentIntentResponse is the subset of the gateway's intent object we read.
type PaymentIntentResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	ClientSecret string `json:"client_secret"`
}
