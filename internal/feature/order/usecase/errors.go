package usecase

import "shop_backend/internal/shared/apperr"

var (
	ErrOrderNotFound   = apperr.NotFound("order not found")
	ErrProductNotFound = apperr.NotFound("product not found")
	ErrUserNotFound    = apperr.NotFound("user not found")

	// ErrOrderNotEditable is returned when lines or the address change
	// after the order left Pending.
	ErrOrderNotEditable = apperr.Conflict("order can only be modified while Pending")

	// ErrOrderTotalTooLarge is returned when the lines add up to more than
	// MaxOrderTotal.
	ErrOrderTotalTooLarge = apperr.Invalid([]apperr.FieldError{{Field: "total", Message: "must be at most " + MaxOrderTotal.String()}})

	// ErrStatusChanged is returned when another request moved the order
	// between the read and the conditional update.
	ErrStatusChanged = apperr.Conflict("order status was changed concurrently")
)
