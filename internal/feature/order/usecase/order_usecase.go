// Package usecase implements order placement, editing and the status
// lifecycle.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	catalogentity "shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/order/domain/entity"
	"shop_backend/internal/platform/pagination"
	"shop_backend/internal/platform/validation"
	"shop_backend/internal/shared/apperr"
)

const (
	maxAddressLength = 500
	maxLineQuantity  = 10000

	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

var (
	// MaxUnitPrice matches the product price column.
	MaxUnitPrice = decimal.RequireFromString("9999999.99")

	// MaxOrderTotal is the largest total the decimal(14,2) order column holds.
	MaxOrderTotal = decimal.RequireFromString("999999999999.99")
)

// OrderRepository persists orders with their lines.
type OrderRepository interface {
	// Create inserts the order and its lines in one transaction.
	Create(ctx context.Context, o *entity.Order) error
	FindByID(ctx context.Context, id uint) (*entity.Order, error)
	List(ctx context.Context) ([]entity.Order, error)
	ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Order], error)
	ListByUser(ctx context.Context, userID uint) ([]entity.Order, error)
	// ReplaceLines swaps the address and lines of a Pending order and
	// stores the recomputed total. Non-pending orders yield ErrOrderNotEditable.
	ReplaceLines(ctx context.Context, id uint, address string, lines []entity.OrderLine) error
	// AppendLine adds a line to a Pending order and recomputes the total
	// in the same transaction. A total above MaxOrderTotal yields
	// ErrOrderTotalTooLarge and nothing is stored.
	AppendLine(ctx context.Context, id uint, line entity.OrderLine) error
	// UpdateStatus moves the order from one status to another only if it
	// is still in from; otherwise ErrStatusChanged.
	UpdateStatus(ctx context.Context, id uint, from, to entity.Status) error
	Delete(ctx context.Context, id uint) error
}

// ProductFinder resolves the products referenced by order lines.
type ProductFinder interface {
	FindByID(ctx context.Context, id uint) (*catalogentity.Product, error)
}

// EventPublisher emits domain events. It is optional.
type EventPublisher interface {
	Publish(ctx context.Context, eventType, key string, payload any) error
}

// LineInput is one requested line. Price is the unit price the client
// saw; it is stored as given.
type LineInput struct {
	ProductID uint
	Quantity  int
	Price     decimal.Decimal
}

// CreateInput places an order for UserID.
type CreateInput struct {
	UserID          uint
	ShippingAddress string
	Lines           []LineInput
}

// OrderEvent is the payload of order events.
type OrderEvent struct {
	OrderID        uint   `json:"order_id"`
	UserID         uint   `json:"user_id"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previous_status,omitempty"`
	Total          string `json:"total"`
	Lines          int    `json:"lines"`
}

type orderUsecase struct {
	orders    OrderRepository
	products  ProductFinder
	publisher EventPublisher
	now       func() time.Time
}

// NewOrderUsecase wires the order flows. publisher may be nil.
func NewOrderUsecase(orders OrderRepository, products ProductFinder, publisher EventPublisher) *orderUsecase {
	return &orderUsecase{orders: orders, products: products, publisher: publisher, now: time.Now}
}

func validateLine(v *validation.Errors, field string, l LineInput) {
	v.ID(field+".product_id", l.ProductID)
	v.Positive(field+".quantity", l.Quantity)
	if l.Quantity > maxLineQuantity {
		v.Add(field+".quantity", "must be at most %d", maxLineQuantity)
	}
	v.Amount(field+".price", l.Price, MaxUnitPrice)
}

func validateOrder(address string, lines []LineInput) error {
	var v validation.Errors
	if v.Required("shipping_address", address) {
		v.MaxLength("shipping_address", strings.TrimSpace(address), maxAddressLength)
	}
	if len(lines) == 0 {
		v.Add("lines", "must contain at least one line")
	}
	for i, l := range lines {
		validateLine(&v, fmt.Sprintf("lines[%d]", i), l)
	}
	return v.Err()
}

func checkTotal(lines []entity.OrderLine) error {
	if entity.SumLines(lines).GreaterThan(MaxOrderTotal) {
		return ErrOrderTotalTooLarge
	}
	return nil
}

// buildLines snapshots product names into order lines.
func (u *orderUsecase) buildLines(ctx context.Context, in []LineInput) ([]entity.OrderLine, error) {
	lines := make([]entity.OrderLine, 0, len(in))
	for _, l := range in {
		p, err := u.products.FindByID(ctx, l.ProductID)
		if err != nil {
			if apperr.Is(err, apperr.KindNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, err
		}
		lines = append(lines, entity.NewLine(p.ID, p.Name, l.Quantity, l.Price.Round(2)))
	}
	return lines, nil
}

// Create places a Pending order whose total is the sum of its line subtotals.
func (u *orderUsecase) Create(ctx context.Context, in CreateInput) (*entity.Order, error) {
	if err := validateOrder(in.ShippingAddress, in.Lines); err != nil {
		return nil, err
	}
	lines, err := u.buildLines(ctx, in.Lines)
	if err != nil {
		return nil, err
	}
	if err := checkTotal(lines); err != nil {
		return nil, err
	}

	o := &entity.Order{
		UserID:          in.UserID,
		PlacedAt:        u.now(),
		Status:          entity.StatusPending,
		ShippingAddress: strings.TrimSpace(in.ShippingAddress),
		Lines:           lines,
	}
	o.Recalculate()
	if err := u.orders.Create(ctx, o); err != nil {
		return nil, err
	}

	slog.Info("order created", "order_id", o.ID, "user_id", o.UserID, "total", o.Total.StringFixed(2))
	u.publish(ctx, EventOrderCreated, o, 0)
	return o, nil
}

// Update replaces the address and every line of a Pending order.
func (u *orderUsecase) Update(ctx context.Context, id uint, address string, in []LineInput) (*entity.Order, error) {
	if err := validateOrder(address, in); err != nil {
		return nil, err
	}
	lines, err := u.buildLines(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := checkTotal(lines); err != nil {
		return nil, err
	}
	if err := u.orders.ReplaceLines(ctx, id, strings.TrimSpace(address), lines); err != nil {
		return nil, err
	}
	return u.orders.FindByID(ctx, id)
}

// AddProduct appends one line to a Pending order.
func (u *orderUsecase) AddProduct(ctx context.Context, id uint, in LineInput) (*entity.Order, error) {
	var v validation.Errors
	validateLine(&v, "line", in)
	if err := v.Err(); err != nil {
		return nil, err
	}
	lines, err := u.buildLines(ctx, []LineInput{in})
	if err != nil {
		return nil, err
	}
	if err := u.orders.AppendLine(ctx, id, lines[0]); err != nil {
		return nil, err
	}
	return u.orders.FindByID(ctx, id)
}

// ChangeStatus applies a transition allowed by the order state machine:
// Pending to Shipped or Cancelled, Shipped to Delivered.
func (u *orderUsecase) ChangeStatus(ctx context.Context, id uint, to entity.Status) (*entity.Order, error) {
	if !to.Valid() {
		var v validation.Errors
		v.Add("status", "must be one of Pending, Shipped, Delivered, Cancelled")
		return nil, v.Err()
	}

	o, err := u.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	from := o.Status
	if !from.CanTransitionTo(to) {
		return nil, apperr.Conflict(fmt.Sprintf("cannot change order status from %s to %s", from, to))
	}
	if err := u.orders.UpdateStatus(ctx, id, from, to); err != nil {
		return nil, err
	}
	o.Status = to

	slog.Info("order status changed", "order_id", id, "from", from.String(), "to", to.String())
	u.publish(ctx, EventOrderStatusChanged, o, from)
	return o, nil
}

// List returns every order with its lines.
func (u *orderUsecase) List(ctx context.Context) ([]entity.Order, error) {
	return u.orders.List(ctx)
}

// ListPage filters on the shipping address.
func (u *orderUsecase) ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Order], error) {
	return u.orders.ListPage(ctx, p.Normalize())
}

// Get returns one order with its lines.
func (u *orderUsecase) Get(ctx context.Context, id uint) (*entity.Order, error) {
	return u.orders.FindByID(ctx, id)
}

// ByUser lists the orders of userID, newest first.
func (u *orderUsecase) ByUser(ctx context.Context, userID uint) ([]entity.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// Delete removes the order and its lines.
func (u *orderUsecase) Delete(ctx context.Context, id uint) error {
	return u.orders.Delete(ctx, id)
}

// publish runs after the transaction committed. A failure is logged and
// never reported to the caller.
func (u *orderUsecase) publish(ctx context.Context, eventType string, o *entity.Order, previous entity.Status) {
	if u.publisher == nil {
		return
	}
	ev := OrderEvent{
		OrderID: o.ID,
		UserID:  o.UserID,
		Status:  o.Status.String(),
		Total:   o.Total.StringFixed(2),
		Lines:   len(o.Lines),
	}
	if previous.Valid() {
		ev.PreviousStatus = previous.String()
	}
	if err := u.publisher.Publish(ctx, eventType, fmt.Sprint(o.ID), ev); err != nil {
		slog.Warn("order event publish failed", "error", err, "event_type", eventType, "order_id", o.ID)
	}
}
