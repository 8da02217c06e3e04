// Package usecase implements the shopping cart workflow.
package usecase

import (
	"context"
	"fmt"

	"shop_backend/internal/feature/cart/domain/entity"
	catalogentity "shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/platform/validation"
	"shop_backend/internal/shared/apperr"
)

// MaxLineQuantity caps the units of one product in a cart.
const MaxLineQuantity = 10000

var (
	// ErrQuantityTooLarge is returned when an add would push a line past
	// MaxLineQuantity.
	ErrQuantityTooLarge = apperr.Invalid([]apperr.FieldError{{Field: "cantidad", Message: fmt.Sprintf("must be at most %d", MaxLineQuantity)}})

	ErrCartNotFound     = apperr.NotFound("cart not found")
	ErrCartLineNotFound = apperr.NotFound("cart line not found")
	ErrProductNotFound  = apperr.NotFound("product not found")
	ErrUserNotFound     = apperr.NotFound("user not found")
)

// CartRepository persists carts. Every mutation runs in one transaction.
type CartRepository interface {
	// AddLine creates the user's cart when missing and adds quantity to
	// the product's line atomically, creating the line when missing. A sum
	// above MaxLineQuantity yields ErrQuantityTooLarge and nothing changes.
	AddLine(ctx context.Context, userID, productID uint, quantity int) error
	SetQuantity(ctx context.Context, userID, productID uint, quantity int) error
	RemoveLine(ctx context.Context, userID, productID uint) error
	Clear(ctx context.Context, userID uint) error
	// FindByUser loads the cart with its lines ordered by id and each
	// line's product, brand and category.
	FindByUser(ctx context.Context, userID uint) (*entity.Cart, error)
}

// ProductFinder resolves catalog products.
type ProductFinder interface {
	FindByID(ctx context.Context, id uint) (*catalogentity.Product, error)
}

type cartUsecase struct {
	carts    CartRepository
	products ProductFinder
}

// NewCartUsecase returns the cart usecase. products is read uncached.
func NewCartUsecase(carts CartRepository, products ProductFinder) *cartUsecase {
	return &cartUsecase{carts: carts, products: products}
}

func validateLine(productID uint, quantity int) error {
	var v validation.Errors
	v.ID("product_id", productID)
	v.Positive("cantidad", quantity)
	if quantity > MaxLineQuantity {
		v.Add("cantidad", "must be at most %d", MaxLineQuantity)
	}
	return v.Err()
}

// Get returns the user's cart or ErrCartNotFound.
func (u *cartUsecase) Get(ctx context.Context, userID uint) (*entity.Cart, error) {
	return u.carts.FindByUser(ctx, userID)
}

// AddProduct adds quantity units of the product. Adding a product that is
// already in the cart increases its line instead of creating another.
func (u *cartUsecase) AddProduct(ctx context.Context, userID, productID uint, quantity int) (*entity.Cart, error) {
	if err := validateLine(productID, quantity); err != nil {
		return nil, err
	}
	if _, err := u.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	if err := u.carts.AddLine(ctx, userID, productID, quantity); err != nil {
		return nil, err
	}
	return u.carts.FindByUser(ctx, userID)
}

// SetQuantity replaces the quantity of an existing line. Use RemoveProduct
// to drop a line; a quantity below 1 is rejected.
func (u *cartUsecase) SetQuantity(ctx context.Context, userID, productID uint, quantity int) (*entity.Cart, error) {
	if err := validateLine(productID, quantity); err != nil {
		return nil, err
	}
	if err := u.carts.SetQuantity(ctx, userID, productID, quantity); err != nil {
		return nil, err
	}
	return u.carts.FindByUser(ctx, userID)
}

// RemoveProduct drops the product's line from the cart.
func (u *cartUsecase) RemoveProduct(ctx context.Context, userID, productID uint) (*entity.Cart, error) {
	if err := u.carts.RemoveLine(ctx, userID, productID); err != nil {
		return nil, err
	}
	return u.carts.FindByUser(ctx, userID)
}

// Clear empties the cart. Clearing an empty cart is a no-op.
func (u *cartUsecase) Clear(ctx context.Context, userID uint) error {
	return u.carts.Clear(ctx, userID)
}
