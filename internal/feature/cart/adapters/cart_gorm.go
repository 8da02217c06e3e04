// Package adapters provides the gorm-backed cart repository.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shop_backend/internal/feature/cart/domain/entity"
	"shop_backend/internal/feature/cart/usecase"
	"shop_backend/internal/platform/db"
)

type cartRepository struct {
	db  *gorm.DB
	now func() time.Time
}

var _ usecase.CartRepository = (*cartRepository)(nil)

// NewCartRepository returns the gorm cart repository.
func NewCartRepository(gdb *gorm.DB) *cartRepository {
	return &cartRepository{db: gdb, now: time.Now}
}

// AddLine upserts the cart on user_id, then upserts the line on
// (cart_id, product_id) incrementing the stored quantity in the same
// statement, so concurrent adds never lose an update. The incremented
// quantity is read back in the transaction and rolled back when it
// exceeds MaxLineQuantity.
func (r *cartRepository) AddLine(ctx context.Context, userID, productID uint, quantity int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := r.now()
		err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{"last_updated": now}),
		}).Create(&entity.Cart{UserID: userID, LastUpdated: now}).Error
		if db.IsForeignKeyViolation(err) {
			return usecase.ErrUserNotFound
		}
		if err != nil {
			return err
		}

		// The upsert does not report the id of an existing row on every
		// driver, so read it back.
		var cart entity.Cart
		if err := tx.Select("id").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			return err
		}

		err = tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Set{{
				Column: clause.Column{Name: "quantity"},
				Value:  gorm.Expr("cart_lines.quantity + excluded.quantity"),
			}},
		}).Create(&entity.CartLine{CartID: cart.ID, ProductID: productID, Quantity: quantity}).Error
		if db.IsForeignKeyViolation(err) {
			return usecase.ErrProductNotFound
		}
		if err != nil {
			return err
		}

		var line entity.CartLine
		if err := tx.Select("quantity").Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&line).Error; err != nil {
			return err
		}
		if line.Quantity > usecase.MaxLineQuantity {
			return usecase.ErrQuantityTooLarge
		}
		return nil
	})
	return db.Translate(err, nil)
}

// SetQuantity overwrites the quantity of an existing line.
func (r *cartRepository) SetQuantity(ctx context.Context, userID, productID uint, quantity int) error {
	return r.withCart(ctx, userID, func(tx *gorm.DB, cartID uint) error {
		res := tx.Model(&entity.CartLine{}).
			Where("cart_id = ? AND product_id = ?", cartID, productID).
			Update("quantity", quantity)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrCartLineNotFound
		}
		return nil
	})
}

// RemoveLine deletes the product line or returns ErrCartLineNotFound.
func (r *cartRepository) RemoveLine(ctx context.Context, userID, productID uint) error {
	return r.withCart(ctx, userID, func(tx *gorm.DB, cartID uint) error {
		res := tx.Where("cart_id = ? AND product_id = ?", cartID, productID).Delete(&entity.CartLine{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrCartLineNotFound
		}
		return nil
	})
}

// Clear deletes every line but keeps the cart.
func (r *cartRepository) Clear(ctx context.Context, userID uint) error {
	return r.withCart(ctx, userID, func(tx *gorm.DB, cartID uint) error {
		return tx.Where("cart_id = ?", cartID).Delete(&entity.CartLine{}).Error
	})
}

// withCart runs fn in a transaction on the user's cart and stamps
// last_updated when fn succeeds.
func (r *cartRepository) withCart(ctx context.Context, userID uint, fn func(tx *gorm.DB, cartID uint) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart entity.Cart
		if err := tx.Select("id").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			return db.Translate(err, usecase.ErrCartNotFound)
		}
		if err := fn(tx, cart.ID); err != nil {
			return err
		}
		return tx.Model(&entity.Cart{}).Where("id = ?", cart.ID).Update("last_updated", r.now()).Error
	})
	return db.Translate(err, nil)
}

// FindByUser loads lines in insertion order with product, brand and category.
func (r *cartRepository) FindByUser(ctx context.Context, userID uint) (*entity.Cart, error) {
	var cart entity.Cart
	err := r.db.WithContext(ctx).
		Preload("Lines", func(q *gorm.DB) *gorm.DB { return q.Order("cart_lines.id") }).
		Preload("Lines.Product.Brand").
		Preload("Lines.Product.Category").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		return nil, db.Translate(err, usecase.ErrCartNotFound)
	}
	return &cart, nil
}
