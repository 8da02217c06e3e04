// Package adapters provides the gorm-backed order repository.
package adapters

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shop_backend/internal/feature/order/domain/entity"
	"shop_backend/internal/feature/order/usecase"
	"shop_backend/internal/platform/db"
	"shop_backend/internal/platform/pagination"
)

type orderRepository struct {
	db *gorm.DB
}

var _ usecase.OrderRepository = (*orderRepository)(nil)

// NewOrderRepository returns the gorm order repository.
func NewOrderRepository(gdb *gorm.DB) *orderRepository {
	return &orderRepository{db: gdb}
}

func withLines(q *gorm.DB) *gorm.DB {
	return q.Preload("Lines", func(q *gorm.DB) *gorm.DB { return q.Order("order_lines.id") })
}

// Create inserts the order and, through the association, its lines.
func (r *orderRepository) Create(ctx context.Context, o *entity.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("User").Create(o).Error
	})
	if db.IsForeignKeyViolation(err) {
		return usecase.ErrUserNotFound
	}
	return translateWrite(err)
}

// translateWrite maps a total that overflows its column onto the same
// validation error the usecase returns.
func translateWrite(err error) error {
	if db.IsNumericOverflow(err) {
		return usecase.ErrOrderTotalTooLarge
	}
	return db.Translate(err, nil)
}

// FindByID loads the order with its lines.
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*entity.Order, error) {
	var o entity.Order
	if err := withLines(r.db.WithContext(ctx)).First(&o, id).Error; err != nil {
		return nil, db.Translate(err, usecase.ErrOrderNotFound)
	}
	return &o, nil
}

// List returns every order ordered by id.
func (r *orderRepository) List(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := withLines(r.db.WithContext(ctx)).Order("id").Find(&orders).Error; err != nil {
		return nil, db.Translate(err, nil)
	}
	return orders, nil
}

// ListPage filters on the shipping address.
func (r *orderRepository) ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.Order], error) {
	page, err := db.Paginate[entity.Order](r.db.WithContext(ctx).Model(&entity.Order{}), p, db.PageQuery{
		FilterColumns: []string{"shipping_address"},
		Order:         "id",
		Preloads:      []string{"Lines"},
	})
	return page, db.Translate(err, nil)
}

// ListByUser returns the user's orders, newest first.
func (r *orderRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := withLines(r.db.WithContext(ctx)).Where("user_id = ?", userID).Order("placed_at DESC, id DESC").Find(&orders).Error
	if err != nil {
		return nil, db.Translate(err, nil)
	}
	return orders, nil
}

// ReplaceLines swaps address, lines and total of a Pending order in one transaction.
func (r *orderRepository) ReplaceLines(ctx context.Context, id uint, address string, lines []entity.OrderLine) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Order{}).
			Where("id = ? AND status = ?", id, entity.StatusPending).
			Updates(map[string]any{"shipping_address": address, "total": entity.SumLines(lines)})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return r.notPending(tx, id)
		}

		if err := tx.Where("order_id = ?", id).Delete(&entity.OrderLine{}).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].ID = 0
			lines[i].OrderID = id
		}
		return tx.Create(&lines).Error
	})
	return translateWrite(err)
}

// AppendLine inserts the line, then recomputes the total from the stored
// lines with a conditional update that also guards the Pending status.
func (r *orderRepository) AppendLine(ctx context.Context, id uint, line entity.OrderLine) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current decimal.Decimal
		if err := tx.Model(&entity.OrderLine{}).Select("COALESCE(SUM(subtotal), 0)").Where("order_id = ?", id).Row().Scan(&current); err != nil {
			return err
		}
		if current.Add(line.Subtotal).GreaterThan(usecase.MaxOrderTotal) {
			return usecase.ErrOrderTotalTooLarge
		}

		line.ID = 0
		line.OrderID = id
		if err := tx.Create(&line).Error; err != nil {
			if db.IsForeignKeyViolation(err) {
				return usecase.ErrOrderNotFound
			}
			return err
		}

		sum := tx.Model(&entity.OrderLine{}).Select("SUM(subtotal)").Where("order_id = ?", id)
		res := tx.Model(&entity.Order{}).
			Where("id = ? AND status = ?", id, entity.StatusPending).
			Update("total", sum)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return r.notPending(tx, id)
		}
		return nil
	})
	return translateWrite(err)
}

// UpdateStatus is a compare-and-set on the status column.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uint, from, to entity.Status) error {
	res := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return db.Translate(res.Error, nil)
	}
	if res.RowsAffected == 0 {
		var n int64
		if err := r.db.WithContext(ctx).Model(&entity.Order{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return db.Translate(err, nil)
		}
		if n == 0 {
			return usecase.ErrOrderNotFound
		}
		return usecase.ErrStatusChanged
	}
	return nil
}

// Delete removes the order; its lines cascade.
func (r *orderRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Order{}, id)
	if res.Error != nil {
		return db.Translate(res.Error, nil)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrOrderNotFound
	}
	return nil
}

// notPending tells a missing order apart from one that left Pending.
func (r *orderRepository) notPending(tx *gorm.DB, id uint) error {
	var o entity.Order
	err := tx.Select("id", "status").First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usecase.ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	return usecase.ErrOrderNotEditable
}
