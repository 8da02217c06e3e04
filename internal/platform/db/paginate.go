package db

import (
	"strings"

	"gorm.io/gorm"

	"shop_backend/internal/platform/pagination"
)

// PageQuery describes how a listing is filtered, ordered and eager-loaded.
type PageQuery struct {
	// FilterColumns are matched case-insensitively against the filter term (OR).
	FilterColumns []string
	Order         string
	Preloads      []string
}

// Paginate runs a count and a page query for q, which must have a Model set.
func Paginate[T any](q *gorm.DB, p pagination.Params, pq PageQuery) (pagination.Page[T], error) {
	p = p.Normalize()

	if term := strings.TrimSpace(p.Filter); term != "" && len(pq.FilterColumns) > 0 {
		pattern := "%" + strings.ToLower(term) + "%"
		conds := make([]string, 0, len(pq.FilterColumns))
		args := make([]any, 0, len(pq.FilterColumns))
		for _, col := range pq.FilterColumns {
			conds = append(conds, "LOWER("+col+") LIKE ?")
			args = append(args, pattern)
		}
		q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
	base := q.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return pagination.Page[T]{}, err
	}

	find := base
	for _, rel := range pq.Preloads {
		find = find.Preload(rel)
	}
	if pq.Order != "" {
		find = find.Order(pq.Order)
	}

	items := make([]T, 0, p.Size)
	if err := find.Offset(p.Offset()).Limit(p.Size).Find(&items).Error; err != nil {
		return pagination.Page[T]{}, err
	}

	return pagination.Page[T]{Items: items, Page: p.Page, Size: p.Size, Total: total}, nil
}
