// Package adapters provides the gorm-backed user repository.
package adapters

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/usecase"
	"shop_backend/internal/platform/db"
	"shop_backend/internal/platform/pagination"
)

type userRepository struct {
	db *gorm.DB
}

// Compile-time check that userRepository implements usecase.UserRepository.
var _ usecase.UserRepository = (*userRepository)(nil)

// NewUserRepository returns the gorm user repository.
func NewUserRepository(gdb *gorm.DB) *userRepository {
	return &userRepository{db: gdb}
}

// Create inserts u. A duplicate email yields usecase.ErrEmailAlreadyExists.
func (r *userRepository) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return db.Translate(err, nil)
	}
	return nil
}

// FindByEmail matches the lower-cased address.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&u).Error
	if err != nil {
		return nil, db.Translate(err, usecase.ErrUserNotFound)
	}
	return &u, nil
}

// FindByID returns the user or ErrUserNotFound.
func (r *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, db.Translate(err, usecase.ErrUserNotFound)
	}
	return &u, nil
}

// FindByRefreshTokenHash returns the owner of a stored refresh token hash.
func (r *userRepository) FindByRefreshTokenHash(ctx context.Context, hash string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("refresh_token_hash = ?", hash).First(&u).Error; err != nil {
		return nil, db.Translate(err, usecase.ErrUserNotFound)
	}
	return &u, nil
}

// SetRefreshToken stores the hash and expiry, replacing any previous token.
func (r *userRepository) SetRefreshToken(ctx context.Context, userID uint, hash string, expiresAt time.Time) error {
	return r.update(r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", userID),
		map[string]any{"refresh_token_hash": hash, "refresh_token_expires_at": expiresAt},
		usecase.ErrUserNotFound)
}

// ReplaceRefreshToken only matches while oldHash is still stored, so two
// concurrent refreshes with the same token cannot both succeed.
func (r *userRepository) ReplaceRefreshToken(ctx context.Context, userID uint, oldHash, newHash string, expiresAt time.Time) error {
	return r.update(r.db.WithContext(ctx).Model(&entity.User{}).
		Where("id = ? AND refresh_token_hash = ?", userID, oldHash),
		map[string]any{"refresh_token_hash": newHash, "refresh_token_expires_at": expiresAt},
		usecase.ErrInvalidRefreshToken)
}

// ClearRefreshToken revokes the stored refresh token.
func (r *userRepository) ClearRefreshToken(ctx context.Context, userID uint) error {
	return r.update(r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", userID),
		map[string]any{"refresh_token_hash": nil, "refresh_token_expires_at": nil},
		usecase.ErrUserNotFound)
}

// UpdatePassword stores a new bcrypt hash.
func (r *userRepository) UpdatePassword(ctx context.Context, userID uint, hash string) error {
	return r.update(r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", userID),
		map[string]any{"password": hash, "refresh_token_hash": nil, "refresh_token_expires_at": nil},
		usecase.ErrUserNotFound)
}

func (r *userRepository) update(q *gorm.DB, values map[string]any, noMatch error) error {
	res := q.Updates(values)
	if res.Error != nil {
		return db.Translate(res.Error, nil)
	}
	if res.RowsAffected == 0 {
		return noMatch
	}
	return nil
}

// List returns every user ordered by id.
func (r *userRepository) List(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, db.Translate(err, nil)
	}
	return users, nil
}

// ListPage filters on name and email.
func (r *userRepository) ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.User], error) {
	page, err := db.Paginate[entity.User](r.db.WithContext(ctx).Model(&entity.User{}), p,
		db.PageQuery{FilterColumns: []string{"name", "email"}, Order: "id"})
	return page, db.Translate(err, nil)
}

// Delete removes the user; the user's cart and orders cascade.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.User{}, id)
	if res.Error != nil {
		return db.Translate(res.Error, nil)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
