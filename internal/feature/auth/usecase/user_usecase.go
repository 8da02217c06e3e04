package usecase

import (
	"context"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/platform/pagination"
)

// userUsecase serves the administrative user listing.
type userUsecase struct {
	users UserRepository
}

// NewUserUsecase returns the user administration usecase.
func NewUserUsecase(users UserRepository) *userUsecase {
	return &userUsecase{users: users}
}

// List returns every user.
func (u *userUsecase) List(ctx context.Context) ([]entity.User, error) {
	return u.users.List(ctx)
}

// ListPage filters on name and email.
func (u *userUsecase) ListPage(ctx context.Context, p pagination.Params) (pagination.Page[entity.User], error) {
	return u.users.ListPage(ctx, p.Normalize())
}

// Get returns the user or ErrUserNotFound.
func (u *userUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Delete removes the account; carts and orders cascade.
func (u *userUsecase) Delete(ctx context.Context, id uint) error {
	return u.users.Delete(ctx, id)
}
