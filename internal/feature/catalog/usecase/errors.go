package usecase

import "shop_backend/internal/shared/apperr"

var (
	ErrCountryNotFound       = apperr.NotFound("country not found")
	ErrCategoryNotFound      = apperr.NotFound("category not found")
	ErrBrandNotFound         = apperr.NotFound("brand not found")
	ErrProductNotFound       = apperr.NotFound("product not found")
	ErrCategoryBrandNotFound = apperr.NotFound("category-brand association not found")

	// ErrReferenceNotFound is returned when an insert races with the
	// deletion of a referenced row.
	ErrReferenceNotFound = apperr.NotFound("referenced entity not found")

	ErrBrandNameTaken      = apperr.Conflict("a brand with this name already exists")
	ErrCountryInUse        = apperr.Conflict("country is referenced by brands")
	ErrCategoryBrandExists = apperr.Conflict("category is already associated with this brand")
)
