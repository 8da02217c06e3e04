// Package usecase implements registration, login, token refresh and user
// administration.
package usecase

import "shop_backend/internal/shared/apperr"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = apperr.NotFound("user not found")

	// ErrEmailAlreadyExists is returned when registering an email that is taken.
	ErrEmailAlreadyExists = apperr.Conflict("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = apperr.Unauthenticated("invalid email or password")

	// ErrInvalidRefreshToken covers unknown, expired, rotated or mismatched refresh tokens.
	ErrInvalidRefreshToken = apperr.Unauthenticated("invalid or expired refresh token")

	// ErrTooManyAttempts is returned while an email is locked out of login.
	ErrTooManyAttempts = apperr.TooManyRequests("too many failed login attempts, try again later")
)
