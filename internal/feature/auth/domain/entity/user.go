// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"shop_backend/internal/shared/role"
)

// User represents a registered account.
type User struct {
	ID uint `gorm:"primaryKey"`

	Name string `gorm:"size:100;not null"`

	// Email is stored lower-cased so uniqueness is case-insensitive.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash, never the plaintext.
	Password string `gorm:"size:255;not null"`

	Role role.Role `gorm:"type:varchar(20);not null"`

	// RefreshTokenHash is the hex sha256 of the outstanding refresh token.
	RefreshTokenHash *string `gorm:"size:64;index"`

	RefreshTokenExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasValidRefreshToken reports whether a refresh token is stored and not expired at now.
func (u *User) HasValidRefreshToken(now time.Time) bool {
	return u.RefreshTokenHash != nil && u.RefreshTokenExpiresAt != nil && u.RefreshTokenExpiresAt.After(now)
}
