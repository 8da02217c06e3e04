package dto

import (
	"time"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/usecase"
)

// UserRes is the public view of a user. It never carries the password hash
// or refresh token state.
type UserRes struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserRes never exposes the password hash.
func ToUserRes(u entity.User) UserRes {
	return UserRes{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

// ToUserResList maps a slice of users.
func ToUserResList(users []entity.User) []UserRes {
	out := make([]UserRes, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserRes(u))
	}
	return out
}

// ToLoginRes maps a session; now is used to derive expires_in.
func ToLoginRes(s *usecase.Session, now time.Time) LoginRes {
	expiresIn := int64(s.Tokens.AccessExpiresAt.Sub(now).Seconds())
	if expiresIn < 0 {
		expiresIn = 0
	}
	return LoginRes{
		AccessToken:      s.Tokens.AccessToken,
		RefreshToken:     s.Tokens.RefreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        expiresIn,
		RefreshExpiresAt: s.Tokens.RefreshExpiresAt.UTC().Format(time.RFC3339),
		User:             ToUserRes(*s.User),
	}
}
