package di

import (
	"github.com/redis/go-redis/v9"

	authusecase "shop_backend/internal/feature/auth/usecase"
	"shop_backend/internal/platform/config"
	"shop_backend/internal/platform/ratelimit"
)

// NewLoginLimiter returns a Redis-backed limiter, or nil when Redis is not
// available, in which case logins are not throttled.
func NewLoginLimiter(rdb *redis.Client, cfg config.RedisConfig) authusecase.LoginLimiter {
	if rdb == nil {
		return nil
	}
	return ratelimit.NewLoginLimiter(rdb, cfg.LoginMaxAttempts, cfg.LoginWindow)
}
