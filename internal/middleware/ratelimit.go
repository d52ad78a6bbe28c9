// Package middleware provides the HTTP middleware used by the booking
// API.
package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/eventpass/seat-booking/internal/config"
)

// RateLimit returns a fixed-window limiter keyed by client IP and
// route.  Each window is a Redis counter incremented per request and
// expired after the window length.  When the limiter is disabled, the
// Redis client is nil, or Redis errors mid-flight, requests pass
// through untouched — availability wins over throttling here.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			window := time.Now().UnixMilli() / cfg.Window.Milliseconds()
			key := fmt.Sprintf("%s:%s:%s:%d", cfg.Prefix, c.RealIP(), c.Path(), window)

			ctx := c.Request().Context()
			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				c.Logger().Warnf("ratelimit: redis error for key=%s: %v", key, err)
				return next(c)
			}
			if count == 1 {
				_ = rdb.Expire(ctx, key, cfg.Window).Err()
			}
			if count > int64(cfg.Limit) {
				retry := cfg.Window - time.Duration(time.Now().UnixMilli()%cfg.Window.Milliseconds())*time.Millisecond
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(retry/time.Second)+1))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
