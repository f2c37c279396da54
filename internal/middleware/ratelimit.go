package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// RateLimit is a fixed-window limiter keyed by client IP + route, counted
// in Redis so the window survives restarts and is shared across instances.
func RateLimit(rdb *redis.Client, window time.Duration, max int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf("ratelimit:%s:%s", c.RealIP(), c.Request().URL.Path)

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				// Redis being down should not take the storefront with it.
				return next(c)
			}
			if count == 1 {
				rdb.Expire(ctx, key, window)
			}

			remaining := int64(max) - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(max))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(max) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests. Please slow down.")
			}
			return next(c)
		}
	}
}
