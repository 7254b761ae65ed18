package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"arte-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimit is a fixed-window limiter keyed by client IP and scope, counted
// in Redis so every instance shares the budget. With no client, or when Redis
// errors, requests pass through.
func RateLimit(rdb *redis.Client, config utils.RateLimitConfig, scope string, logger *zap.Logger) func(http.Handler) http.Handler {
	if rdb == nil || config.Requests <= 0 || config.Window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	log := logger.With(zap.String("middleware", "ratelimit"), zap.String("scope", scope))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := time.Now()
			window := now.UnixNano() / int64(config.Window)
			key := fmt.Sprintf("ratelimit:%s:%s:%d", scope, utils.ClientIP(r), window)

			ctx := r.Context()
			pipe := rdb.TxPipeline()
			incr := pipe.Incr(ctx, key)
			pipe.Expire(ctx, key, config.Window)
			if _, err := pipe.Exec(ctx); err != nil {
				log.Warn("Rate limiter unavailable, allowing request", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			count := incr.Val()
			remaining := int64(config.Requests) - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Requests))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(config.Requests) {
				resetAt := time.Unix(0, (window+1)*int64(config.Window))
				secs := int(math.Ceil(resetAt.Sub(now).Seconds()))
				if secs < 1 {
					secs = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				log.Info("Rate limit exceeded",
					zap.String("ip", utils.ClientIP(r)),
					zap.Int64("count", count),
				)
				utils.ResponseTooManyRequests(w, "Too many requests, try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
