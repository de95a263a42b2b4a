package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"depot/internal/shared/utils"
)

// RateLimiter throttles mutating endpoints per client IP. Counters live in
// fixed time windows on a shared Redis, so the limit holds across depot
// replicas rather than per process.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

// NewRateLimiter returns a limiter allowing limit requests per IP per
// window.
func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
	}
}

// Limit is the gin middleware enforcing the per-IP limit. Requests over
// the limit get a 429.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.Request.Context(), c.ClientIP()) {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}

// allow counts the request against the caller's current window. A Redis
// error fails open.
func (rl *RateLimiter) allow(ctx context.Context, clientIP string) bool {
	bucket := time.Now().Unix() / int64(rl.window.Seconds())
	key := fmt.Sprintf("depot:ratelimit:%s:%d", clientIP, bucket)

	count, err := rl.rdb.Incr(ctx, key).Result()
	if err != nil {
		return true
	}
	if count == 1 {
		// First hit in the window owns setting the TTL.
		rl.rdb.Expire(ctx, key, rl.window+time.Second)
	}

	return count <= int64(rl.limit)
}
