package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMW implements a fixed-window request limiter on Redis counters,
// keyed per authenticated user.
type RateLimitMW struct {
	client   *redis.Client
	requests int
	window   time.Duration
}

// NewRateLimitMW creates new rate limit middleware wrapper
func NewRateLimitMW(client *redis.Client, requests int, window time.Duration) *RateLimitMW {
	return &RateLimitMW{
		client:   client,
		requests: requests,
		window:   window,
	}
}

// Limit returns the rate limiting middleware
func (mw *RateLimitMW) Limit() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": credentialsError})
			c.Abort()
			return
		}

		key := fmt.Sprintf("ratelimit:%d:%s", user.ID, c.FullPath())
		count, err := mw.client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			// A broken limiter should not take the endpoint down with it.
			c.Next()
			return
		}
		if count == 1 {
			mw.client.Expire(c.Request.Context(), key, mw.window)
		}

		if count > int64(mw.requests) {
			c.JSON(http.StatusTooManyRequests, gin.H{"detail": "too many requests, try again later"})
			c.Abort()
			return
		}

		c.Next()
	})
}
