package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"eisenhower-matrix/pkg/response"
)

// RateLimit enforces a per-client token bucket keyed by client IP. Idle
// clients age out of the LRU so the limiter set stays bounded.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMin := m.rate.PerMin
	if perMin <= 0 {
		perMin = 120
	}
	limiters := expirable.NewLRU[string, *rate.Limiter](1024, nil, 10*time.Minute)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter, ok := limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(float64(perMin)/60.0), perMin)
			limiters.Add(ip, limiter)
		}

		if !limiter.Allow() {
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
