package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	pkgErrors "customer-care-assistant/pkg/errors"
	"customer-care-assistant/pkg/response"
)

// limiterTableSize bounds the number of client IPs tracked at once. Old
// entries are evicted LRU-style; an evicted client simply starts with a
// fresh bucket.
const limiterTableSize = 1024

// RateLimit applies a per-client-IP token bucket. Disabled via config for
// local development.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if !m.cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	limiters, err := lru.New[string, *rate.Limiter](limiterTableSize)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic(err)
	}

	limit := rate.Limit(float64(m.cfg.PerMin) / 60.0)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		limiter, ok := limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(limit, m.cfg.Burst)
			limiters.Add(ip, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "Rate limit exceeded for %s", ip)
			response.Error(c, pkgErrors.NewHTTPError(http.StatusTooManyRequests, "too many requests"))
			c.Abort()
			return
		}

		c.Next()
	}
}
