package routes

import (
	"log"
	"net/http"
	"strings"
	"time"

	"angies_cleaning/pkg"

	"github.com/gin-gonic/gin"
)

const (
	rateLimitWindow = 15 * time.Minute
	rateLimitMax    = 3
	sweepInterval   = time.Hour
)

// admitter is the slice of the rate limiter the middleware needs.
type admitter interface {
	Allow(key string) bool
}

// rateLimitMiddleware rejects a request before the body is even read when
// its client address has exhausted the window.
func rateLimitMiddleware(limiter admitter) gin.HandlerFunc {
	rejection := pkg.NewDomainErrorSimple(
		"RATE_LIMITED",
		"Too many requests. Please try again in 15 minutes.",
		http.StatusTooManyRequests,
	)

	return func(c *gin.Context) {
		addr := clientAddress(c.Request)
		if !limiter.Allow(addr) {
			log.Printf("[quote][ratelimit] limit exceeded addr=%s", addr)
			c.AbortWithStatusJSON(rejection.HTTPStatus, rejection.ToHTTPError())
			return
		}
		c.Next()
	}
}

// clientAddress keys the rate limiter: first hop of X-Forwarded-For, then
// X-Real-IP, then a shared "unknown-ip" bucket for unresolved clients.
func clientAddress(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first := fwd
		if i := strings.Index(fwd, ","); i >= 0 {
			first = fwd[:i]
		}
		return strings.TrimSpace(first)
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return "unknown-ip"
}
