package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/Lucky-tech10/auto-mart-api/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ipLimiter tracks one token bucket per client IP
type ipLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucketEntry
	limit    rate.Limit
	burst    int
	lifetime time.Duration
}

type bucketEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPLimiter(requests int, window time.Duration) *ipLimiter {
	return &ipLimiter{
		buckets:  make(map[string]*bucketEntry),
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    requests,
		lifetime: window,
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	entry, ok := l.buckets[ip]
	if !ok {
		// Prune stale entries while we hold the lock anyway
		for k, e := range l.buckets {
			if now.Sub(e.lastSeen) > l.lifetime {
				delete(l.buckets, k)
			}
		}
		entry = &bucketEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter.Allow()
}

// RateLimit throttles a route group per client IP: `requests` attempts
// per `window`, refilling gradually. Used on register/login to slow
// credential stuffing.
func RateLimit(requests int, window time.Duration) gin.HandlerFunc {
	limiter := newIPLimiter(requests, window)
	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Error(http.StatusTooManyRequests, "Too many requests created from this IP, please try again later."))
			return
		}
		c.Next()
	}
}
