package middleware

import (
	"net/http"
	"sync"
	"time"

	"storefront/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const purgeInterval = 5 * time.Minute

// rateEntry tracks request counts for one client IP within a sliding window.
type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

// slidingLimiter is a per-IP sliding-window limiter. Every RateLimiter and
// LoginRateLimiter instance owns its map, so exhausting one route's budget
// never affects another's.
type slidingLimiter struct {
	limit   int
	window  time.Duration
	message string

	mu      sync.Mutex
	entries map[string]*rateEntry
}

func newSlidingLimiter(limit int, window time.Duration, message string) *slidingLimiter {
	l := &slidingLimiter{
		limit:   limit,
		window:  window,
		message: message,
		entries: make(map[string]*rateEntry),
	}
	go l.purgeLoop()
	return l
}

func (l *slidingLimiter) handle(c *gin.Context) {
	ip := c.ClientIP()

	l.mu.Lock()
	entry, exists := l.entries[ip]
	if !exists {
		entry = &rateEntry{}
		l.entries[ip] = entry
	}
	l.mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	if now.After(entry.windowEnd) {
		entry.count = 0
		entry.windowEnd = now.Add(l.window)
	}

	entry.count++
	if entry.count > l.limit {
		c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.message))
		return
	}
	c.Next()
}

// purgeLoop removes expired entries so IPs that never return do not
// accumulate forever.
func (l *slidingLimiter) purgeLoop() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purged := 0

		l.mu.Lock()
		for ip, entry := range l.entries {
			entry.mu.Lock()
			if now.After(entry.windowEnd) {
				delete(l.entries, ip)
				purged++
			}
			entry.mu.Unlock()
		}
		l.mu.Unlock()

		if purged > 0 {
			log.Debug().Int("entries_purged", purged).Msg("rate limiter map purged")
		}
	}
}

// RateLimiter returns a general-purpose sliding-window rate limiter. The
// limit is configuration-driven (RATE_LIMIT_PER_MIN).
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newSlidingLimiter(limit, window, "too many requests, try again shortly").handle
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newSlidingLimiter(20, time.Minute, "too many login attempts, try again in a minute").handle
}
