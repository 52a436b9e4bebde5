package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const visitorIdleTTL = 10 * time.Minute

// RateLimiter throttles credential endpoints per client IP. An entry is
// dropped only after a quiet period, so an active caller can never wait
// out a fixed timer and collect a fresh burst.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{visitors: make(map[string]*visitor)}
	go rl.sweepLoop()
	return rl
}

func (rl *RateLimiter) sweepLoop() {
	for range time.Tick(time.Minute) {
		rl.sweep(time.Now())
	}
}

// sweep drops entries idle longer than the TTL.
func (rl *RateLimiter) sweep(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > visitorIdleTTL {
			delete(rl.visitors, ip)
		}
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, ok := rl.visitors[ip]; ok {
		v.lastSeen = time.Now()
		return v.limiter
	}

	// 5 attempts burst, refilling one every 12s (5/minute sustained)
	v := &visitor{
		limiter:  rate.NewLimiter(rate.Every(12*time.Second), 5),
		lastSeen: time.Now(),
	}
	rl.visitors[ip] = v
	return v.limiter
}

// Limit rejects callers that exceed the per-IP budget.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.getLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many attempts. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
