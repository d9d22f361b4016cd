package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reserva-dashboard/utils"
	"golang.org/x/time/rate"
)

// RateLimiter is a sliding window of requests per client IP. IPs whose
// window has emptied are swept at most once per interval.
type RateLimiter struct {
	rate      int
	interval  time.Duration
	ips       map[string][]time.Time
	lastSweep time.Time
	mu        sync.Mutex
}

func NewRateLimiter(rate int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		rate:     rate,
		interval: interval,
		ips:      make(map[string][]time.Time),
	}
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP(), time.Now()) {
			utils.RespondError(c, http.StatusTooManyRequests, "Muitas requisições, tente novamente em instantes")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := now.Add(-rl.interval)
	if now.Sub(rl.lastSweep) >= rl.interval {
		for k, times := range rl.ips {
			if len(times) == 0 || !times[len(times)-1].After(cutoff) {
				delete(rl.ips, k)
			}
		}
		rl.lastSweep = now
	}

	valid := rl.ips[ip][:0]
	for _, t := range rl.ips[ip] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}

	if len(valid) >= rl.rate {
		rl.ips[ip] = valid
		return false
	}
	rl.ips[ip] = append(valid, now)
	return true
}

// LoginRateLimiter throttles login attempts per client IP with a token
// bucket. Rejected attempts are sent back to the login page.
type LoginRateLimiter struct {
	every time.Duration
	burst int

	mu        sync.Mutex
	limiters  map[string]*visitor
	lastSweep time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewLoginRateLimiter(every time.Duration, burst int) *LoginRateLimiter {
	return &LoginRateLimiter{every: every, burst: burst, limiters: make(map[string]*visitor)}
}

// idle is how long a bucket takes to refill completely. A visitor unseen for
// that long is indistinguishable from a new one and can be dropped.
func (l *LoginRateLimiter) idle() time.Duration {
	return l.every * time.Duration(l.burst)
}

func (l *LoginRateLimiter) limiter(ip string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if idle := l.idle(); now.Sub(l.lastSweep) >= idle {
		for k, v := range l.limiters {
			if now.Sub(v.lastSeen) >= idle {
				delete(l.limiters, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.limiters[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Every(l.every), l.burst)}
		l.limiters[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (l *LoginRateLimiter) Handler(onLimited gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.limiter(c.ClientIP(), time.Now()).Allow() {
			utils.InfoLogger.Printf("Login throttled for %s", c.ClientIP())
			onLimited(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
