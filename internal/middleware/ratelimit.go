package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/super-app/pkg/errorspkg"
	"github.com/go-petr/super-app/pkg/web"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits requests per client IP with a token bucket.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
	now      func() time.Time
}

// NewRateLimiter returns a limiter allowing rps requests per second with the given burst.
//
// A non-positive rps disables limiting. A burst below 1 is raised to 1.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}

	if burst < 1 {
		burst = 1
	}

	return &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     limit,
		burst:    burst,
		now:      time.Now,
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[key] = v
	}

	v.lastSeen = rl.now()

	return v.limiter
}

// Handler returns the rate limiting gin middleware.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(gctx *gin.Context) {
		key := gctx.ClientIP()

		if !rl.limiter(key).Allow() {
			zerolog.Ctx(gctx.Request.Context()).Warn().
				Str("client_ip", key).
				Str("path", gctx.Request.URL.Path).
				Msg("rate limit exceeded")
			gctx.AbortWithStatusJSON(http.StatusTooManyRequests, web.Error(errorspkg.ErrTooManyRequests))

			return
		}

		gctx.Next()
	}
}

// Cleanup forgets clients not seen for longer than idle and returns how many were removed.
func (rl *RateLimiter) Cleanup(idle time.Duration) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	cutoff := rl.now().Add(-idle)

	for key, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, key)
			removed++
		}
	}

	return removed
}

// Len returns the number of tracked clients.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return len(rl.visitors)
}
