package middlewares

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// MutationRateLimiter limita por IP los endpoints que escriben
// (crear, editar, acciones del tablero). Las pantallas no pasan por aca.
type MutationRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	r        rate.Limit
	burst    int
}

func NewMutationRateLimiter(perSecond float64, burst int) *MutationRateLimiter {
	return &MutationRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		r:        rate.Limit(perSecond),
		burst:    burst,
	}
}

func (m *MutationRateLimiter) limiterFor(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.limiters[ip]
	if !ok {
		l = rate.NewLimiter(m.r, m.burst)
		m.limiters[ip] = l
	}
	return l
}

func (m *MutationRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiterFor(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Demasiadas solicitudes, espera un momento",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
