package middlewares

import (
	"errors"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter is a per IP token bucket that blocks a client for blockTime once its bucket runs
// dry. It sits in front of the login endpoint.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func NewRateLimiter(requests int, per, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		log:       logger,
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		if !r.allow(ip) {
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(errors.New("login attempts exceeded for "+ip)))
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if blockedUntil, found := r.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return false
		}
		delete(r.blocked, ip)
		delete(r.limiters, ip)
	}

	limiter, exists := r.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(r.per), r.requests)
		r.limiters[ip] = limiter
	}

	if !limiter.AllowN(now, 1) {
		r.blocked[ip] = now.Add(r.blockTime)
		return false
	}
	return true
}
