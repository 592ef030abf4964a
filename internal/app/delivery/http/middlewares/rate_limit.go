package middlewares

import (
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// GlobalRateLimit applies app.max_requests per second per client IP to every route.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}

// LoginRateLimiter builds the brute force limiter configured under auth.
func (m *Middlewares) LoginRateLimiter() *RateLimiter {
	auth := m.InternalConfig.Auth
	perRequest := time.Minute
	if auth.LoginRatePerMinute > 0 {
		perRequest = time.Minute / time.Duration(auth.LoginRatePerMinute)
	}
	return NewRateLimiter(auth.LoginBurst, perRequest, time.Duration(auth.LoginBlockTimeInMinute)*time.Minute, m.Log)
}
