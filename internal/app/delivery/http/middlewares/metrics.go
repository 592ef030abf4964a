package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Metrics records request count and latency labelled by the chi route pattern, so
// /patients/7 and /patients/8 land in the same series.
func (m *Middlewares) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.Collector == nil {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		endpoint := "unmatched"
		if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
			if pattern := routeCtx.RoutePattern(); pattern != "" {
				endpoint = pattern
			}
		}
		m.Collector.RecordHTTPRequest(r.Method, endpoint, rec.statusCode, time.Since(start))
	})
}
