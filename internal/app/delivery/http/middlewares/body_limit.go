package middlewares

import (
	"hospital-service/internal/pkg/constvars"
	"net/http"
)

// BodyLimit caps the request body at app.request_body_limit_in_megabyte. Reads past the limit
// fail, which the JSON and multipart decoders surface as 400s.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) * constvars.MB
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limit > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
