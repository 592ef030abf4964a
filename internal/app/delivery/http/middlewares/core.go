package middlewares

import (
	"context"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type responseRecorder struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *responseRecorder) Write(body []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(body)
	rec.bytesWritten += n
	return n, err
}

// pollingPaths are polled by orchestrators every few seconds and only logged at debug level.
var pollingPaths = map[string]bool{
	"/healthz": true,
	"/metrics": true,
}

func levelForStatus(path string, statusCode int) zapcore.Level {
	switch {
	case statusCode >= 500:
		return zap.ErrorLevel
	case statusCode >= 400:
		return zap.WarnLevel
	case pollingPaths[path]:
		return zap.DebugLevel
	default:
		return zap.InfoLevel
	}
}

func (m *Middlewares) Logging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := utils.GetRequestID(r.Context())
			isClientRequestID, _ := r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)

			logger.Debug("API request started",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)

			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil && routeCtx.RoutePattern() != "" {
				route = routeCtx.RoutePattern()
			}

			if ce := logger.Check(levelForStatus(r.URL.Path, rec.statusCode), "API request handled"); ce != nil {
				ce.Write(
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Bool("is_client_request_id", isClientRequestID),
					zap.String(constvars.LoggingMethodKey, r.Method),
					zap.String(constvars.LoggingEndpointKey, route),
					zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
					zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
					zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
					zap.Int(constvars.LoggingStatusCodeKey, rec.statusCode),
					zap.Int("response_bytes", rec.bytesWritten),
					zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
				)
			}
		})
	}
}

// RequestIDMiddleware keeps a caller supplied X-Request-ID and mints one otherwise. The id is
// echoed back on the response.
func (m *Middlewares) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		isClientRequestID := requestID != ""
		if !isClientRequestID {
			requestID = utils.GenerateRequestID()
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY, isClientRequestID)
		w.Header().Set(constvars.HeaderXRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
