package middlewares

import (
	"errors"
	"fmt"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = fmt.Errorf("unknown panic: %v", x)
				}

				m.Log.Error("Middlewares.ErrorHandler recovered from panic",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
					zap.Error(err),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) NotFound(w http.ResponseWriter, r *http.Request) {
	utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerNotFound(nil))
}

func (m *Middlewares) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerMethodNotAllowed(nil))
}
