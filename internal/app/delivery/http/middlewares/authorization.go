package middlewares

import (
	"errors"
	"fmt"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authorize is the coarse route gate: the casbin policy decides which roles may call a method
// on a path. Row ownership is checked later by the services. Must run after Authenticate.
func (m *Middlewares) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := utils.GetSessionFromContext(r.Context())
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		path := m.routePath(r.URL.Path)
		allowed, err := m.Enforcer.Enforce(session.Role, r.Method, path)
		if err != nil {
			m.Log.Error("Middlewares.Authorize casbin enforce failed",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err))
			return
		}

		if !allowed {
			m.Log.Warn("Middlewares.Authorize route denied",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingActorRoleKey, session.Role),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(errors.New("route not allowed for role")))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// routePath drops the /{prefix}/{version} part so the policy file stays independent of how the
// API is mounted.
func (m *Middlewares) routePath(path string) string {
	prefix := fmt.Sprintf("/%s/%s", m.InternalConfig.App.EndpointPrefix, m.InternalConfig.App.Version)
	trimmed := strings.TrimPrefix(path, prefix)
	if trimmed == "" {
		return "/"
	}
	return trimmed
}
