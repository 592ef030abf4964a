package middlewares

import (
	"context"
	"errors"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token to the Redis backed session and stores it on the
// request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix)
		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		session, err := m.SessionService.GetSession(ctx, sessionID)
		if err != nil {
			m.Log.Warn("Middlewares.Authenticate session lookup failed",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
			if errors.Is(err, context.DeadlineExceeded) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		reqCtx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(reqCtx))
	})
}
