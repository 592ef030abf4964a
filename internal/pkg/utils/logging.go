package utils

import (
	"context"
	"hospital-service/internal/pkg/constvars"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

// LogBusinessEvent emits the audit trail entry for a domain change, e.g. a patient registered
// or a prescription deleted.
func LogBusinessEvent(logger *zap.Logger, event string, requestID string, fields ...zap.Field) {
	logger.With(
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, event),
	).Info("Business event occurred", fields...)
}

var securitySeverityLevels = map[string]zapcore.Level{
	"info":   zap.InfoLevel,
	"medium": zap.WarnLevel,
	"high":   zap.ErrorLevel,
}

// LogSecurityEvent logs authentication and account events at a level derived from severity.
// Unknown severities are logged as warnings.
func LogSecurityEvent(logger *zap.Logger, event string, requestID string, severity string, fields ...zap.Field) {
	level, ok := securitySeverityLevels[severity]
	if !ok {
		level = zap.WarnLevel
	}
	if ce := logger.Check(level, "Security event detected"); ce != nil {
		ce.Write(append([]zap.Field{
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("security_event", event),
			zap.String("severity", severity),
		}, fields...)...)
	}
}
