package middlewares

import (
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/services/shared/metrics"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	Enforcer       *casbin.Enforcer
	Collector      *metrics.Collector
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	sessionService contracts.SessionService,
	enforcer *casbin.Enforcer,
	collector *metrics.Collector,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionService: sessionService,
		Enforcer:       enforcer,
		Collector:      collector,
		InternalConfig: internalConfig,
	}
}
