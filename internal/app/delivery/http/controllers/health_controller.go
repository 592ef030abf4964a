package controllers

import (
	"context"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Pinger is satisfied by *sql.DB through PingContext and by a small redis adapter.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthController struct {
	Log          *zap.Logger
	Dependencies map[string]Pinger
}

func NewHealthController(logger *zap.Logger, dependencies map[string]Pinger) *HealthController {
	return &HealthController{
		Log:          logger,
		Dependencies: dependencies,
	}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	status := make(map[string]string, len(ctrl.Dependencies))
	for name, dependency := range ctrl.Dependencies {
		if err := dependency.PingContext(ctx); err != nil {
			ctrl.Log.Error("HealthController.Check dependency unreachable",
				zap.String(constvars.LoggingOperationKey, name),
				zap.Error(err),
			)
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.BuildNewCustomError(err, constvars.StatusServiceUnavailable, name+" is unreachable", err.Error()))
			return
		}
		status[name] = "up"
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "service is healthy", status)
}
