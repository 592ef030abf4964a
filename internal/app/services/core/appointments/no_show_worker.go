package appointments

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const noShowLeaderTTL = 2 * time.Minute

// NoShowWorker periodically moves appointments whose start has passed by more than the
// configured grace period to No Show. Only the instance holding the leader lock does the sweep.
type NoShowWorker struct {
	log          *zap.Logger
	cfg          *config.InternalConfig
	locker       contracts.LockerService
	appointments contracts.AppointmentUsecase
	cron         *cron.Cron
	runCtx       context.Context
	cancel       context.CancelFunc
	now          func() time.Time
}

func NewNoShowWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, appointmentUsecase contracts.AppointmentUsecase) *NoShowWorker {
	return &NoShowWorker{
		log:          log,
		cfg:          cfg,
		locker:       lockerSvc,
		appointments: appointmentUsecase,
		now:          time.Now,
	}
}

func (w *NoShowWorker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Worker.NoShowCronSpec
	if _, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) }); err != nil {
		w.log.Warn("appointments.NoShowWorker invalid cron spec, falling back to @hourly",
			zap.String(constvars.LoggingCronSpecKey, spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc("@hourly", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c

	w.log.Info("appointments.NoShowWorker started",
		zap.String(constvars.LoggingCronSpecKey, spec),
	)
}

// Stop waits for an in-flight sweep to return.
func (w *NoShowWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *NoShowWorker) runOnce(ctx context.Context) {
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyNoShowWorkerLeader, noShowLeaderTTL)
	if err != nil {
		w.log.Warn("appointments.NoShowWorker leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("appointments.NoShowWorker leader lock held by another instance")
		return
	}
	defer func() {
		if err := w.locker.Unlock(ctx, constvars.RedisKeyNoShowWorkerLeader, token); err != nil {
			w.log.Warn("appointments.NoShowWorker failed to release leader lock", zap.Error(err))
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(noShowLeaderTTL / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(refreshCtx, constvars.RedisKeyNoShowWorkerLeader, token, noShowLeaderTTL); err != nil {
					w.log.Warn("appointments.NoShowWorker failed to refresh leader lock", zap.Error(err))
				}
			}
		}
	}()

	cutoff := w.now().Add(-time.Duration(w.cfg.Worker.NoShowGraceMinutes) * time.Minute)
	count, err := w.appointments.MarkNoShows(ctx, cutoff)
	if err != nil {
		w.log.Error("appointments.NoShowWorker sweep failed",
			zap.Time(constvars.LoggingCutoffKey, cutoff),
			zap.Error(err),
		)
		return
	}

	w.log.Info("appointments.NoShowWorker sweep finished",
		zap.Time(constvars.LoggingCutoffKey, cutoff),
		zap.Int(constvars.LoggingCountKey, count),
	)
}
