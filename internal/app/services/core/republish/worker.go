package republish

import (
	"context"
	"time"

	"lisagent-service/internal/app/config"
	"lisagent-service/internal/app/contracts"
	"lisagent-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// Worker periodically re-drives failed uploads. The redis lock keeps the run
// exclusive when several agent instances share one database.
type Worker struct {
	Usecase        contracts.RepublishUsecase
	Locker         contracts.LockerService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewWorker(
	republishUsecase contracts.RepublishUsecase,
	lockerService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *Worker {
	return &Worker{
		Usecase:        republishUsecase,
		Locker:         lockerService,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

// Run ticks until the context is cancelled. Disabled configuration returns
// immediately so the caller can always start the worker unconditionally.
func (w *Worker) Run(ctx context.Context) error {
	if !w.InternalConfig.Republish.Enabled {
		w.Log.Info("republish.Worker disabled, not starting")
		return nil
	}

	interval := time.Duration(w.InternalConfig.Republish.IntervalInMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}

	w.Log.Info("republish.Worker started", zap.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.runOnce(ctx, interval)
		}
	}
}

func (w *Worker) runOnce(ctx context.Context, lockExpiration time.Duration) {
	acquired, lockValue, err := w.Locker.TryLock(ctx, constvars.RedisKeyRepublishLock, lockExpiration)
	if err != nil {
		w.Log.Error("republish.Worker lock error", zap.Error(err))
		return
	}
	if !acquired {
		w.Log.Info("republish.Worker run already in progress elsewhere")
		return
	}
	defer func() {
		if err := w.Locker.Unlock(ctx, constvars.RedisKeyRepublishLock, lockValue); err != nil {
			w.Log.Error("republish.Worker unlock error", zap.Error(err))
		}
	}()

	if _, err := w.Usecase.Republish(ctx); err != nil {
		w.Log.Error("republish.Worker run failed", zap.Error(err))
	}
}
