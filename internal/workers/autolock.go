package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

// autoLockWorker periodically asks the unlock keeper to relock sections that
// sat idle past the session timeout. Without it an unlocked section would only
// relock on the next user interaction.
type autoLockWorker struct {
	ctx      context.Context
	locker   IdleLocker
	interval time.Duration
	logger   *logger.Logger
}

// NewAutoLockWorker returns a worker that enforces the idle timeout every
// interval until ctx is cancelled.
func NewAutoLockWorker(ctx context.Context, locker IdleLocker, interval time.Duration, logger *logger.Logger) Worker {
	return &autoLockWorker{
		ctx:      ctx,
		locker:   locker,
		interval: interval,
		logger:   logger,
	}
}

func (w *autoLockWorker) Run() {
	if w.interval <= 0 {
		w.logger.Warn().Msg("auto-lock worker disabled: non-positive interval")
		return
	}

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Debug().Dur("interval", w.interval).Msg("auto-lock worker started")
		for {
			select {
			case <-w.ctx.Done():
				w.logger.Debug().Msg("auto-lock worker stopped")
				return
			case <-ticker.C:
				w.locker.EnforceIdleTimeout()
			}
		}
	}()
}
