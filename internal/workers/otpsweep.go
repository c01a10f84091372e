package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

// otpSweepWorker evicts expired one-time codes and reset tokens so a stale
// entry never lingers in memory longer than its TTL plus one sweep interval.
type otpSweepWorker struct {
	ctx      context.Context
	sweeper  Sweeper
	interval time.Duration
	logger   *logger.Logger
}

// NewOTPSweepWorker returns a worker that sweeps expired reset state every
// interval until ctx is cancelled.
func NewOTPSweepWorker(ctx context.Context, sweeper Sweeper, interval time.Duration, logger *logger.Logger) Worker {
	return &otpSweepWorker{
		ctx:      ctx,
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (w *otpSweepWorker) Run() {
	if w.interval <= 0 {
		w.logger.Warn().Msg("otp sweep worker disabled: non-positive interval")
		return
	}

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Debug().Dur("interval", w.interval).Msg("otp sweep worker started")
		for {
			select {
			case <-w.ctx.Done():
				w.logger.Debug().Msg("otp sweep worker stopped")
				return
			case <-ticker.C:
				if removed := w.sweeper.Sweep(); removed > 0 {
					w.logger.Debug().Int("removed", removed).Msg("expired reset entries swept")
				}
			}
		}
	}()
}
