package dashboard

import (
	"context"
	"medicenter-service/internal/app/contracts"
	"time"

	"go.uber.org/zap"
)

// StartPoller sweeps the dashboard caches on a fixed interval so the
// poll-backed views stay warm between requests. Returns a stop function
// suitable for Bootstrap.WorkerStop.
func StartPoller(usecase contracts.DashboardUsecase, interval time.Duration, log *zap.Logger) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				ticker.Stop()
				return
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), interval)
				if err := usecase.RefreshCaches(ctx); err != nil {
					log.Warn("dashboard poller sweep failed", zap.Error(err))
				}
				cancel()
			}
		}
	}()

	return func() { close(done) }
}
