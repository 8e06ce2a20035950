package cron

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Cleaner deletes audit entries older than the given number of days.
type Cleaner interface {
	CleanupOldLogs(ctx context.Context, days int) (int64, error)
}

// StartCleanupTask runs the audit retention cleanup once immediately and
// then every interval until ctx is cancelled. The returned channel is closed
// when the task has stopped.
func StartCleanupTask(ctx context.Context, cleaner Cleaner, retentionDays int, interval time.Duration, logger *zap.Logger) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		logger.Info("starting background cleanup task", zap.Int("retention_days", retentionDays))

		run := func() {
			deleted, err := cleaner.CleanupOldLogs(ctx, retentionDays)
			if err != nil {
				logger.Error("failed to cleanup old audit logs", zap.Error(err))
				return
			}
			logger.Info("audit log cleanup completed", zap.Int64("deleted", deleted))
		}

		run()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				run()
			}
		}
	}()
	return done
}
