package report

import (
	"time"

	"go.uber.org/zap"
)

// Time starts a timer for op. The returned func logs op, its duration and
// the error behind errp (when non-nil) at info level; failures log at error.
//
//	defer report.Time(log, "solve")(&err)
func Time(logger *zap.Logger, op string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)
		if errp != nil && *errp != nil {
			logger.Error("operation failed", zap.String("op", op), zap.Duration("dur", dur), zap.Error(*errp))
			return
		}
		logger.Info("operation finished", zap.String("op", op), zap.Duration("dur", dur))
	}
}
