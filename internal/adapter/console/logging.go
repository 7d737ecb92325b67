package console

import (
	"time"

	"github.com/api-sage/bank-operations-console/internal/logger"
)

func logOperation(op Operation) {
	logger.Info("console operation received", logger.Fields{
		"operation": string(op),
	})
}

func logOperationDone(op Operation, start time.Time) {
	logger.Info("console operation completed", logger.Fields{
		"operation":  string(op),
		"durationMs": time.Since(start).Milliseconds(),
	})
}

func logOperationError(op Operation, err error) {
	logger.Error("console operation failed", err, logger.Fields{
		"operation": string(op),
	})
}
