package jobs

import (
	"context"
	"time"

	"closetshare-backend/internal/logger"
)

// CompleteEndedRentals moves ACTIVE rentals past their end date to COMPLETED.
// It goes through the lifecycle service so every completion lands with its
// history entry in the same transaction as the record write.
func (jr *JobRunner) CompleteEndedRentals() {
	jr.runWithRecovery("CompleteEndedRentals", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Format(time.RFC3339)

		count, err := jr.rentalSvc.CompleteEndedRentals(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to complete ended rentals", "error", err, "completed_so_far", count)
			return
		}
		logger.Info("Completed ended rentals", "count", count)
	})
}
