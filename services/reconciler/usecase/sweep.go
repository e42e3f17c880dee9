package usecase

import (
	"context"
	"time"

	"github.com/cryda/reconciler/internal/pkg/logger"
	"github.com/cryda/reconciler/internal/pkg/models"
)

// SweepProvisional publishes an alert for every provisional record older than
// the configured cutoff and returns how many it flagged. It never transitions
// a record: a transaction submitted for it may still confirm later, so the
// decision belongs to an operator, not a timer.
func (uc *reconcilerUC) SweepProvisional(ctx context.Context) (int, error) {
	staleAfter := time.Duration(uc.cfg.Scheduler.StaleAfterMin) * time.Minute
	if staleAfter <= 0 {
		staleAfter = 30 * time.Minute
	}
	cutoff := time.Now().Add(-staleAfter)

	rides, err := uc.repo.ListStaleProvisionalRides(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	bookings, err := uc.repo.ListStaleProvisionalBookings(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	count := 0
	now := time.Now()

	for _, ride := range rides {
		alert := models.ReconcileAlert{
			Kind:      "ride",
			RecordID:  ride.ID,
			Status:    ride.Status,
			CreatedAt: ride.CreatedAt,
			Age:       now.Sub(ride.CreatedAt).Round(time.Second).String(),
		}
		if err := uc.events.PublishReconcileAlert(ctx, alert); err != nil {
			logger.Warn("Failed to publish reconcile alert",
				logger.String("ride_id", ride.ID.String()),
				logger.Err(err))
			continue
		}
		count++
	}

	for _, booking := range bookings {
		alert := models.ReconcileAlert{
			Kind:      "booking",
			RecordID:  booking.ID,
			Status:    booking.Status,
			CreatedAt: booking.CreatedAt,
			Age:       now.Sub(booking.CreatedAt).Round(time.Second).String(),
		}
		if err := uc.events.PublishReconcileAlert(ctx, alert); err != nil {
			logger.Warn("Failed to publish reconcile alert",
				logger.String("booking_id", booking.ID.String()),
				logger.Err(err))
			continue
		}
		count++
	}

	if count > 0 {
		logger.Info("Provisional sweep flagged stale records",
			logger.Int("count", count))
	}

	return count, nil
}
