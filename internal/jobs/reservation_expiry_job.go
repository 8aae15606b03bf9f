package jobs

import (
	"context"
	"log/slog"
	"time"

	"washcubes/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReservationExpiryJob manages the scheduled cancellation of stale reservations.
// Orders whose drop-off was never confirmed within the TTL are cancelled and
// their compartments released back into the pool.
type ReservationExpiryJob struct {
	handler  commands.ExpireStaleReservationsCommandHandler
	ttl      time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReservationExpiryJob creates a new job for expiring unconfirmed reservations.
// The schedule is a six-field cron expression, the ttl is how long a reservation
// may sit unconfirmed before the sweep cancels it.
func NewReservationExpiryJob(
	handler commands.ExpireStaleReservationsCommandHandler,
	ttl time.Duration,
	schedule string,
	logger *slog.Logger,
) *ReservationExpiryJob {
	return &ReservationExpiryJob{
		handler:  handler,
		ttl:      ttl,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "reservation_expiry_job"),
	}
}

// Start begins the reservation expiry sweep on the configured schedule.
func (j *ReservationExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireStaleReservationsCommand(j.ttl)
		if err != nil {
			j.logger.ErrorContext(ctx, "Reservation expiry job misconfigured", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Reservation expiry job failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale reservations", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reservation expiry job started", "schedule", j.schedule, "ttl", j.ttl)
	return nil
}

// Stop stops the reservation expiry job.
func (j *ReservationExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reservation expiry job stopped")
}
