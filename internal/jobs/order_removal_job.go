package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

const (
	removalBatchSize  = 50
	removalRetryDelay = 5 * time.Second
)

// OrderRemover deletes a single order.
type OrderRemover interface {
	Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
}

// OrderRemovalJob deletes orders whose scheduled removal time has passed.
// Runs every second.
type OrderRemovalJob struct {
	queue   ports.RemovalQueue
	remover OrderRemover
	cron    *cron.Cron
	logger  *slog.Logger
	now     func() time.Time
}

// NewOrderRemovalJob creates a job draining queue through remover.
func NewOrderRemovalJob(queue ports.RemovalQueue, remover OrderRemover, logger *slog.Logger) *OrderRemovalJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderRemovalJob{
		queue:   queue,
		remover: remover,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_removal_job"),
		now:     time.Now,
	}
}

// Start begins the order removal job to run every second.
func (j *OrderRemovalJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.RunOnce(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order removal job started (running every second)")
	return nil
}

// Stop stops the job and waits for a running pass to finish.
func (j *OrderRemovalJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order removal job stopped")
}

// RunOnce claims the due orders and deletes them. Orders that are already
// gone are skipped. Orders that could not be deleted are put back with a
// short delay. Returns the number of deleted orders.
func (j *OrderRemovalJob) RunOnce(ctx context.Context) int {
	now := j.now()

	due, err := j.queue.ClaimDue(ctx, now, removalBatchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to claim due removals", "error", err)
	}

	removed := 0
	for _, id := range due {
		cmd, err := commands.NewDeleteOrderCommand(id.String())
		if err != nil {
			j.logger.ErrorContext(ctx, "Dropping invalid removal entry", "order_id", id.String(), "error", err)
			continue
		}

		err = j.remover.Handle(ctx, cmd)
		switch {
		case err == nil:
			removed++
			j.logger.InfoContext(ctx, "Order removed", "order_id", id.String())
		case errors.Is(err, errs.ErrObjectNotFound):
			j.logger.DebugContext(ctx, "Order already removed", "order_id", id.String())
		default:
			j.logger.ErrorContext(ctx, "Order removal failed", "order_id", id.String(), "error", err)
			if err := j.queue.Schedule(ctx, id, now.Add(removalRetryDelay)); err != nil {
				j.logger.ErrorContext(ctx, "Failed to reschedule order removal", "order_id", id.String(), "error", err)
			}
		}
	}

	return removed
}
