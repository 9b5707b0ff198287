package jobs

import (
	"context"
	"log/slog"
	"time"

	"procurement/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

const (
	DefaultStaleOrderAfter    = 48 * time.Hour
	DefaultStaleOrderSchedule = "0 0 8 * * *"

	// maxReportedOrders bounds how many stale orders are itemized per run.
	maxReportedOrders = 20
)

// StaleOrdersFinder lists pending orders created before a cutoff.
type StaleOrdersFinder interface {
	Handle(ctx context.Context, query queries.ListStaleOrdersQuery) ([]queries.OrderResponse, error)
}

// StalePendingOrdersJob reports pending orders that have waited for an
// approver longer than the configured threshold. It never changes an order.
type StalePendingOrdersJob struct {
	finder   StaleOrdersFinder
	after    time.Duration
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStalePendingOrdersJob creates the job. schedule is a six-field cron
// expression (seconds first).
func NewStalePendingOrdersJob(finder StaleOrdersFinder, after time.Duration, schedule string, logger *slog.Logger) *StalePendingOrdersJob {
	if after <= 0 {
		after = DefaultStaleOrderAfter
	}
	if schedule == "" {
		schedule = DefaultStaleOrderSchedule
	}
	return &StalePendingOrdersJob{
		finder:   finder,
		after:    after,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_pending_orders_job"),
	}
}

// Start schedules the report.
func (j *StalePendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Report(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stale pending orders job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale pending orders job started",
		"schedule", j.schedule, "after", j.after.String())
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *StalePendingOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale pending orders job stopped")
}

// Report runs one pass and returns the number of stale orders found.
func (j *StalePendingOrdersJob) Report(ctx context.Context) (int, error) {
	query, err := queries.NewListStaleOrdersQuery(j.now().Add(-j.after))
	if err != nil {
		return 0, err
	}

	stale, err := j.finder.Handle(ctx, query)
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	j.logger.WarnContext(ctx, "Pending orders are waiting for approval",
		"count", len(stale), "older_than", j.after.String())
	for i, o := range stale {
		if i == maxReportedOrders {
			break
		}
		j.logger.WarnContext(ctx, "Stale pending order",
			"order_id", o.ID.String(),
			"client", o.ClientName,
			"supervisor", o.SupervisorName,
			"created_at", o.CreatedAt,
		)
	}
	return len(stale), nil
}
