package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStaleOrdersFinder struct {
	mock.Mock
}

func (m *MockStaleOrdersFinder) Handle(ctx context.Context, query queries.ListStaleOrdersQuery) ([]queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderResponse), args.Error(1)
}

func cutoffAround(expected time.Time) any {
	return mock.MatchedBy(func(q queries.ListStaleOrdersQuery) bool {
		diff := q.CreatedBefore().Sub(expected)
		return diff > -time.Minute && diff < time.Minute
	})
}

func TestStalePendingOrdersJob_Report(t *testing.T) {
	t.Run("should log every stale order", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		finder := &MockStaleOrdersFinder{}
		finder.On("Handle", mock.Anything, cutoffAround(time.Now().Add(-72*time.Hour))).Return([]queries.OrderResponse{
			{ID: kernel.MustIDFromString("o1"), ClientName: "Setor A", SupervisorName: "Maria", Status: order.Pending},
			{ID: kernel.MustIDFromString("o2"), ClientName: "Setor B", SupervisorName: "Maria", Status: order.Pending},
		}, nil)
		job := jobs.NewStalePendingOrdersJob(finder, 72*time.Hour, "", logger)

		count, err := job.Report(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Contains(t, buf.String(), "order_id=o1")
		assert.Contains(t, buf.String(), "client=\"Setor B\"")
		assert.Contains(t, buf.String(), "component=stale_pending_orders_job")
		finder.AssertExpectations(t)
	})

	t.Run("should stay quiet when nothing is stale", func(t *testing.T) {
		var buf bytes.Buffer
		finder := &MockStaleOrdersFinder{}
		finder.On("Handle", mock.Anything, cutoffAround(time.Now().Add(-jobs.DefaultStaleOrderAfter))).
			Return([]queries.OrderResponse{}, nil)
		job := jobs.NewStalePendingOrdersJob(finder, 0, "", slog.New(slog.NewTextHandler(&buf, nil)))

		count, err := job.Report(context.Background())

		require.NoError(t, err)
		assert.Zero(t, count)
		assert.NotContains(t, buf.String(), "Stale pending order")
	})

	t.Run("should return finder errors", func(t *testing.T) {
		finder := &MockStaleOrdersFinder{}
		finder.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
		job := jobs.NewStalePendingOrdersJob(finder, time.Hour, "", slog.Default())

		_, err := job.Report(context.Background())

		require.EqualError(t, err, "db down")
	})
}

func TestStalePendingOrdersJob_StartStop(t *testing.T) {
	t.Run("should reject an invalid schedule", func(t *testing.T) {
		job := jobs.NewStalePendingOrdersJob(&MockStaleOrdersFinder{}, time.Hour, "every monday", slog.Default())

		require.Error(t, job.Start())
	})

	t.Run("should run on schedule until stopped", func(t *testing.T) {
		finder := &MockStaleOrdersFinder{}
		ran := make(chan struct{}, 10)
		finder.On("Handle", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { ran <- struct{}{} }).
			Return([]queries.OrderResponse{}, nil)
		manager := jobs.NewJobManager(finder, jobs.Settings{
			StaleOrderAfter:    time.Hour,
			StaleOrderSchedule: "* * * * * *",
		}, slog.Default())

		require.NoError(t, manager.StartAll())
		select {
		case <-ran:
		case <-time.After(3 * time.Second):
			t.Fatal("job did not run")
		}
		manager.StopAll()
	})
}
