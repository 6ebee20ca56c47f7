package jobs

import (
	"context"
	"fmt"
	"time"

	"siparisqr/internal/core/application/usecases/queries"
	"siparisqr/internal/core/domain/model/order"
	"siparisqr/internal/core/ports"
	"siparisqr/internal/pkg/errs"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StaleOrderFinder returns PENDING orders older than the query threshold.
type StaleOrderFinder interface {
	Handle(ctx context.Context, query queries.GetStaleOrdersQuery) ([]*order.Order, error)
}

// StaleOrderJob reports orders that have waited in PENDING longer than olderThan.
type StaleOrderJob struct {
	finder    StaleOrderFinder
	notifier  ports.StaleOrderNotifier
	olderThan time.Duration
	schedule  string
	timeout   time.Duration
	cron      *cron.Cron
	logger    *zap.Logger
}

func NewStaleOrderJob(
	finder StaleOrderFinder,
	notifier ports.StaleOrderNotifier,
	olderThan time.Duration,
	schedule string,
	logger *zap.Logger,
) (*StaleOrderJob, error) {
	if finder == nil {
		return nil, errs.NewValueIsRequiredError("finder")
	}
	if notifier == nil {
		return nil, errs.NewValueIsRequiredError("notifier")
	}
	if olderThan <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("olderThan", fmt.Errorf("must be positive, got %s", olderThan))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, err := cron.NewParser(cronFields).Parse(schedule); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("schedule", err)
	}

	return &StaleOrderJob{
		finder:    finder,
		notifier:  notifier,
		olderThan: olderThan,
		schedule:  schedule,
		timeout:   30 * time.Second,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With(zap.String("component", "stale_order_job")),
	}, nil
}

// Start schedules the job.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()

		if err := j.RunOnce(ctx); err != nil {
			j.logger.Error("Stale order check failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Stale order job started",
		zap.String("schedule", j.schedule), zap.Duration("olderThan", j.olderThan))
	return nil
}

// Stop waits for a running check to finish.
func (j *StaleOrderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Stale order job stopped")
}

// RunOnce performs a single check. Nothing is sent when no order is stale.
func (j *StaleOrderJob) RunOnce(ctx context.Context) error {
	query, err := queries.NewGetStaleOrdersQuery(j.olderThan)
	if err != nil {
		return err
	}

	stale, err := j.finder.Handle(ctx, query)
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}
	return j.notifier.NotifyStaleOrders(ctx, stale)
}

const cronFields = cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor
