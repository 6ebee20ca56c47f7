package queries

import (
	"context"
	"errors"
	"time"

	"siparisqr/internal/pkg/errs"
)

// DefaultPollInterval is the poll hint used when none is configured.
const DefaultPollInterval = 5 * time.Second

// OrderSnapshotQueryHandler serves snapshots by delegating to ListOrdersQueryHandler,
// so a snapshot has exactly the filtering and ordering of a list. Delivery is
// pull based; a push implementation can replace the reader behind the list
// handler without changing what a snapshot contains.
type OrderSnapshotQueryHandler struct {
	list         ListOrdersQueryHandler
	pollInterval time.Duration
	now          func() time.Time
}

func NewOrderSnapshotQueryHandler(list ListOrdersQueryHandler, pollInterval time.Duration) (OrderSnapshotQueryHandler, error) {
	if pollInterval < 0 {
		return OrderSnapshotQueryHandler{}, errs.NewValueIsInvalidErrorWithCause("pollInterval",
			errors.New("must not be negative"))
	}
	if pollInterval == 0 {
		pollInterval = DefaultPollInterval
	}
	return OrderSnapshotQueryHandler{list: list, pollInterval: pollInterval, now: time.Now}, nil
}

func (h OrderSnapshotQueryHandler) Handle(ctx context.Context, query OrderSnapshotQuery) (OrderSnapshot, error) {
	if err := query.Validate(); err != nil {
		return OrderSnapshot{}, err
	}

	takenAt := h.now()
	orders, err := h.list.Handle(ctx, query.list)
	if err != nil {
		return OrderSnapshot{}, err
	}
	return OrderSnapshot{Orders: orders, TakenAt: takenAt, PollAfter: h.pollInterval}, nil
}
