package jobs

import (
	"context"
	"fmt"
	"time"

	"crm_records/internal/domain/repository"
	"crm_records/pkg/logger"
)

const reminderTimeFormat = "2006-01-02 15:04:05"

// PendingLister is the slice of the order service the job needs.
type PendingLister interface {
	PendingSince(ctx context.Context, since time.Time) ([]repository.Reminder, error)
}

// ReminderScan logs one line per pending order placed inside the
// reminder window. An empty result produces no lines at all.
type ReminderScan struct {
	orders PendingLister
	window time.Duration
	sink   Sink
	log    logger.Logger
}

func NewReminderScan(orders PendingLister, window time.Duration, sink Sink, log logger.Logger) *ReminderScan {
	return &ReminderScan{
		orders: orders,
		window: window,
		sink:   sink,
		log:    log,
	}
}

func (j *ReminderScan) Name() string { return "order-reminders" }

func (j *ReminderScan) Run(ctx context.Context) {
	now := time.Now().Format(reminderTimeFormat)
	since := time.Now().Add(-j.window)

	reminders, err := j.orders.PendingSince(ctx, since)
	if err != nil {
		j.append(fmt.Sprintf("[%s] Reminder scan failed: %v", now, err))
		return
	}

	for _, r := range reminders {
		j.append(fmt.Sprintf("[%s] Order ID: %s, Email: %s", now, r.OrderID, r.CustomerEmail))
	}
}

func (j *ReminderScan) append(line string) {
	if err := j.sink.Append(line); err != nil {
		j.log.Error("append reminder line", logger.Error(err))
	}
}
