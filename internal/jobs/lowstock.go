package jobs

import (
	"context"
	"fmt"
	"time"

	productapp "crm_records/internal/application/product"
	"crm_records/pkg/logger"
)

const lowStockTimeFormat = "2006-01-02 15:04:05"

// Restocker is the slice of the product service the job needs.
type Restocker interface {
	RestockBelowThreshold(ctx context.Context, threshold, increment int) ([]productapp.Restocked, error)
}

// LowStock tops up every product under the configured threshold and
// logs each restocked product with its new level.
type LowStock struct {
	restocker Restocker
	threshold int
	increment int
	sink      Sink
	log       logger.Logger
}

func NewLowStock(restocker Restocker, threshold, increment int, sink Sink, log logger.Logger) *LowStock {
	return &LowStock{
		restocker: restocker,
		threshold: threshold,
		increment: increment,
		sink:      sink,
		log:       log,
	}
}

func (j *LowStock) Name() string { return "low-stock-remediation" }

func (j *LowStock) Run(ctx context.Context) {
	now := time.Now().Format(lowStockTimeFormat)

	restocked, err := j.restocker.RestockBelowThreshold(ctx, j.threshold, j.increment)
	if err != nil {
		j.append(fmt.Sprintf("%s - Low stock update failed: %v", now, err))
		return
	}

	if len(restocked) == 0 {
		j.append(fmt.Sprintf("%s - no low-stock products found", now))
		return
	}

	for _, p := range restocked {
		j.append(fmt.Sprintf("%s - Restocked %s to %d units", now, p.Name, p.NewStock))
	}
	j.append(fmt.Sprintf("%s - Restocked %d products", now, len(restocked)))
}

func (j *LowStock) append(line string) {
	if err := j.sink.Append(line); err != nil {
		j.log.Error("append low-stock line", logger.Error(err))
	}
}
