package jobs

import (
	"context"
	"fmt"
	"time"

	"crm_records/internal/application/report"
	"crm_records/pkg/logger"
)

const reportTimeFormat = "2006-01-02 15:04:05"

// ReportGenerator is the slice of the report service the job needs.
type ReportGenerator interface {
	Generate(ctx context.Context) (report.Summary, error)
}

// WeeklyReport aggregates customer count, order count and total
// revenue into one log line per run.
type WeeklyReport struct {
	reports ReportGenerator
	sink    Sink
	log     logger.Logger
}

func NewWeeklyReport(reports ReportGenerator, sink Sink, log logger.Logger) *WeeklyReport {
	return &WeeklyReport{
		reports: reports,
		sink:    sink,
		log:     log,
	}
}

func (j *WeeklyReport) Name() string { return "weekly-report" }

func (j *WeeklyReport) Run(ctx context.Context) {
	now := time.Now().Format(reportTimeFormat)

	summary, err := j.reports.Generate(ctx)
	var line string
	if err != nil {
		line = fmt.Sprintf("%s - Report generation failed: %v", now, err)
	} else {
		line = fmt.Sprintf("%s - Report: %d customers, %d orders, %s revenue",
			now,
			summary.TotalCustomers,
			summary.TotalOrders,
			summary.TotalRevenue.String(),
		)
	}

	if err := j.sink.Append(line); err != nil {
		j.log.Error("append report line", logger.Error(err))
	}
}
