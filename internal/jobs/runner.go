package jobs

import (
	"context"
	"sync"
	"time"

	"crm_records/pkg/logger"
)

// Job is one periodic unit of work. Run must never panic past its own
// frame and never returns an error: every failure ends up in the job's
// sink instead.
type Job interface {
	Name() string
	Run(ctx context.Context)
}

type entry struct {
	job      Job
	interval time.Duration
}

// Runner drives registered jobs on independent tickers. Jobs may
// overlap with each other and with externally triggered mutations;
// they coordinate only through the store.
type Runner struct {
	entries []entry
	log     logger.Logger
	wg      sync.WaitGroup
}

func NewRunner(log logger.Logger) *Runner {
	return &Runner{log: log}
}

func (r *Runner) Register(job Job, interval time.Duration) {
	r.entries = append(r.entries, entry{job: job, interval: interval})
}

// Start launches one goroutine per job and blocks until ctx is done
// and every in-flight run has finished. Each job runs once at startup,
// then on every tick.
func (r *Runner) Start(ctx context.Context) {
	for _, e := range r.entries {
		r.wg.Add(1)
		go func(e entry) {
			defer r.wg.Done()
			r.runLoop(ctx, e)
		}(e)
	}
	r.wg.Wait()
}

func (r *Runner) runLoop(ctx context.Context, e entry) {
	r.log.Info("job scheduled",
		logger.String("job", e.job.Name()),
		logger.String("interval", e.interval.String()),
	)

	r.runOnce(ctx, e.job)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.runOnce(ctx, e.job)
		}
	}
}

// runOnce contains the outermost job boundary: a panicking job must
// not take down its siblings or the host process.
func (r *Runner) runOnce(ctx context.Context, job Job) {
	defer func() {
		if p := recover(); p != nil {
			r.log.Error("job panicked", logger.String("job", job.Name()), logger.Any("panic", p))
		}
	}()
	job.Run(ctx)
}
