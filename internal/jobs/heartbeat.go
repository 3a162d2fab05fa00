package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"crm_records/internal/infrastructure/http/probe"
	"crm_records/pkg/logger"
)

const heartbeatTimeFormat = "02/01/2006-15:04:05"

// Prober is the slice of the probe client the heartbeat needs.
type Prober interface {
	Get(ctx context.Context, url string) (*probe.Response, error)
}

// Heartbeat issues a trivial read-only probe against the service's
// health endpoint and appends one line per run.
type Heartbeat struct {
	prober Prober
	url    string
	sink   Sink
	log    logger.Logger
}

func NewHeartbeat(prober Prober, url string, sink Sink, log logger.Logger) *Heartbeat {
	return &Heartbeat{
		prober: prober,
		url:    url,
		sink:   sink,
		log:    log,
	}
}

func (h *Heartbeat) Name() string { return "heartbeat" }

func (h *Heartbeat) Run(ctx context.Context) {
	now := time.Now().Format(heartbeatTimeFormat)

	resp, err := h.prober.Get(ctx, h.url)
	var line string
	switch {
	case err != nil:
		line = fmt.Sprintf("%s - Heartbeat failed: %v", now, err)
	case resp.StatusCode >= 400:
		line = fmt.Sprintf("%s - Heartbeat failed: http status %d", now, resp.StatusCode)
	default:
		line = fmt.Sprintf("%s - Heartbeat success: %s", now, strings.TrimSpace(string(resp.Body)))
	}

	if err := h.sink.Append(line); err != nil {
		h.log.Error("append heartbeat line", logger.Error(err))
	}
}
