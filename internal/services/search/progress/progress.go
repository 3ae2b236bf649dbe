package progress

import (
	"context"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/Pomi44/OIB/internal/services/search"
)

// Counter counts candidates examined by one worker. Only the owning worker writes it,
// anyone may read it at any time.
type Counter struct {
	n atomic.Uint64
	// keeps neighbouring counters off the same cache line
	_ [56]byte
}

func NewCounters(n int) []*Counter {
	counters := make([]*Counter, n)
	for i := range counters {
		counters[i] = &Counter{}
	}
	return counters
}

func (c *Counter) Inc() {
	c.n.Add(1)
}

func (c *Counter) Load() uint64 {
	return c.n.Load()
}

// Total sums the counters. Safe to call while workers are scanning;
// the value may be stale but never decreases between calls.
func Total(counters ...*Counter) uint64 {
	var total uint64
	for _, c := range counters {
		if c != nil {
			total += c.Load()
		}
	}
	return total
}

type Reporter func(p *search.TaskProgress)

// Watch invokes report with a fresh snapshot every period until ctx is done.
func Watch(ctx context.Context, period time.Duration, snapshot func() *search.TaskProgress, report Reporter) {
	if period <= 0 || report == nil {
		return
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			report(snapshot())
		}
	}
}

func LogReporter(logger *slog.Logger) Reporter {
	return func(p *search.TaskProgress) {
		logger.Info("search progress",
			slog.String("task_id", p.TaskID.String()),
			slog.Uint64("iterations_done", p.IterationsDone),
			slog.Uint64("total_iterations", p.TotalIterations),
			slog.String("percent", formatPercent(p.Percent())),
		)
	}
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64) + "%"
}
