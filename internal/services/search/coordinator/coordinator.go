package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/Pomi44/OIB/internal/services/search"
	"github.com/Pomi44/OIB/internal/services/search/digest"
	"github.com/Pomi44/OIB/internal/services/search/progress"
	"github.com/Pomi44/OIB/internal/services/search/worker"
	"github.com/Pomi44/OIB/pkg"
	"github.com/google/uuid"
)

type Config struct {
	ProgressPeriod time.Duration `yaml:"progress_period"`
}

// Coordinator runs one keyspace search across parallel workers and returns
// the first match any of them reports.
type Coordinator struct {
	alg      digest.Algorithm
	period   time.Duration
	reporter progress.Reporter
}

func New(cfg *Config, alg digest.Algorithm, reporter progress.Reporter) *Coordinator {
	if cfg == nil {
		cfg = &Config{}
	}

	return &Coordinator{
		alg:      alg,
		period:   cfg.ProgressPeriod,
		reporter: reporter,
	}
}

type outcome struct {
	worker int
	result *search.Result
	err    error
}

// Search splits the keyspace of spec into workers ranges and scans them concurrently.
// The first match cancels the remaining workers; all of them are joined before Search returns.
// A failing worker fails the whole search, since its range would otherwise go unchecked.
// If ctx ends before the keyspace is exhausted, the returned error wraps ctx.Err().
func (c *Coordinator) Search(ctx context.Context, spec *search.Spec, workers int) (*search.Result, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: worker count must be at least 1, got %d", search.ErrConfiguration, workers)
	}

	total, err := spec.Total()
	if err != nil {
		return nil, err
	}

	if err := digest.CheckTarget(c.alg, spec.TargetDigest); err != nil {
		return nil, err
	}

	ranges, err := pkg.SplitRange(total, workers)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", search.ErrConfiguration, err)
	}

	taskID := uuid.New()
	logger := slog.With(slog.String("task_id", taskID.String()))
	logger.Info("search started",
		slog.String("prefix", spec.Prefix),
		slog.String("suffix", spec.Suffix),
		slog.Int("unknown_digits", spec.UnknownDigits),
		slog.Uint64("total", total),
		slog.Int("workers", workers),
		slog.String("algorithm", c.alg.Name),
	)

	token := &worker.Token{}
	counters := progress.NewCounters(workers)

	stop := context.AfterFunc(ctx, func() {
		token.Cancel()
	})
	defer stop()
	if ctx.Err() != nil {
		token.Cancel()
	}

	outcomes := make(chan outcome, workers)
	var wg sync.WaitGroup
	for i, r := range ranges {
		i, r := i, r
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes <- c.run(i, spec, r, token, counters[i])
		}()
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	watchCtx, stopWatch := context.WithCancel(ctx)
	watchDone := make(chan struct{})
	go func() {
		defer close(watchDone)
		progress.Watch(watchCtx, c.period, func() *search.TaskProgress {
			return &search.TaskProgress{
				TaskID:          taskID,
				Status:          search.StatusInProgress,
				IterationsDone:  progress.Total(counters...),
				TotalIterations: total,
			}
		}, c.reporter)
	}()

	var found *search.Result
	var fault error

	for o := range outcomes {
		switch {
		case o.err != nil:
			if fault == nil {
				fault = o.err
			}
			token.Cancel()
		case o.result.Found():
			if found != nil {
				logger.Debug("dropping concurrent match",
					slog.Int("worker", o.worker),
					slog.String("candidate", o.result.Candidate),
				)
				continue
			}
			found = o.result
			token.Cancel()
			logger.Info("match found, cancelling workers", slog.Int("worker", o.worker))
		}
	}

	stopWatch()
	<-watchDone

	examined := progress.Total(counters...)

	if fault != nil {
		logger.Error("search failed", slog.Uint64("examined", examined), slog.Any("error", fault))
		return nil, fault
	}

	if found != nil {
		found.TaskID = taskID
		found.Examined = examined
		logger.Info("search finished",
			slog.String("status", string(found.Status)),
			slog.Uint64("examined", examined),
		)
		return found, nil
	}

	if examined < total && ctx.Err() != nil {
		logger.Warn("search interrupted",
			slog.Uint64("examined", examined),
			slog.Uint64("total", total),
			slog.Any("error", ctx.Err()),
		)
		return nil, &search.InterruptedError{Examined: examined, Total: total, Err: ctx.Err()}
	}

	logger.Info("search finished",
		slog.String("status", string(search.StatusNotFound)),
		slog.Uint64("examined", examined),
	)

	return &search.Result{
		TaskID:   taskID,
		Status:   search.StatusNotFound,
		Examined: examined,
	}, nil
}

func (c *Coordinator) run(i int, spec *search.Spec, r pkg.Range, token *worker.Token, counter *progress.Counter) (o outcome) {
	defer func() {
		if err := recover(); err != nil {
			slog.Error("search worker panicked",
				slog.Int("worker", i),
				slog.Any("error", err),
				slog.String("stacktrace", string(debug.Stack())),
			)
			o = outcome{worker: i, err: fmt.Errorf("%w: worker %d panicked: %v", search.ErrWorkerFault, i, err)}
		}
	}()

	result, err := worker.Scan(spec, c.alg, r, token, counter)
	if err != nil {
		return outcome{worker: i, err: fmt.Errorf("%w: worker %d: %w", search.ErrWorkerFault, i, err)}
	}

	return outcome{worker: i, result: result}
}
