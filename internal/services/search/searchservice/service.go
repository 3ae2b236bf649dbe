package searchservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/Pomi44/OIB/internal/services/search"
	"github.com/Pomi44/OIB/internal/services/search/notifier"
	"github.com/Pomi44/OIB/pkg/set"
	"github.com/google/uuid"
)

type Searcher interface {
	Search(ctx context.Context, spec *search.Spec, workers int) (*search.Result, error)
}

type searchService struct {
	workers   int
	timeout   time.Duration
	searcher  Searcher
	notifiers []notifier.Notifier
}

var _ search.Service = (*searchService)(nil)

func NewService(config *Config, searcher Searcher, notifiers ...notifier.Notifier) *searchService {
	return &searchService{
		workers:   config.Workers,
		timeout:   config.Timeout,
		searcher:  searcher,
		notifiers: notifiers,
	}
}

// Workers resolves the worker count for a request.
func (s *searchService) Workers(requested int) int {
	if requested > 0 {
		return requested
	}
	if s.workers > 0 {
		return s.workers
	}
	return runtime.NumCPU()
}

func (s *searchService) Find(ctx context.Context, req *search.Request) (*search.Result, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	workers := s.Workers(req.Workers)
	prefixes := set.Unique(req.Prefixes)

	var examined uint64
	for _, prefix := range prefixes {
		slog.Info("searching card number",
			slog.String("prefix", prefix),
			slog.Int("workers", workers),
		)

		result, err := s.searchPrefix(ctx, req.Spec(prefix), workers)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
				var interrupted *search.InterruptedError
				if errors.As(err, &interrupted) {
					examined += interrupted.Examined
				}

				slog.Warn("prefix search timed out, trying next prefix",
					slog.String("prefix", prefix),
					slog.Duration("timeout", s.timeout),
					slog.Any("error", err),
				)
				continue
			}
			return nil, err
		}

		examined += result.Examined
		if result.Found() {
			return result, s.notify(result)
		}
	}

	result := &search.Result{
		TaskID:   uuid.New(),
		Status:   search.StatusNotFound,
		Examined: examined,
	}

	return result, s.notify(result)
}

func (s *searchService) searchPrefix(ctx context.Context, spec *search.Spec, workers int) (*search.Result, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	return s.searcher.Search(ctx, spec, workers)
}

func (s *searchService) notify(result *search.Result) error {
	var errs []error
	for _, n := range s.notifiers {
		if err := n.Notify(result); err != nil {
			slog.Error("notifier failed",
				slog.String("task_id", result.TaskID.String()),
				slog.Any("error", err),
			)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("failed to deliver search result: %w", errors.Join(errs...))
	}

	return nil
}

func validateRequest(req *search.Request) error {
	if len(req.Prefixes) == 0 {
		return fmt.Errorf("%w: at least one prefix is required", search.ErrConfiguration)
	}

	if len(req.TargetDigest) == 0 {
		return fmt.Errorf("%w: target digest is required", search.ErrConfiguration)
	}

	if req.Workers < 0 {
		return fmt.Errorf("%w: worker count must not be negative", search.ErrConfiguration)
	}

	return nil
}
