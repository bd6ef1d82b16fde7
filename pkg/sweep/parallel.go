package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
)

// Job is one unit of work for Parallel.
type Job[T any] func(ctx context.Context) (T, error)

// Parallel runs every job in its own goroutine, at most GOMAXPROCS at a
// time, and returns the results in job order. A failed job leaves the zero
// value in its slot; all failures are joined into the returned error.
func Parallel[T any](ctx context.Context, jobs []Job[T]) ([]T, error) {
	out := make([]T, len(jobs))
	errs := make([]error, len(jobs))
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))

	var (
		wg   sync.WaitGroup
		done atomic.Int64
	)
	for i, job := range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				errs[i] = fmt.Errorf("job %d: %w", i, ctx.Err())
				return
			}
			defer func() { <-sem }()

			v, err := job(ctx)
			if err != nil {
				errs[i] = fmt.Errorf("job %d: %w", i, err)
			} else {
				out[i] = v
			}
			slog.Info("sweep progress", "done", done.Add(1), "total", len(jobs))
		}()
	}
	wg.Wait()
	return out, errors.Join(errs...)
}

// Serial runs the jobs one after another with the same result and error
// layout as Parallel. It stops at the first cancellation.
func Serial[T any](ctx context.Context, jobs []Job[T]) ([]T, error) {
	out := make([]T, len(jobs))
	var errs []error
	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, fmt.Errorf("job %d: %w", i, err))
			break
		}
		v, err := job(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("job %d: %w", i, err))
			continue
		}
		out[i] = v
		slog.Info("sweep progress", "done", i+1, "total", len(jobs))
	}
	return out, errors.Join(errs...)
}
