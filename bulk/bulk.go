// Package bulk runs the same single-ID API operation over many IDs with
// bounded concurrency and collects per-ID outcomes.
package bulk

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultConcurrency is used when no limit is configured
	DefaultConcurrency = 5
	// MaxConcurrency caps the number of parallel API calls
	MaxConcurrency = 20
)

// Func performs one operation for id.
type Func func(ctx context.Context, id string) error

// Runner fans out operations across IDs.
type Runner struct {
	concurrency int
	logger      zerolog.Logger
}

// NewRunner creates a runner. concurrency is clamped to [1, MaxConcurrency];
// zero selects DefaultConcurrency.
func NewRunner(concurrency int, logger zerolog.Logger) *Runner {
	switch {
	case concurrency == 0:
		concurrency = DefaultConcurrency
	case concurrency < 1:
		concurrency = 1
	case concurrency > MaxConcurrency:
		concurrency = MaxConcurrency
	}
	return &Runner{concurrency: concurrency, logger: logger}
}

// Concurrency returns the effective concurrency limit.
func (r *Runner) Concurrency() int {
	return r.concurrency
}

// Run calls fn for every id. Individual failures do not stop the others;
// they are collected in the result. Duplicate IDs run once.
func (r *Runner) Run(ctx context.Context, ids []string, fn Func) Result {
	unique := dedupe(ids)
	result := Result{Requested: len(unique)}
	if len(unique) == 0 {
		return result
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	// each worker owns one slot, so no locking is needed
	errs := make([]error, len(unique))
	for i, id := range unique {
		i, id := i, id
		g.Go(func() error {
			if err := fn(ctx, id); err != nil {
				r.logger.Warn().Err(err).Str("id", id).Msg("Operation failed")
				errs[i] = err
			}
			return nil
		})
	}
	_ = g.Wait()

	for i, id := range unique {
		if errs[i] != nil {
			result.Failed = append(result.Failed, Failure{ID: id, Err: errs[i]})
			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}

	return result
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// Result contains the outcome of a bulk run.
type Result struct {
	Requested int
	Succeeded []string
	Failed    []Failure
}

// OK reports whether every operation succeeded.
func (r Result) OK() bool {
	return len(r.Failed) == 0
}

// Err joins the failures into one error, or returns nil.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%d of %d operations failed: %w", len(r.Failed), r.Requested, r.Failed[0])
}

// Failure records one failed operation.
type Failure struct {
	ID  string
	Err error
}

// Error implements the error interface
func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.ID, f.Err)
}

// Unwrap returns the underlying error
func (f Failure) Unwrap() error {
	return f.Err
}
