package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 Runner executes operations
type Runner struct {
	logger *zerolog.Logger
	async  bool
}

// NewRunner creates a new runner.
func NewRunner(logger *zerolog.Logger, async bool) *Runner {
	return &Runner{
		logger: logger,
		async:  async,
	}
}

// Run executes an operation.
func (r *Runner) Run(ctx context.Context, op Operation) error {
	r.logger.Debug().Str("operation", op.Name()).Bool("async", r.async).Msg("running operation")
	if r.async {
		return r.runAsync(ctx, op)
	}
	return r.runSync(ctx, op)
}

// runSync runs an operation synchronously.
func (r *Runner) runSync(ctx context.Context, op Operation) error {
	return op.Execute(ctx)
}

// runAsync runs an operation in a goroutine, honoring context
// cancellation.
func (r *Runner) runAsync(ctx context.Context, op Operation) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := op.Execute(ctx); err != nil {
			return errors.Errorf("executing %s: %w", op.Name(), err)
		}
		return nil
	})
	return g.Wait()
}
