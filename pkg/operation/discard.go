package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🗑️ DiscardOperation marks the selected files discarded without copying
// anything
type DiscardOperation struct {
	BaseOperation
}

// NewDiscardOperation creates a discard operation.
func NewDiscardOperation(opts Options) *DiscardOperation {
	return &DiscardOperation{BaseOperation: NewBaseOperation(opts)}
}

// Name identifies the operation.
func (op *DiscardOperation) Name() string { return "discard" }

// Execute marks every selected entry discarded in one status save. It is
// idempotent: discarding an already-discarded entry leaves the map
// unchanged.
func (op *DiscardOperation) Execute(ctx context.Context) error {
	if err := op.validate(); err != nil {
		return err
	}
	if len(op.Entries) == 0 {
		return nil
	}

	m := op.Store.Load(ctx, op.Source)
	for _, entry := range op.Entries {
		m.MarkDiscarded(entry.Key())
		zerolog.Ctx(ctx).Info().Str("name", entry.Name).Msg("discarded")
		op.observe(entry, nil)
	}

	if err := op.Store.Save(ctx, op.Source, m); err != nil {
		return errors.Errorf("discarding %d entries: %w", len(op.Entries), err)
	}
	return nil
}
