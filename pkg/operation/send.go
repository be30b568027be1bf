package operation

import (
	"context"

	"github.com/LuanGibin/XlsxSender/pkg/scanner"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 SendResult summarizes one send batch
type SendResult struct {
	Copied int // files copied to the destination
	Failed int // files whose copy failed
	// NotPersisted is set when the batch's status save failed. Counts are
	// still valid; the files will reappear on the next scan.
	NotPersisted bool
}

// 📦 SendOperation copies the selected files to the destination folder and
// marks them sent
type SendOperation struct {
	BaseOperation
	result SendResult
}

// NewSendOperation creates a send operation.
func NewSendOperation(opts Options) *SendOperation {
	return &SendOperation{BaseOperation: NewBaseOperation(opts)}
}

// Name identifies the operation.
func (op *SendOperation) Name() string { return "send" }

// Result returns the batch summary. Valid after Execute, including when
// Execute returned a status.ErrNotPersisted error.
func (op *SendOperation) Result() SendResult { return op.result }

// Execute copies each selected entry from the source folder into the
// destination folder under the same name, with create-or-overwrite
// semantics. Files are processed independently: one failed copy never
// stops the rest. Afterwards every attempted entry is marked sent in a
// single status save, deliberately including entries whose copy failed,
// matching the established behavior callers rely on.
//
// Write access to the destination is requested up front; a denial aborts
// the whole operation before any copy is attempted.
func (op *SendOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	if err := op.validate(); err != nil {
		return err
	}
	if op.Dest == nil {
		return errors.New("destination folder is required")
	}
	if len(op.Entries) == 0 {
		return nil
	}

	if err := op.Dest.RequestWrite(ctx); err != nil {
		return errors.Errorf("requesting write access to destination: %w", err)
	}

	for _, entry := range op.Entries {
		if err := op.copyEntry(ctx, entry); err != nil {
			logger.Warn().Str("name", entry.Name).Err(err).Msg("copy failed")
			op.result.Failed++
			op.observe(entry, err)
			continue
		}
		logger.Info().Str("name", entry.Name).Int64("size", entry.Size).Msg("copied")
		op.result.Copied++
		op.observe(entry, nil)
	}

	m := op.Store.Load(ctx, op.Source)
	for _, entry := range op.Entries {
		m.MarkSent(entry.Key())
	}
	if err := op.Store.Save(ctx, op.Source, m); err != nil {
		op.result.NotPersisted = true
		return errors.Errorf("send finished (%d copied, %d failed): %w", op.result.Copied, op.result.Failed, err)
	}
	return nil
}

// copyEntry transfers one file's bytes into the destination folder under
// the same name.
func (op *SendOperation) copyEntry(ctx context.Context, entry scanner.FileEntry) error {
	data, err := entry.File.ReadAll(ctx)
	if err != nil {
		return errors.Errorf("reading source file: %w", err)
	}

	w, err := op.Dest.Create(ctx, entry.Name)
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return errors.Errorf("writing destination file: %w", err)
	}
	if err := w.Close(); err != nil {
		return errors.Errorf("closing destination file: %w", err)
	}
	return nil
}
