// Package operation implements the send and discard operations that
// consume a scan's selection: copying selected files to a destination
// folder, or dismissing them, and recording either outcome in the source
// folder's status sidecar.
package operation

import (
	"context"

	"github.com/LuanGibin/XlsxSender/pkg/scanner"
	"github.com/LuanGibin/XlsxSender/pkg/status"
	"github.com/LuanGibin/XlsxSender/pkg/vfs"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a single executable unit of work
type Operation interface {
	// Name identifies the operation in logs
	Name() string
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains the collaborators and inputs of an operation
type Options struct {
	// Store persists handled status for the source folder
	Store *status.Store
	// Source is the folder the entries were scanned from
	Source vfs.Folder
	// Dest is the destination folder, required for send only
	Dest vfs.Folder
	// Entries is the user's selection
	Entries []scanner.FileEntry
	// Observer, when set, is called once per processed entry with the
	// entry's outcome. A nil error means the entry was handled.
	Observer func(entry scanner.FileEntry, err error)
}

// observe reports one entry outcome if an observer is configured.
func (o Options) observe(entry scanner.FileEntry, err error) {
	if o.Observer != nil {
		o.Observer(entry, err)
	}
}

// validate checks the collaborators every operation needs.
func (o Options) validate() error {
	if o.Store == nil {
		return errors.New("status store is required")
	}
	if o.Source == nil {
		return errors.New("source folder is required")
	}
	return nil
}

// 📋 BaseOperation carries shared options for concrete operations
type BaseOperation struct {
	Options
}

// NewBaseOperation creates a base operation with the given options.
func NewBaseOperation(opts Options) BaseOperation {
	return BaseOperation{Options: opts}
}
