// Package vfs abstracts the folder capability the rest of the tool works
// against: listing the direct children of a folder, opening a child for
// reading and creating a child for writing. Implementations wrap a real
// directory; tests substitute in-memory fakes.
package vfs

import (
	"context"
	"io"
	"time"

	"gitlab.com/tozd/go/errors"
)

// ErrCancelled is returned by a Picker when the user aborts folder
// selection. Callers treat it as a silent no-op, not an error to display.
var ErrCancelled = errors.Base("folder selection cancelled")

// EntryKind distinguishes files from subfolders in a listing.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDir
)

// String returns a string representation of EntryKind
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	default:
		return "unknown"
	}
}

// 📄 Entry is one direct child of a folder
type Entry struct {
	Name string
	Kind EntryKind
}

// 📖 File is an opaque readable handle to a file's content and metadata
type File interface {
	// Name returns the file's name within its folder
	Name() string
	// Size returns the file's size in bytes
	Size() int64
	// ModTime returns the file's last modification time
	ModTime() time.Time
	// ReadAll reads the complete file content
	ReadAll(ctx context.Context) ([]byte, error)
}

// 📁 Folder is a handle to a directory, enumerating and opening direct
// children only. No implementation recurses into subfolders.
type Folder interface {
	// Name returns a human-readable name for the folder
	Name() string
	// List enumerates the folder's direct children
	List(ctx context.Context) ([]Entry, error)
	// Open opens a named child file for reading
	Open(ctx context.Context, name string) (File, error)
	// Create opens a named child file for writing, creating it if absent
	// and truncating it otherwise
	Create(ctx context.Context, name string) (io.WriteCloser, error)
	// RequestWrite verifies the folder accepts writes. It is a distinct
	// step so callers can abort an operation before touching any file.
	RequestWrite(ctx context.Context) error
}

// 🗳️ Picker prompts the user to choose a folder. A cancelled prompt
// returns ErrCancelled.
type Picker interface {
	PickFolder(ctx context.Context, prompt string) (Folder, error)
}
