package vfs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// OSFolder is a Folder backed by a directory on the local filesystem.
type OSFolder struct {
	path string
}

// NewOSFolder wraps the directory at path. The directory must exist.
func NewOSFolder(path string) (*OSFolder, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Errorf("opening folder: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("not a directory: %s", path)
	}
	return &OSFolder{path: filepath.Clean(path)}, nil
}

// Name returns the folder's path.
func (f *OSFolder) Name() string {
	return f.path
}

// Path returns the underlying directory path.
func (f *OSFolder) Path() string {
	return f.path
}

// List enumerates direct children. Entries that disappear between the
// directory read and the stat are skipped rather than failing the listing.
func (f *OSFolder) List(ctx context.Context) ([]Entry, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", f.path).Msg("listing folder")

	dirents, err := os.ReadDir(f.path)
	if err != nil {
		return nil, errors.Errorf("listing folder %s: %w", f.path, err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		kind := KindFile
		if d.IsDir() {
			kind = KindDir
		}
		entries = append(entries, Entry{Name: d.Name(), Kind: kind})
	}
	return entries, nil
}

// Open opens a direct child for reading, capturing its size and
// modification time at open.
func (f *OSFolder) Open(ctx context.Context, name string) (File, error) {
	full := filepath.Join(f.path, name)
	info, err := os.Stat(full)
	if err != nil {
		return nil, errors.Errorf("opening %s: %w", name, err)
	}
	if info.IsDir() {
		return nil, errors.Errorf("not a file: %s", name)
	}
	return &osFile{path: full, name: name, size: info.Size(), modTime: info.ModTime()}, nil
}

// Create opens a direct child for writing with create-or-overwrite
// semantics.
func (f *OSFolder) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	full := filepath.Join(f.path, name)
	file, err := os.Create(full)
	if err != nil {
		return nil, errors.Errorf("creating %s: %w", name, err)
	}
	return file, nil
}

// RequestWrite probes the folder for writability by creating and removing
// a scratch file.
func (f *OSFolder) RequestWrite(ctx context.Context) error {
	probe, err := os.CreateTemp(f.path, ".write-probe-*")
	if err != nil {
		return errors.Errorf("folder %s is not writable: %w", f.path, err)
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)
	return nil
}

// osFile implements File for a path on the local filesystem.
type osFile struct {
	path    string
	name    string
	size    int64
	modTime time.Time
}

func (f *osFile) Name() string       { return f.name }
func (f *osFile) Size() int64        { return f.size }
func (f *osFile) ModTime() time.Time { return f.modTime }

func (f *osFile) ReadAll(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", f.name, err)
	}
	return data, nil
}
