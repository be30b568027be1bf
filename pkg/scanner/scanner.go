// Package scanner enumerates a source folder and returns the spreadsheet
// files that have not been handled yet, newest first.
package scanner

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/LuanGibin/XlsxSender/pkg/status"
	"github.com/LuanGibin/XlsxSender/pkg/vfs"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultExtension is the file extension candidates must carry.
const DefaultExtension = ".xlsx"

// 📄 FileEntry is one unhandled candidate file discovered by a scan
type FileEntry struct {
	Name           string    // unique within one scan, folder is flat
	Size           int64     // bytes
	ModifiedAt     time.Time // last modification time
	LastModifiedBy string    // best-effort document author, empty if unavailable
	File           vfs.File  // content handle for a later transfer, not serialized
}

// Key returns the entry's identity key for status tracking.
func (e FileEntry) Key() string {
	return status.Key(e.Name, e.Size, e.ModifiedAt.UnixMilli())
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithExtension overrides the target extension. Matching is a
// case-insensitive suffix check.
func WithExtension(ext string) Option {
	return func(s *Scanner) {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		s.extension = strings.ToLower(ext)
	}
}

// WithIgnoreGlobs excludes files whose name matches any of the given
// doublestar patterns.
func WithIgnoreGlobs(globs []string) Option {
	return func(s *Scanner) {
		s.ignoreGlobs = globs
	}
}

// 🔍 Scanner discovers unhandled candidate files in a folder
type Scanner struct {
	store       *status.Store
	extension   string
	ignoreGlobs []string
}

// New creates a scanner that consults store for already-handled files.
func New(store *status.Store, opts ...Option) *Scanner {
	s := &Scanner{
		store:     store,
		extension: DefaultExtension,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan enumerates the direct children of folder and returns the files
// that match the target extension and are not recorded as handled,
// sorted by modification time descending. A failing status load degrades
// to an empty map; a failing folder enumeration fails the whole scan.
func (s *Scanner) Scan(ctx context.Context, folder vfs.Folder) ([]FileEntry, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("folder", folder.Name()).Msg("scanning folder")

	handled := s.store.Load(ctx, folder)

	listing, err := folder.List(ctx)
	if err != nil {
		return nil, errors.Errorf("scanning folder %s: %w", folder.Name(), err)
	}

	var results []FileEntry
	for _, entry := range listing {
		if entry.Kind != vfs.KindFile {
			continue
		}
		if entry.Name == status.SidecarName {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(entry.Name), s.extension) {
			continue
		}
		if s.ignored(ctx, entry.Name) {
			continue
		}

		file, err := folder.Open(ctx, entry.Name)
		if err != nil {
			// Entry vanished between listing and open.
			logger.Debug().Str("name", entry.Name).Err(err).Msg("skipping unopenable entry")
			continue
		}

		fe := FileEntry{
			Name:       file.Name(),
			Size:       file.Size(),
			ModifiedAt: file.ModTime(),
			File:       file,
		}
		if handled.Handled(fe.Key()) {
			logger.Debug().Str("name", fe.Name).Msg("skipping already handled file")
			continue
		}

		fe.LastModifiedBy = s.extractAuthor(ctx, file)
		results = append(results, fe)
	}

	// Newest first; name ascending on equal mtimes so repeated scans of an
	// unchanged folder produce identical output.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].ModifiedAt.Equal(results[j].ModifiedAt) {
			return results[i].Name < results[j].Name
		}
		return results[i].ModifiedAt.After(results[j].ModifiedAt)
	})

	logger.Debug().Int("candidates", len(results)).Msg("scan complete")
	return results, nil
}

// ignored reports whether name matches one of the configured ignore
// globs.
func (s *Scanner) ignored(ctx context.Context, name string) bool {
	for _, pattern := range s.ignoreGlobs {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Err(err).Msg("error matching ignore pattern")
			continue
		}
		if matched {
			zerolog.Ctx(ctx).Debug().Str("name", name).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}
	return false
}

// extractAuthor reads the file and pulls its last-modified-by field.
// Absence of metadata never fails the scan for that file.
func (s *Scanner) extractAuthor(ctx context.Context, file vfs.File) string {
	data, err := file.ReadAll(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Str("name", file.Name()).Err(err).Msg("cannot read file for metadata")
		return ""
	}
	return lastModifiedBy(data)
}
