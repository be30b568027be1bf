// Package status persists which files have already been handled. The
// authoritative record is a JSON sidecar file stored inside the source
// folder, mapping a file's identity key to "sent" or "discarded".
package status

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/LuanGibin/XlsxSender/pkg/vfs"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// SidecarName is the fixed name of the status file inside the source
// folder.
const SidecarName = "xlsx-sender-status.json"

// ErrNotPersisted reports that a status save failed. The in-memory state
// is still valid; handled files will reappear on the next scan.
var ErrNotPersisted = errors.Base("status not persisted")

// 🏷️ Status is the handled-state of a single file
type Status string

const (
	StatusSent      Status = "sent"      // copied to a destination folder
	StatusDiscarded Status = "discarded" // dismissed without copying
)

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	return s == StatusSent || s == StatusDiscarded
}

// Key derives the identity key for a file from its name, size in bytes
// and modification time in epoch milliseconds. An unchanged file yields
// the same key on every scan; any size or mtime change yields a new key,
// making the file eligible again.
func Key(name string, size int64, modMillis int64) string {
	return fmt.Sprintf("%s|%d|%d", name, size, modMillis)
}

// 🗺️ Map holds the handled-state for a folder, keyed by identity key
type Map map[string]Status

// MarkSent records key as sent, overwriting any prior status.
func (m Map) MarkSent(key string) {
	m[key] = StatusSent
}

// MarkDiscarded records key as discarded, overwriting any prior status.
func (m Map) MarkDiscarded(key string) {
	m[key] = StatusDiscarded
}

// Handled reports whether key has already been sent or discarded.
func (m Map) Handled(key string) bool {
	return m[key].Valid()
}

// 💾 Store reads and writes the status sidecar of a folder
type Store struct{}

// NewStore creates a new store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the sidecar from folder. Any failure (sidecar absent,
// unreadable or malformed) yields an empty map, never an error: an
// unreadable record only means handled files get scanned again, which is
// the accepted degraded behavior. Entries with unknown status values are
// dropped.
func (s *Store) Load(ctx context.Context, folder vfs.Folder) Map {
	logger := zerolog.Ctx(ctx)

	file, err := folder.Open(ctx, SidecarName)
	if err != nil {
		logger.Debug().Str("folder", folder.Name()).Err(err).Msg("no readable status sidecar, starting empty")
		return Map{}
	}

	data, err := file.ReadAll(ctx)
	if err != nil {
		logger.Debug().Str("folder", folder.Name()).Err(err).Msg("reading status sidecar failed, starting empty")
		return Map{}
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warn().Str("folder", folder.Name()).Err(err).Msg("malformed status sidecar, starting empty")
		return Map{}
	}

	m := make(Map, len(raw))
	for key, value := range raw {
		st := Status(value)
		if !st.Valid() {
			logger.Warn().Str("key", key).Str("value", value).Msg("dropping unknown status value")
			continue
		}
		m[key] = st
	}
	return m
}

// Save serializes m and fully overwrites the sidecar in folder, creating
// it if absent. The destination stream is closed on every path. A failed
// save wraps ErrNotPersisted so callers can surface it distinctly from
// operation failure.
func (s *Store) Save(ctx context.Context, folder vfs.Folder, m Map) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("folder", folder.Name()).Int("entries", len(m)).Msg("saving status sidecar")

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Errorf("%w: encoding status map: %w", ErrNotPersisted, err)
	}

	w, err := folder.Create(ctx, SidecarName)
	if err != nil {
		return errors.Errorf("%w: creating sidecar: %w", ErrNotPersisted, err)
	}

	if _, err := w.Write(data); err != nil {
		w.Close()
		return errors.Errorf("%w: writing sidecar: %w", ErrNotPersisted, err)
	}
	if err := w.Close(); err != nil {
		return errors.Errorf("%w: closing sidecar: %w", ErrNotPersisted, err)
	}
	return nil
}
