// Package session holds the in-memory result of the latest scan together
// with the user's current selection. It carries no folder handle: the
// source folder is passed explicitly to scan, send and discard.
package session

import (
	"github.com/LuanGibin/XlsxSender/pkg/scanner"
)

// 🧾 Session tracks scanned entries and the selected subset of them
type Session struct {
	entries  []scanner.FileEntry
	selected map[string]bool // identity key -> selected
}

// New creates an empty session.
func New() *Session {
	return &Session{selected: map[string]bool{}}
}

// SetEntries replaces the scan result and drops any selection that no
// longer refers to a listed entry.
func (s *Session) SetEntries(entries []scanner.FileEntry) {
	s.entries = entries

	known := make(map[string]bool, len(entries))
	for _, e := range entries {
		known[e.Key()] = true
	}
	for key := range s.selected {
		if !known[key] {
			delete(s.selected, key)
		}
	}
}

// Entries returns the current scan result in scan order.
func (s *Session) Entries() []scanner.FileEntry {
	return s.entries
}

// Select marks the entry with the given key selected. Unknown keys are
// ignored.
func (s *Session) Select(key string) {
	if s.has(key) {
		s.selected[key] = true
	}
}

// Deselect removes the entry with the given key from the selection.
func (s *Session) Deselect(key string) {
	delete(s.selected, key)
}

// Toggle flips the selection state of the entry with the given key.
func (s *Session) Toggle(key string) {
	if s.selected[key] {
		s.Deselect(key)
		return
	}
	s.Select(key)
}

// IsSelected reports whether the entry with the given key is selected.
func (s *Session) IsSelected(key string) bool {
	return s.selected[key]
}

// Selected returns the selected entries in scan order.
func (s *Session) Selected() []scanner.FileEntry {
	var out []scanner.FileEntry
	for _, e := range s.entries {
		if s.selected[e.Key()] {
			out = append(out, e)
		}
	}
	return out
}

// Prune removes the given handled entries from the scan result and
// clears the selection, so a re-render shows only unhandled files.
func (s *Session) Prune(handled []scanner.FileEntry) {
	drop := make(map[string]bool, len(handled))
	for _, e := range handled {
		drop[e.Key()] = true
	}

	kept := s.entries[:0]
	for _, e := range s.entries {
		if !drop[e.Key()] {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	s.selected = map[string]bool{}
}

func (s *Session) has(key string) bool {
	for _, e := range s.entries {
		if e.Key() == key {
			return true
		}
	}
	return false
}
