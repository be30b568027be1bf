package session

import (
	"testing"
	"time"

	"github.com/LuanGibin/XlsxSender/pkg/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(name string, size int64) scanner.FileEntry {
	return scanner.FileEntry{
		Name:       name,
		Size:       size,
		ModifiedAt: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSelection(t *testing.T) {
	t.Run("select_and_deselect", func(t *testing.T) {
		s := New()
		a, b := entry("a.xlsx", 1), entry("b.xlsx", 2)
		s.SetEntries([]scanner.FileEntry{a, b})

		s.Select(a.Key())
		assert.True(t, s.IsSelected(a.Key()))
		assert.False(t, s.IsSelected(b.Key()))

		selected := s.Selected()
		require.Len(t, selected, 1)
		assert.Equal(t, "a.xlsx", selected[0].Name)

		s.Deselect(a.Key())
		assert.Empty(t, s.Selected())
	})

	t.Run("toggle", func(t *testing.T) {
		s := New()
		a := entry("a.xlsx", 1)
		s.SetEntries([]scanner.FileEntry{a})

		s.Toggle(a.Key())
		assert.True(t, s.IsSelected(a.Key()))
		s.Toggle(a.Key())
		assert.False(t, s.IsSelected(a.Key()))
	})

	t.Run("unknown_keys_are_ignored", func(t *testing.T) {
		s := New()
		s.SetEntries([]scanner.FileEntry{entry("a.xlsx", 1)})

		s.Select("nope|0|0")
		assert.Empty(t, s.Selected())
	})

	t.Run("selected_preserves_scan_order", func(t *testing.T) {
		s := New()
		a, b, c := entry("a.xlsx", 1), entry("b.xlsx", 2), entry("c.xlsx", 3)
		s.SetEntries([]scanner.FileEntry{a, b, c})

		s.Select(c.Key())
		s.Select(a.Key())

		selected := s.Selected()
		require.Len(t, selected, 2)
		assert.Equal(t, "a.xlsx", selected[0].Name)
		assert.Equal(t, "c.xlsx", selected[1].Name)
	})
}

func TestSetEntries(t *testing.T) {
	t.Run("drops_stale_selection", func(t *testing.T) {
		s := New()
		a, b := entry("a.xlsx", 1), entry("b.xlsx", 2)
		s.SetEntries([]scanner.FileEntry{a, b})
		s.Select(a.Key())
		s.Select(b.Key())

		// A fresh scan no longer contains a.xlsx.
		s.SetEntries([]scanner.FileEntry{b})

		assert.False(t, s.IsSelected(a.Key()))
		assert.True(t, s.IsSelected(b.Key()))
	})
}

func TestPrune(t *testing.T) {
	t.Run("removes_handled_and_clears_selection", func(t *testing.T) {
		s := New()
		a, b, c := entry("a.xlsx", 1), entry("b.xlsx", 2), entry("c.xlsx", 3)
		s.SetEntries([]scanner.FileEntry{a, b, c})
		s.Select(a.Key())
		s.Select(b.Key())

		s.Prune([]scanner.FileEntry{a, b})

		remaining := s.Entries()
		require.Len(t, remaining, 1)
		assert.Equal(t, "c.xlsx", remaining[0].Name)
		assert.Empty(t, s.Selected(), "selection is cleared after handling")
	})
}
