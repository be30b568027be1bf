package vfs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.TestWriter{T: t}).With().Timestamp().Logger()
	return logger.WithContext(context.Background())
}

func setupTestDir(t *testing.T) string {
	dir, err := os.MkdirTemp("", "xlsxsender-vfs-test-*")
	require.NoError(t, err, "creating temp dir")
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func TestNewOSFolder(t *testing.T) {
	t.Run("wraps_existing_directory", func(t *testing.T) {
		dir := setupTestDir(t)
		folder, err := NewOSFolder(dir)
		require.NoError(t, err, "wrapping directory")
		assert.Equal(t, filepath.Clean(dir), folder.Name())
	})

	t.Run("rejects_missing_directory", func(t *testing.T) {
		_, err := NewOSFolder("/nonexistent/path/for/sure")
		require.Error(t, err)
	})

	t.Run("rejects_regular_file", func(t *testing.T) {
		dir := setupTestDir(t)
		file := filepath.Join(dir, "plain.txt")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

		_, err := NewOSFolder(file)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})
}

func TestOSFolderList(t *testing.T) {
	ctx := setupTestLogger(t)

	t.Run("lists_files_and_dirs", func(t *testing.T) {
		dir := setupTestDir(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.xlsx"), []byte("a"), 0644))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

		folder, err := NewOSFolder(dir)
		require.NoError(t, err)

		entries, err := folder.List(ctx)
		require.NoError(t, err, "listing folder")
		require.Len(t, entries, 2)

		byName := map[string]EntryKind{}
		for _, e := range entries {
			byName[e.Name] = e.Kind
		}
		assert.Equal(t, KindFile, byName["a.xlsx"])
		assert.Equal(t, KindDir, byName["sub"])
	})

	t.Run("empty_folder", func(t *testing.T) {
		dir := setupTestDir(t)
		folder, err := NewOSFolder(dir)
		require.NoError(t, err)

		entries, err := folder.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestOSFolderOpen(t *testing.T) {
	ctx := setupTestLogger(t)

	t.Run("captures_size_and_mod_time", func(t *testing.T) {
		dir := setupTestDir(t)
		path := filepath.Join(dir, "report.xlsx")
		require.NoError(t, os.WriteFile(path, []byte("content"), 0644))
		info, err := os.Stat(path)
		require.NoError(t, err)

		folder, err := NewOSFolder(dir)
		require.NoError(t, err)

		file, err := folder.Open(ctx, "report.xlsx")
		require.NoError(t, err, "opening file")
		assert.Equal(t, "report.xlsx", file.Name())
		assert.Equal(t, int64(7), file.Size())
		assert.Equal(t, info.ModTime(), file.ModTime())

		data, err := file.ReadAll(ctx)
		require.NoError(t, err, "reading file")
		assert.Equal(t, []byte("content"), data)
	})

	t.Run("rejects_directory", func(t *testing.T) {
		dir := setupTestDir(t)
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

		folder, err := NewOSFolder(dir)
		require.NoError(t, err)

		_, err = folder.Open(ctx, "sub")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a file")
	})

	t.Run("missing_file", func(t *testing.T) {
		dir := setupTestDir(t)
		folder, err := NewOSFolder(dir)
		require.NoError(t, err)

		_, err = folder.Open(ctx, "absent.xlsx")
		require.Error(t, err)
	})
}

func TestOSFolderCreate(t *testing.T) {
	ctx := setupTestLogger(t)

	t.Run("creates_new_file", func(t *testing.T) {
		dir := setupTestDir(t)
		folder, err := NewOSFolder(dir)
		require.NoError(t, err)

		w, err := folder.Create(ctx, "out.xlsx")
		require.NoError(t, err, "creating file")
		_, err = w.Write([]byte("payload"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		data, err := os.ReadFile(filepath.Join(dir, "out.xlsx"))
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), data)
	})

	t.Run("overwrites_existing_file", func(t *testing.T) {
		dir := setupTestDir(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "out.xlsx"), []byte("old longer content"), 0644))

		folder, err := NewOSFolder(dir)
		require.NoError(t, err)

		w, err := folder.Create(ctx, "out.xlsx")
		require.NoError(t, err)
		_, err = w.Write([]byte("new"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		data, err := os.ReadFile(filepath.Join(dir, "out.xlsx"))
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), data)
	})
}

func TestOSFolderRequestWrite(t *testing.T) {
	ctx := setupTestLogger(t)

	t.Run("writable_folder", func(t *testing.T) {
		dir := setupTestDir(t)
		folder, err := NewOSFolder(dir)
		require.NoError(t, err)

		require.NoError(t, folder.RequestWrite(ctx))

		// The probe must not leave anything behind.
		entries, err := folder.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("read_only_folder", func(t *testing.T) {
		if os.Getuid() == 0 {
			t.Skip("permission checks are bypassed for root")
		}
		dir := setupTestDir(t)
		require.NoError(t, os.Chmod(dir, 0555))
		t.Cleanup(func() { os.Chmod(dir, 0755) })

		folder, err := NewOSFolder(dir)
		require.NoError(t, err)

		err = folder.RequestWrite(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not writable")
	})
}
