package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := writeConfig(t, "conf.yaml", `
source: /data/incoming
destination: /data/outgoing
extension: .xlsm
ignore_globs:
  - "~$*"
debug: true
`)
		cfg, err := Load(path)
		require.NoError(t, err, "loading yaml config")
		assert.Equal(t, "/data/incoming", cfg.Source)
		assert.Equal(t, "/data/outgoing", cfg.Destination)
		assert.Equal(t, ".xlsm", cfg.Extension)
		assert.Equal(t, []string{"~$*"}, cfg.IgnoreGlobs)
		assert.True(t, cfg.Debug)
	})

	t.Run("json", func(t *testing.T) {
		path := writeConfig(t, "conf.json", `{"source": "/in", "extension": "xlsx"}`)
		cfg, err := Load(path)
		require.NoError(t, err, "loading json config")
		assert.Equal(t, "/in", cfg.Source)
		assert.Equal(t, ".xlsx", cfg.Extension, "extension is normalized with a leading dot")
	})

	t.Run("hcl", func(t *testing.T) {
		path := writeConfig(t, "conf.hcl", `
source      = "/in"
destination = "/out"
extension   = ".XLSX"
async       = true
`)
		cfg, err := Load(path)
		require.NoError(t, err, "loading hcl config")
		assert.Equal(t, "/in", cfg.Source)
		assert.Equal(t, "/out", cfg.Destination)
		assert.Equal(t, ".xlsx", cfg.Extension, "extension is lowercased")
		assert.True(t, cfg.Async)
	})

	t.Run("missing_default_file_yields_defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), DefaultFile))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("missing_explicit_file_is_an_error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "custom.yaml"))
		require.Error(t, err)
	})

	t.Run("unknown_yaml_fields_are_rejected", func(t *testing.T) {
		path := writeConfig(t, "conf.yaml", "sourcefolder: typo\n")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("unsupported_extension", func(t *testing.T) {
		path := writeConfig(t, "conf.toml", "source = '/in'\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported config extension")
	})
}

func TestDefault(t *testing.T) {
	t.Run("targets_xlsx", func(t *testing.T) {
		assert.Equal(t, ".xlsx", Default().Extension)
	})
}
