package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-c0x/c0x/internal/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	require.Equal(t, "out", cfg.Output.DefaultPath)
	require.Equal(t, 0, cfg.Assembly.IndentWidth)
	require.False(t, cfg.Assembly.IndexComment)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
[output]
default_path = "a.out"

[assembly]
indent_width = 4
index_comment = true
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "a.out", cfg.Output.DefaultPath)
	require.Equal(t, 4, cfg.Assembly.IndentWidth)
	require.True(t, cfg.Assembly.IndexComment)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
