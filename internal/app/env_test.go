package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadEnvFiles_LoadsKeyValues(t *testing.T) {
	t.Setenv("FOO", "")
	t.Setenv("BAR", "")
	t.Setenv("BAZ", "")

	envPath := filepath.Join(t.TempDir(), ".env.test")
	writeFile(t, envPath, "\n# sample dotenv file\nFOO=alpha\nexport BAR=\"beta gamma\"\nBAZ=delta # trailing\nnot a pair\n")

	require.NoError(t, LoadEnvFiles(envPath))
	assert.Equal(t, "alpha", os.Getenv("FOO"))
	assert.Equal(t, "beta gamma", os.Getenv("BAR"))
	assert.Equal(t, "delta", os.Getenv("BAZ"))
}

// Later files override earlier ones; missing files are skipped.
func TestLoadEnvFiles_OverrideOrder(t *testing.T) {
	t.Setenv("K", "")
	dir := t.TempDir()
	a := filepath.Join(dir, ".env.a")
	b := filepath.Join(dir, ".env.b")
	writeFile(t, a, "K=first\n")
	writeFile(t, b, "K='second'\n")

	require.NoError(t, LoadEnvFiles(a, filepath.Join(dir, "missing"), "", b))
	assert.Equal(t, "second", os.Getenv("K"))
}

func TestApplyEnvToConfig_FillsOnlyUnset(t *testing.T) {
	t.Setenv(envInputs, "a.md, docs/**/*.md,")
	t.Setenv(envFormat, "PDF")
	t.Setenv(envWidth, "100")
	t.Setenv(envGrid, "yes")
	t.Setenv(envWatchDebounce, "1s")
	t.Setenv(envOutputDir, "")

	cfg := Config{Width: 60}
	ApplyEnvToConfig(&cfg)
	assert.Equal(t, []string{"a.md", "docs/**/*.md"}, cfg.Inputs)
	assert.Equal(t, FormatPDF, cfg.Format)
	assert.Equal(t, 60, cfg.Width)
	assert.True(t, cfg.Platform.Grid)
	assert.Equal(t, time.Second, cfg.WatchDebounce)
	assert.Empty(t, cfg.OutputDir)
}

func TestApplyEnvOverrides_BooleansBothWays(t *testing.T) {
	t.Setenv(envGrid, "off")
	t.Setenv(envNativeAttrs, "1")
	t.Setenv(envWidth, "not-a-number")

	cfg := Config{Width: 40, Platform: PlatformConfig{Grid: true}}
	ApplyEnvOverrides(&cfg)
	assert.False(t, cfg.Platform.Grid)
	assert.True(t, cfg.Platform.NativeAttributes)
	assert.Equal(t, 40, cfg.Width)
}
