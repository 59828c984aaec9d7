package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// Smoke test: text rendering to stdout with the grid table layout.
func TestRunMain_StdoutGrid(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "doc.md")
	writeInput(t, in, "<table><tbody><tr><td>x</td></tr></tbody></table>\n")

	var stdout bytes.Buffer
	code := runMain(context.Background(), []string{"-env", "", "-out", "-", "-grid", in}, &stdout, io.Discard)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "┌")
}

func TestRunMain_NoInputExitsTwo(t *testing.T) {
	dir := t.TempDir()
	code := runMain(context.Background(), []string{"-env", "", "-input", filepath.Join(dir, "*.md")}, io.Discard, io.Discard)
	assert.Equal(t, 2, code)

	code = runMain(context.Background(), []string{"-env", ""}, io.Discard, io.Discard)
	assert.Equal(t, 2, code)
}

func TestRunMain_BadFlagsExitOne(t *testing.T) {
	assert.Equal(t, 1, runMain(context.Background(), []string{"-env", "", "-format", "html", "x.md"}, io.Discard, io.Discard))
	assert.Equal(t, 1, runMain(context.Background(), []string{"-no-such-flag"}, io.Discard, io.Discard))
}

func TestRunMain_Version(t *testing.T) {
	var stdout bytes.Buffer
	assert.Equal(t, 0, runMain(context.Background(), []string{"-version"}, &stdout, io.Discard))
	assert.Contains(t, stdout.String(), "mdrender ")
}

func TestParseConfig_Layering(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "mdrender.yaml")
	writeInput(t, cfgPath, "inputs: [from-file.md]\noutput:\n  format: pdf\n  width: 50\nplatform:\n  grid: true\n")
	envPath := filepath.Join(dir, ".env")
	writeInput(t, envPath, "MDRENDER_WIDTH=60\n")
	t.Setenv("MDRENDER_WIDTH", "")
	t.Setenv("MDRENDER_GRID", "")

	cfg, _, err := parseConfig([]string{"-config", cfgPath, "-env", envPath, "-format", "both", "extra.md"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, []string{"from-file.md", "extra.md"}, cfg.Inputs)
	// flag beats file
	assert.Equal(t, "both", cfg.Format)
	// env beats file
	assert.Equal(t, 60, cfg.Width)
	assert.True(t, cfg.Platform.Grid)

	cfg, _, err = parseConfig([]string{"-config", cfgPath, "-env", "", "-grid=false", "-input", "a.md, b.md"}, io.Discard)
	require.NoError(t, err)
	assert.False(t, cfg.Platform.Grid)
	assert.Equal(t, []string{"a.md", "b.md"}, cfg.Inputs)
}
