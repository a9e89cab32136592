package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsZeroValue(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadParsesFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	contents := "outputDir: build\nbuiltinClasses:\n  - Vector\n  - Matrix\nverbose: true\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "build", cfg.OutputDir)
	assert.Equal(t, []string{"Vector", "Matrix"}, cfg.BuiltinClasses)
	assert.True(t, cfg.Verbose)
}

func TestLoadUnparsableFileIsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("outputDir: [this is not valid"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestBesideDirectoryTarget(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, filepath.Join(dir, FileName), Beside(dir))
}

func TestBesideFileTarget(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "Main.jack")
	require.NoError(t, os.WriteFile(file, []byte("class Main {}"), 0o644))

	assert.Equal(t, filepath.Join(dir, FileName), Beside(file))
}
