package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestResolveDataDir_FlagWins(t *testing.T) {
	t.Setenv(dataDirEnv, "/from/env")
	dir := t.TempDir()

	got, err := resolveDataDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestResolveDataDir_Environment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(dataDirEnv, dir)

	got, err := resolveDataDir("")
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestResolveDataDir_DotEnvFile(t *testing.T) {
	work := t.TempDir()
	want := filepath.Join(work, "data")
	require.NoError(t, os.WriteFile(filepath.Join(work, ".env"), []byte(dataDirEnv+"="+want+"\n"), 0644))
	t.Chdir(work)
	t.Setenv(dataDirEnv, "")
	require.NoError(t, os.Unsetenv(dataDirEnv))

	got, err := resolveDataDir("")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolveDataDir_HomeDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(dataDirEnv, "")
	t.Chdir(t.TempDir())

	got, err := resolveDataDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, defaultDataDir), got)
}

func TestNewLogger(t *testing.T) {
	quiet, err := newLogger(false)
	require.NoError(t, err)
	assert.False(t, quiet.Core().Enabled(zapcore.DebugLevel), "debug is disabled by default")
	assert.True(t, quiet.Core().Enabled(zapcore.WarnLevel), "warnings are logged")

	verbose, err := newLogger(true)
	require.NoError(t, err)
	assert.True(t, verbose.Core().Enabled(zapcore.DebugLevel))
}
