package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootstrap-machine/internal/config"
)

func TestInstallDotfilesSkipsExistingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".zshrc"), []byte("existing"), 0644))

	before, err := os.ReadDir(dir)
	require.NoError(t, err)

	// A pre-existing non-empty directory is a warning, not an error, and the
	// step performs no clone and no mutation. The repo URL is unresolvable on
	// purpose: any network attempt would fail the test.
	settings := config.Settings{
		DotfilesRepo: "https://invalid.example/dotfiles.git",
		DotfilesDir:  dir,
	}
	require.NoError(t, installDotfiles(settings, []string{".zshrc"}))

	after, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after))
	raw, err := os.ReadFile(filepath.Join(dir, ".zshrc"))
	require.NoError(t, err)
	assert.Equal(t, "existing", string(raw))
}

func TestInstallDotfilesEmptyDirClones(t *testing.T) {
	// An existing but empty directory does not trip the idempotence guard.
	dir := filepath.Join(t.TempDir(), "dotfiles")
	require.NoError(t, os.MkdirAll(dir, 0755))

	settings := config.Settings{
		DotfilesRepo: "https://invalid.example/dotfiles.git",
		DotfilesDir:  dir,
	}
	err := installDotfiles(settings, nil)
	// The clone is attempted (and fails against the unresolvable host).
	require.Error(t, err)
}
