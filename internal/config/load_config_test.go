package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dotfiles.list", ".zshrc .gitconfig\n")
	writeFile(t, dir, "packages.list", "zsh\ntmux\n")
	writeFile(t, dir, "runtimes.list", "node@22\n")
	writeFile(t, dir, "language-servers.list", "pyright npm\n")
	configPath := writeFile(t, dir, "config.yaml", `
config:
  dotfiles_file: dotfiles.list
  packages_file: packages.list
  runtimes_file: runtimes.list
  servers_file: language-servers.list
settings:
  dotfiles_repo: https://example.com/dotfiles.git
  shell: /usr/bin/zsh
  groups: [docker]
  kitty:
    installer_url: https://example.com/installer.sh
`)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, []string{".zshrc", ".gitconfig"}, cfg.Dotfiles)
	assert.Equal(t, []string{"zsh", "tmux"}, cfg.Packages)
	assert.Equal(t, []Runtime{{Name: "node", Version: "22"}}, cfg.Runtimes)
	assert.Equal(t, []Record{{Name: "pyright", Kind: KindNpm, Source: "pyright"}}, cfg.Servers)
	assert.Equal(t, "https://example.com/dotfiles.git", cfg.Settings.DotfilesRepo)
	assert.Equal(t, "/usr/bin/zsh", cfg.Settings.Shell)
	assert.Equal(t, []string{"docker"}, cfg.Settings.Groups)
	assert.Equal(t, "https://example.com/installer.sh", cfg.Settings.Kitty.InstallerURL)
}

func TestLoadMissingMainConfig(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
}

func TestLoadMissingListFile(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yaml", `
config:
  dotfiles_file: missing.list
  packages_file: missing.list
  runtimes_file: missing.list
  servers_file: missing.list
`)

	_, err := Load(configPath)
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, cfgErr.Path, "missing.list")
}

func TestBinDir(t *testing.T) {
	assert.Equal(t, "/custom/bin", BinDir("/custom/bin"))
	assert.Contains(t, BinDir(""), filepath.Join(".local", "bin"))
}
