package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootstrap-machine/internal/config"
	"bootstrap-machine/internal/privilege"
)

// captureCommands swaps the command runner for one that records invocations
// and reports success without running anything.
func captureCommands(t *testing.T) *[][]string {
	t.Helper()
	var captured [][]string
	restore := runCommand
	runCommand = func(name string, args ...string) ([]byte, error) {
		captured = append(captured, append([]string{name}, args...))
		return nil, nil
	}
	t.Cleanup(func() { runCommand = restore })
	return &captured
}

func TestRunAbortsWhenElevationFails(t *testing.T) {
	captured := captureCommands(t)

	restore := elevate
	elevate = func() error {
		return &privilege.PrivilegeError{Err: errors.New("sudo: a password is required")}
	}
	t.Cleanup(func() { elevate = restore })

	err := Run(context.Background(), config.Config{
		Packages: []string{"zsh"},
		Settings: config.Settings{Shell: "/usr/bin/zsh"},
	})

	// The failure is the privilege error itself, and no step ran.
	var privErr *privilege.PrivilegeError
	require.ErrorAs(t, err, &privErr)
	assert.Empty(t, *captured)
}

func TestConfigureAptRepos(t *testing.T) {
	captured := captureCommands(t)
	require.NoError(t, configureAptRepos([]string{"ppa:neovim-ppa/unstable"}))
	require.Len(t, *captured, 1)
	assert.Equal(t, []string{"sudo", "add-apt-repository", "-y", "ppa:neovim-ppa/unstable"}, (*captured)[0])
}

func TestUpgradePackages(t *testing.T) {
	captured := captureCommands(t)
	require.NoError(t, upgradePackages())
	require.Len(t, *captured, 2)
	assert.Equal(t, []string{"sudo", "apt-get", "update"}, (*captured)[0])
	assert.Equal(t, []string{"sudo", "apt-get", "upgrade", "-y"}, (*captured)[1])
}

func TestInstallPackages(t *testing.T) {
	captured := captureCommands(t)
	require.NoError(t, installPackages([]string{"zsh", "tmux"}))
	require.Len(t, *captured, 1)
	assert.Equal(t, []string{"sudo", "apt-get", "install", "-y", "zsh", "tmux"}, (*captured)[0])
}

func TestInstallPackagesEmptyListIsNoop(t *testing.T) {
	captured := captureCommands(t)
	require.NoError(t, installPackages(nil))
	assert.Empty(t, *captured)
}

func TestConfigureUser(t *testing.T) {
	captured := captureCommands(t)
	require.NoError(t, configureUser(config.Settings{
		Groups: []string{"docker"},
		Shell:  "/usr/bin/zsh",
	}))
	require.Len(t, *captured, 2)
	assert.Equal(t, []string{"sudo", "usermod", "-aG", "docker"}, (*captured)[0][:4])
	assert.Equal(t, []string{"sudo", "chsh", "-s", "/usr/bin/zsh"}, (*captured)[1][:4])
}

func TestInstallRuntimes(t *testing.T) {
	captured := captureCommands(t)
	require.NoError(t, installRuntimes([]config.Runtime{
		{Name: "node", Version: "22"},
		{Name: "go", Version: "latest"},
	}))
	require.Len(t, *captured, 2)
	assert.Equal(t, []string{"mise", "use", "--global", "node@22"}, (*captured)[0])
	assert.Equal(t, []string{"mise", "use", "--global", "go@latest"}, (*captured)[1])
}
