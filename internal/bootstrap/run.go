package bootstrap

import (
	"context"
	"os/exec"
	"strings"

	"bootstrap-machine/internal/config"
	"bootstrap-machine/internal/installer"
	"bootstrap-machine/internal/logger"
	"bootstrap-machine/internal/privilege"
)

// runCommand executes an external command and returns its combined output.
// It is a variable so tests can capture invocations instead of running them.
var runCommand = func(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	return cmd.CombinedOutput()
}

// Elevation entry points, swapped in tests.
var (
	elevate   = privilege.Elevate
	keepAlive = privilege.KeepAlive
)

// Run executes the whole bootstrap sequence, strictly in order. Privileges
// are elevated once up front; the keep-alive task holds the grant until Run
// returns on any path. Every step is fatal on error except the per-record
// language-server loop, where only an unrecognized kind is tolerated.
func Run(ctx context.Context, cfg config.Config) error {
	if err := elevate(); err != nil {
		return err
	}

	// Cancelled on every exit path: normal return, step failure, interrupt.
	keepAliveCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	keepAlive(keepAliveCtx)

	logger.Info("[INFO] Configuring APT repositories...\n")
	if err := configureAptRepos(cfg.Settings.AptRepos); err != nil {
		return err
	}

	logger.Info("[INFO] Upgrading OS packages...\n")
	if err := upgradePackages(); err != nil {
		return err
	}

	logger.Info("[INFO] Installing OS packages...\n")
	if err := installPackages(cfg.Packages); err != nil {
		return err
	}

	logger.Info("[INFO] Installing kitty...\n")
	if err := installKitty(cfg.Settings.Kitty, cfg.Settings.BinDir); err != nil {
		return err
	}

	logger.Info("[INFO] Installing fonts...\n")
	if err := installFonts(cfg.Settings.Font); err != nil {
		return err
	}

	logger.Info("[INFO] Installing mise and runtimes...\n")
	if err := installMise(cfg.Settings.MiseInstallerURL); err != nil {
		return err
	}
	if err := installRuntimes(cfg.Runtimes); err != nil {
		return err
	}

	logger.Info("[INFO] Installing dotfiles...\n")
	if err := installDotfiles(cfg.Settings, cfg.Dotfiles); err != nil {
		return err
	}

	logger.Info("[INFO] Installing language servers...\n")
	ins := installer.New(config.BinDir(cfg.Settings.BinDir))
	for _, rec := range cfg.Servers {
		if err := ins.Install(rec); err != nil {
			return err
		}
	}

	logger.Info("[INFO] Applying user configuration...\n")
	if err := configureUser(cfg.Settings); err != nil {
		return err
	}

	logger.Info("[INFO] Bootstrap complete.\n")
	return nil
}
