package bootstrap

import (
	"fmt"
	"os"

	"bootstrap-machine/internal/config"
	"bootstrap-machine/internal/fetcher"
	"bootstrap-machine/internal/installer"
	"bootstrap-machine/internal/logger"
)

// installMise installs the mise runtime manager via the vendor install
// script.
func installMise(installerURL string) error {
	scratch, err := os.MkdirTemp("", "bootstrap-mise-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(scratch)

	script, err := fetcher.Fetch(installerURL, scratch)
	if err != nil {
		return err
	}
	if output, err := runCommand("sh", script); err != nil {
		return &installer.InstallError{Name: "mise", Err: fmt.Errorf("installer script: %w\noutput: %s", err, output)}
	}
	return nil
}

// installRuntimes selects each listed runtime globally through mise.
func installRuntimes(runtimes []config.Runtime) error {
	for _, rt := range runtimes {
		spec := rt.Name + "@" + rt.Version
		if output, err := runCommand("mise", "use", "--global", spec); err != nil {
			return &installer.InstallError{Name: rt.Name, Err: fmt.Errorf("mise use: %w\noutput: %s", err, output)}
		}
		logger.Info("[INFO] Installed runtime %s\n", spec)
	}
	return nil
}
