package bootstrap

import (
	"fmt"

	"bootstrap-machine/internal/installer"
	"bootstrap-machine/internal/logger"
)

// configureAptRepos registers extra APT repositories before any package is
// installed, so the package steps can resolve everything in one pass.
func configureAptRepos(repos []string) error {
	for _, repo := range repos {
		if output, err := runCommand("sudo", "add-apt-repository", "-y", repo); err != nil {
			return &installer.InstallError{Name: repo, Err: fmt.Errorf("add-apt-repository: %w\noutput: %s", err, output)}
		}
		logger.Info("[INFO] Added APT repository %s\n", repo)
	}
	return nil
}

// upgradePackages refreshes the package index and upgrades everything already
// installed.
func upgradePackages() error {
	if output, err := runCommand("sudo", "apt-get", "update"); err != nil {
		return &installer.InstallError{Name: "apt-get update", Err: fmt.Errorf("%w\noutput: %s", err, output)}
	}
	if output, err := runCommand("sudo", "apt-get", "upgrade", "-y"); err != nil {
		return &installer.InstallError{Name: "apt-get upgrade", Err: fmt.Errorf("%w\noutput: %s", err, output)}
	}
	return nil
}

// installPackages installs the listed OS packages in a single apt-get call.
func installPackages(packages []string) error {
	if len(packages) == 0 {
		return nil
	}
	args := append([]string{"apt-get", "install", "-y"}, packages...)
	if output, err := runCommand("sudo", args...); err != nil {
		return &installer.InstallError{Name: "apt-get install", Err: fmt.Errorf("%w\noutput: %s", err, output)}
	}
	logger.Info("[INFO] Installed %d OS packages\n", len(packages))
	return nil
}
