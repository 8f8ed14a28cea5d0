package bootstrap

import (
	"fmt"
	"os/user"

	"bootstrap-machine/internal/config"
	"bootstrap-machine/internal/installer"
	"bootstrap-machine/internal/logger"
)

// configureUser applies the final account changes: supplementary group
// membership and the login shell. Both require elevation and a re-login to
// take effect, so they run last.
func configureUser(settings config.Settings) error {
	usr, err := user.Current()
	if err != nil {
		return err
	}

	for _, group := range settings.Groups {
		if output, err := runCommand("sudo", "usermod", "-aG", group, usr.Username); err != nil {
			return &installer.InstallError{Name: "usermod", Err: fmt.Errorf("group %s: %w\noutput: %s", group, err, output)}
		}
		logger.Info("[INFO] Added %s to group %s\n", usr.Username, group)
	}

	if settings.Shell != "" {
		if output, err := runCommand("sudo", "chsh", "-s", settings.Shell, usr.Username); err != nil {
			return &installer.InstallError{Name: "chsh", Err: fmt.Errorf("%w\noutput: %s", err, output)}
		}
		logger.Info("[INFO] Set login shell to %s\n", settings.Shell)
	}
	return nil
}
