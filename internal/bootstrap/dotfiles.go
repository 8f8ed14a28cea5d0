package bootstrap

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"bootstrap-machine/internal/config"
	"bootstrap-machine/internal/fetcher"
	"bootstrap-machine/internal/logger"
)

// installDotfiles clones the dotfiles repository and links the listed
// dotfiles into the home directory. When the clone destination already
// exists and is non-empty the whole step is skipped with a warning: this is
// the run's one idempotence guard, and it must make zero network calls and
// zero filesystem mutations.
func installDotfiles(settings config.Settings, dotfiles []string) error {
	dir := settings.DotfilesDir
	if dir == "" {
		dir = filepath.Join(xdg.Home, "dotfiles")
	}

	if entries, err := os.ReadDir(dir); err == nil && len(entries) > 0 {
		logger.Warn("[WARN] Dotfiles directory %s already exists. Skipping.\n", dir)
		return nil
	}

	if err := fetcher.CloneRepo(settings.DotfilesRepo, dir); err != nil {
		return err
	}
	logger.Info("[INFO] Cloned dotfiles into %s\n", dir)

	for _, name := range dotfiles {
		src := filepath.Join(dir, name)
		dest := filepath.Join(xdg.Home, name)
		if _, err := os.Lstat(dest); err == nil {
			logger.Debug("[DEBUG] %s already exists, not linking\n", dest)
			continue
		}
		// Names like .config/nvim need their parent created first.
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return err
		}
		if err := os.Symlink(src, dest); err != nil {
			return err
		}
		logger.Info("[INFO] Linked %s -> %s\n", dest, src)
	}
	return nil
}
