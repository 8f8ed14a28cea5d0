package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"bootstrap-machine/internal/config"
	"bootstrap-machine/internal/fetcher"
	"bootstrap-machine/internal/installer"
	"bootstrap-machine/internal/logger"
)

// installKitty installs the kitty terminal emulator via the vendor install
// script, then wires up the desktop integration the script leaves to the
// user: bin dir links, desktop entries, the xterm-kitty terminfo entry, and
// the default-terminal preference file.
func installKitty(settings config.KittySettings, binDirOverride string) error {
	scratch, err := os.MkdirTemp("", "bootstrap-kitty-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(scratch)

	script, err := fetcher.Fetch(settings.InstallerURL, scratch)
	if err != nil {
		return err
	}

	// launch=n keeps the installer from starting kitty at the end.
	if output, err := runCommand("sh", script, "launch=n"); err != nil {
		return &installer.InstallError{Name: "kitty", Err: fmt.Errorf("installer script: %w\noutput: %s", err, output)}
	}

	appDir := filepath.Join(xdg.Home, ".local", "kitty.app")
	binDir := config.BinDir(binDirOverride)

	if err := linkKittyBinaries(appDir, binDir); err != nil {
		return err
	}
	if err := writeDesktopEntries(appDir); err != nil {
		return err
	}
	if err := installTerminfo(appDir); err != nil {
		return err
	}
	return writeTerminalPreference()
}

// linkKittyBinaries links the kitty and kitten executables into the bin dir
// so they are on PATH without moving the self-contained app directory.
func linkKittyBinaries(appDir, binDir string) error {
	if err := os.MkdirAll(binDir, 0755); err != nil {
		return err
	}
	for _, name := range []string{"kitty", "kitten"} {
		src := filepath.Join(appDir, "bin", name)
		dest := filepath.Join(binDir, name)
		_ = os.Remove(dest) // replace a stale link from an earlier run
		if err := os.Symlink(src, dest); err != nil {
			return &installer.InstallError{Name: name, Err: err}
		}
		logger.Debug("[DEBUG] Linked %s -> %s\n", dest, src)
	}
	return nil
}

// writeDesktopEntries copies kitty's desktop files into the user application
// directory, rewriting the Exec and Icon fields to the app dir's absolute
// paths so launchers resolve them without PATH assumptions.
func writeDesktopEntries(appDir string) error {
	srcDir := filepath.Join(appDir, "share", "applications")
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return &installer.InstallError{Name: "kitty desktop entries", Err: err}
	}

	destDir := config.ApplicationsDir()
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return err
	}

	kittyBin := filepath.Join(appDir, "bin", "kitty")
	icon := filepath.Join(appDir, "share", "icons", "hicolor", "256x256", "apps", "kitty.png")
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".desktop") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(srcDir, entry.Name()))
		if err != nil {
			return err
		}
		content := strings.ReplaceAll(string(raw), "Exec=kitty", "Exec="+kittyBin)
		content = strings.ReplaceAll(content, "Icon=kitty", "Icon="+icon)
		dest := filepath.Join(destDir, entry.Name())
		if err := os.WriteFile(dest, []byte(content), 0644); err != nil {
			return err
		}
		logger.Info("[INFO] Wrote desktop entry %s\n", dest)
	}
	return nil
}

// installTerminfo compiles kitty's terminfo source into the per-user
// terminfo database so xterm-kitty is a known terminal on this machine.
func installTerminfo(appDir string) error {
	src := filepath.Join(appDir, "lib", "kitty", "terminfo", "kitty.terminfo")
	if _, err := os.Stat(src); err != nil {
		return &installer.InstallError{Name: "kitty terminfo", Err: err}
	}
	if output, err := runCommand("tic", "-x", "-o", config.TerminfoDir(), src); err != nil {
		return &installer.InstallError{Name: "kitty terminfo", Err: fmt.Errorf("tic: %w\noutput: %s", err, output)}
	}
	return nil
}

// writeTerminalPreference records kitty as the preferred terminal for
// xdg-terminal-exec aware environments.
func writeTerminalPreference() error {
	pref := config.TerminalPrefFile()
	if err := os.MkdirAll(filepath.Dir(pref), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(pref, []byte("kitty.desktop\n"), 0644); err != nil {
		return err
	}
	logger.Info("[INFO] Set kitty as the default terminal\n")
	return nil
}
