package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// User-local installation directories, XDG-resolved. Every write the bootstrap
// makes on its own behalf (as opposed to package managers) lands under these.

// BinDir returns the user-local bin directory where fetched binaries are
// placed. An override from the settings block wins.
func BinDir(override string) string {
	if override != "" {
		return override
	}
	return filepath.Join(xdg.Home, ".local", "bin")
}

// FontsDir returns the per-user font directory.
func FontsDir() string {
	return filepath.Join(xdg.DataHome, "fonts")
}

// ApplicationsDir returns the per-user desktop entry directory.
func ApplicationsDir() string {
	return filepath.Join(xdg.DataHome, "applications")
}

// TerminfoDir returns the per-user terminfo database directory.
func TerminfoDir() string {
	return filepath.Join(xdg.Home, ".terminfo")
}

// TerminalPrefFile returns the path of the default-terminal preference file
// consulted by xdg-terminal-exec aware environments.
func TerminalPrefFile() string {
	return filepath.Join(xdg.ConfigHome, "xdg-terminals.list")
}
