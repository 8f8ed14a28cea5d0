package main

import (
	"bootstrap-machine/cmd" // Import the cmd package which contains the CLI command and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// The bootstrap-machine project automates the setup of an Ubuntu workstation:
//   - Reads a YAML configuration file that names the plaintext input lists
//     (dotfiles, OS packages, runtimes, language servers) and holds bootstrap settings
//   - Elevates privileges once at startup and keeps the grant alive in the background
//     for the duration of the run
//   - Upgrades the OS package database and installs the listed system packages
//   - Installs a terminal emulator with desktop integration, a patched font, and the
//     mise runtime manager with the listed runtimes
//   - Clones the user's dotfiles repository (skipped when it is already present)
//     and links the listed dotfiles into the home directory
//   - Installs every language server from the declarative list, dispatching each
//     record to the recipe matching its installer kind (tar, gzip, binary, npm,
//     apt, cargo, pip, raco, mise)
//   - Applies final user configuration: supplementary groups and the login shell
//
// Error handling strategy:
//   - Every step is fatal on failure; the run stops and the process exits non-zero
//   - The single designed exception is an unrecognized installer kind in the
//     language-server list, which is logged as a warning and skipped so the rest
//     of the list can still be processed
func main() {
	cmd.Execute()
}
