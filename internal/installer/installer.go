package installer

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"bootstrap-machine/internal/config"
	"bootstrap-machine/internal/fetcher"
	"bootstrap-machine/internal/logger"
	"bootstrap-machine/internal/unpack"
)

// InstallError reports a failed installation: a package manager exiting
// non-zero, or a move/chmod failure while placing a binary.
type InstallError struct {
	Name string
	Err  error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("install %s: %v", e.Name, e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }

// runCommand executes an external command and returns its combined output.
// It is a variable so tests can capture invocations instead of running them.
var runCommand = func(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	return cmd.CombinedOutput()
}

// Installer dispatches declarative install records to their recipes.
type Installer struct {
	BinDir string // User-local bin directory receiving fetched binaries
}

// New returns an Installer placing binaries under binDir.
func New(binDir string) *Installer {
	return &Installer{BinDir: binDir}
}

// Install runs the recipe selected by rec.Kind. The fetch-based kinds work
// inside a scoped scratch directory that is removed on every path, so records
// cannot collide on file names and a failed record leaves nothing behind.
// An unrecognized kind is logged as a warning and skipped; it never aborts
// the remainder of the list.
func (ins *Installer) Install(rec config.Record) error {
	logger.Debug("[DEBUG] Installing %s (kind %s) from %s\n", rec.Name, rec.Kind, rec.Source)

	switch rec.Kind {
	case config.KindTar:
		return ins.installArchive(rec, false)
	case config.KindGzip:
		return ins.installArchive(rec, true)
	case config.KindBinary:
		return ins.installBinary(rec)
	case config.KindNpm:
		return ins.packageManager(rec, "sudo", "npm", "install", "--global", rec.Source)
	case config.KindApt:
		return ins.packageManager(rec, "sudo", "apt-get", "install", "-y", rec.Source)
	case config.KindCargo:
		return ins.packageManager(rec, "cargo", "install", rec.Source)
	case config.KindPip:
		return ins.packageManager(rec, "pip", "install", "--user", rec.Source)
	case config.KindRaco:
		return ins.packageManager(rec, "raco", "pkg", "install", "--auto", rec.Source)
	case config.KindMise:
		return ins.packageManager(rec, "mise", "use", "--global", miseSpec(rec))
	default:
		logger.Warn("[WARN] Unknown installer kind %q for %s. Skipping.\n", rec.Kind, rec.Name)
		return nil
	}
}

// installArchive handles the tar and gzip kinds: fetch the archive, extract
// the tool's file, and place it in the bin dir.
func (ins *Installer) installArchive(rec config.Record, gzipSingle bool) error {
	scratch, err := os.MkdirTemp("", "bootstrap-"+rec.Name+"-")
	if err != nil {
		return &InstallError{Name: rec.Name, Err: err}
	}
	defer os.RemoveAll(scratch)

	archive, err := fetcher.Fetch(rec.Source, scratch)
	if err != nil {
		return err
	}

	var extracted string
	if gzipSingle {
		extracted, err = unpack.GzipSingle(archive)
	} else {
		extracted, err = unpack.Tar(archive, extractedName(rec))
	}
	if err != nil {
		return err
	}

	return ins.place(extracted, rec.Name)
}

// installBinary handles the binary kind: the fetched file is the tool itself.
func (ins *Installer) installBinary(rec config.Record) error {
	scratch, err := os.MkdirTemp("", "bootstrap-"+rec.Name+"-")
	if err != nil {
		return &InstallError{Name: rec.Name, Err: err}
	}
	defer os.RemoveAll(scratch)

	fetched, err := fetcher.Fetch(rec.Source, scratch)
	if err != nil {
		return err
	}
	return ins.place(fetched, rec.Name)
}

// packageManager delegates a record to the ecosystem's own tool. Failure
// semantics are the underlying tool's: a non-zero exit is propagated as an
// InstallError, with the tool output attached for diagnosis.
func (ins *Installer) packageManager(rec config.Record, name string, args ...string) error {
	output, err := runCommand(name, args...)
	if err != nil {
		return &InstallError{Name: rec.Name, Err: fmt.Errorf("%s %s: %w\noutput: %s", name, strings.Join(args, " "), err, output)}
	}
	logger.Info("[INFO] Installed %s via %s\n", rec.Name, name)
	return nil
}

// place moves src into the bin dir under the record's name with the
// executable bit set. The rename normalizes tools whose archives ship the
// binary under a different file name.
func (ins *Installer) place(src, name string) error {
	if err := os.MkdirAll(ins.BinDir, 0755); err != nil {
		return &InstallError{Name: name, Err: err}
	}
	dest := filepath.Join(ins.BinDir, name)
	if err := copyFile(src, dest, 0755); err != nil {
		return &InstallError{Name: name, Err: err}
	}
	logger.Info("[INFO] Installed %s to %s\n", name, dest)
	return nil
}

// extractedName returns the file name the archive is expected to produce.
func extractedName(rec config.Record) string {
	if rec.RenameFrom != "" {
		return rec.RenameFrom
	}
	return rec.Name
}

// miseSpec builds the `name@version` argument for mise. The source field is
// the version spec; an empty or name-equal source means latest.
func miseSpec(rec config.Record) string {
	version := rec.Source
	if version == "" || version == rec.Name {
		version = "latest"
	}
	return rec.Name + "@" + version
}
