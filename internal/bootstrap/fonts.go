package bootstrap

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"bootstrap-machine/internal/config"
	"bootstrap-machine/internal/fetcher"
	"bootstrap-machine/internal/installer"
	"bootstrap-machine/internal/logger"
	"bootstrap-machine/internal/unpack"
)

// installFonts downloads a font release archive, extracts it, copies every
// font file into the per-user font directory, and refreshes the font cache.
func installFonts(font config.FontSettings) error {
	if font.URL == "" {
		logger.Debug("[DEBUG] No font configured, skipping\n")
		return nil
	}

	scratch, err := os.MkdirTemp("", "bootstrap-font-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(scratch)

	archive, err := fetcher.Fetch(font.URL, scratch)
	if err != nil {
		return err
	}

	var extracted string
	switch {
	case strings.HasSuffix(archive, ".zip"):
		extracted, err = unpack.Zip(archive)
	case strings.HasSuffix(archive, ".7z"):
		extracted, err = unpack.SevenZip(archive)
	default:
		return &unpack.UnpackError{Archive: archive, Err: fmt.Errorf("unsupported font archive format")}
	}
	if err != nil {
		return err
	}

	destDir := filepath.Join(config.FontsDir(), font.Name)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return err
	}

	installed := 0
	err = filepath.WalkDir(extracted, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".ttf" && ext != ".otf" {
			return nil
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(destDir, d.Name()), raw, 0644); err != nil {
			return err
		}
		installed++
		return nil
	})
	if err != nil {
		return &installer.InstallError{Name: font.Name, Err: err}
	}
	if installed == 0 {
		return &installer.InstallError{Name: font.Name, Err: fmt.Errorf("no font files found in archive")}
	}
	logger.Info("[INFO] Installed %d font files for %s\n", installed, font.Name)

	if output, err := runCommand("fc-cache", "-f"); err != nil {
		return &installer.InstallError{Name: font.Name, Err: fmt.Errorf("fc-cache: %w\noutput: %s", err, output)}
	}
	return nil
}
