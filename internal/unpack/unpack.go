package unpack

import (
	"archive/tar"    // For reading .tar archives
	"archive/zip"    // For reading .zip archives
	"compress/bzip2" // For reading .bz2 compressed data
	"compress/gzip"  // For reading .gz compressed data
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip" // For reading .7z archives
	"github.com/xi2/xz"          // For reading .xz compressed data

	"bootstrap-machine/internal/logger"
)

// UnpackError reports a malformed archive, a missing member, or a filesystem
// write failure during extraction.
type UnpackError struct {
	Archive string
	Err     error
}

func (e *UnpackError) Error() string {
	return fmt.Sprintf("unpack %s: %v", e.Archive, e.Err)
}

func (e *UnpackError) Unwrap() error { return e.Err }

// Tar extracts exactly one named member from a tar archive into the archive's
// directory, handling gzip, bzip2, and xz compression transparently by
// suffix. The member is matched on its base name so nested paths inside the
// archive do not matter. The archive file is removed after a successful
// extraction.
func Tar(archivePath, member string) (string, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return "", &UnpackError{Archive: archivePath, Err: err}
	}
	defer f.Close()

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(archivePath, ".tar.gz"), strings.HasSuffix(archivePath, ".tgz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return "", &UnpackError{Archive: archivePath, Err: err}
		}
		defer gr.Close()
		reader = gr
	case strings.HasSuffix(archivePath, ".tar.bz2"):
		reader = bzip2.NewReader(f)
	case strings.HasSuffix(archivePath, ".tar.xz"):
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return "", &UnpackError{Archive: archivePath, Err: err}
		}
		reader = xzr
	}

	dest := filepath.Join(filepath.Dir(archivePath), member)
	tr := tar.NewReader(reader)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break // End of archive, member never seen
		}
		if err != nil {
			return "", &UnpackError{Archive: archivePath, Err: err}
		}
		if hdr.Typeflag != tar.TypeReg || filepath.Base(hdr.Name) != member {
			continue
		}

		out, err := os.Create(dest)
		if err != nil {
			return "", &UnpackError{Archive: archivePath, Err: err}
		}
		if _, err := io.Copy(out, tr); err != nil {
			out.Close()
			return "", &UnpackError{Archive: archivePath, Err: err}
		}
		if err := out.Close(); err != nil {
			return "", &UnpackError{Archive: archivePath, Err: err}
		}

		logger.Debug("[DEBUG] Extracted %s from %s\n", member, archivePath)
		removeArchive(archivePath)
		return dest, nil
	}

	return "", &UnpackError{Archive: archivePath, Err: fmt.Errorf("member %q not found", member)}
}

// Zip extracts a zip archive's full contents into a directory named by
// stripping the archive's extension.
func Zip(archivePath string) (string, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", &UnpackError{Archive: archivePath, Err: err}
	}
	defer r.Close()

	destDir := strings.TrimSuffix(archivePath, filepath.Ext(archivePath))
	for _, f := range r.File {
		target := filepath.Join(destDir, f.Name)
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return "", &UnpackError{Archive: archivePath, Err: err}
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return "", &UnpackError{Archive: archivePath, Err: err}
		}
		out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
		if err != nil {
			return "", &UnpackError{Archive: archivePath, Err: err}
		}
		rc, err := f.Open()
		if err != nil {
			out.Close()
			return "", &UnpackError{Archive: archivePath, Err: err}
		}
		_, err = io.Copy(out, rc)
		rc.Close()
		out.Close()
		if err != nil {
			return "", &UnpackError{Archive: archivePath, Err: err}
		}
	}

	removeArchive(archivePath)
	return destDir, nil
}

// GzipSingle decompresses a single-file gzip archive in place, yielding the
// file with the .gz suffix removed.
func GzipSingle(archivePath string) (string, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return "", &UnpackError{Archive: archivePath, Err: err}
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return "", &UnpackError{Archive: archivePath, Err: err}
	}
	defer gr.Close()

	dest := strings.TrimSuffix(archivePath, ".gz")
	if dest == archivePath {
		dest = archivePath + ".out" // archive without a .gz suffix, don't clobber it
	}
	out, err := os.Create(dest)
	if err != nil {
		return "", &UnpackError{Archive: archivePath, Err: err}
	}
	if _, err := io.Copy(out, gr); err != nil {
		out.Close()
		return "", &UnpackError{Archive: archivePath, Err: err}
	}
	if err := out.Close(); err != nil {
		return "", &UnpackError{Archive: archivePath, Err: err}
	}

	removeArchive(archivePath)
	return dest, nil
}

// SevenZip extracts a .7z archive's full contents into a directory named by
// stripping the archive's extension.
func SevenZip(archivePath string) (string, error) {
	r, err := sevenzip.OpenReader(archivePath)
	if err != nil {
		return "", &UnpackError{Archive: archivePath, Err: err}
	}
	defer r.Close()

	destDir := strings.TrimSuffix(archivePath, filepath.Ext(archivePath))
	for _, f := range r.File {
		target := filepath.Join(destDir, f.Name)
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return "", &UnpackError{Archive: archivePath, Err: err}
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return "", &UnpackError{Archive: archivePath, Err: err}
		}
		rc, err := f.Open()
		if err != nil {
			return "", &UnpackError{Archive: archivePath, Err: err}
		}
		out, err := os.Create(target)
		if err != nil {
			rc.Close()
			return "", &UnpackError{Archive: archivePath, Err: err}
		}
		_, err = io.Copy(out, rc)
		rc.Close()
		out.Close()
		if err != nil {
			return "", &UnpackError{Archive: archivePath, Err: err}
		}
	}

	removeArchive(archivePath)
	return destDir, nil
}

// removeArchive deletes a consumed archive. Failure to remove is not fatal,
// the scratch directory is removed wholesale anyway.
func removeArchive(archivePath string) {
	if err := os.Remove(archivePath); err != nil {
		logger.Debug("[DEBUG] Failed to remove archive %s: %v\n", archivePath, err)
	}
}
