package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"bootstrap-machine/internal/logger"
)

// FetchError reports a failed download or repository clone. Fetch failures
// are fatal to the bootstrap: there is no retry.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetch downloads the resource at rawURL via HTTP(S) GET, following
// redirects, and writes it into destDir under the URL's final path segment.
// Re-invocation overwrites a previous download of the same name. A non-2xx
// status, network failure, or write failure yields a FetchError.
func Fetch(rawURL, destDir string) (string, error) {
	resp, err := http.Get(rawURL)
	if err != nil {
		return "", &FetchError{URL: rawURL, Err: err}
	}
	// Close the response body on all paths to avoid leaking the connection.
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close response body: %s\n", cerr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: rawURL, Err: fmt.Errorf("HTTP status %d", resp.StatusCode)}
	}

	dest := filepath.Join(destDir, fileName(rawURL))
	out, err := os.Create(dest)
	if err != nil {
		return "", &FetchError{URL: rawURL, Err: err}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close destination file: %s\n", cerr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", &FetchError{URL: rawURL, Err: fmt.Errorf("write response: %w", err)}
	}

	logger.Debug("[DEBUG] Downloaded %s to %s\n", rawURL, dest)
	return dest, nil
}

// gitCommand is swapped in tests.
var gitCommand = func(args ...string) *exec.Cmd {
	return exec.Command("git", args...)
}

// CloneRepo performs a full git clone of repoURL into destPath. It fails with
// a FetchError when the destination already exists and is non-empty, or when
// the clone itself fails.
func CloneRepo(repoURL, destPath string) error {
	if entries, err := os.ReadDir(destPath); err == nil && len(entries) > 0 {
		return &FetchError{URL: repoURL, Err: fmt.Errorf("destination %s already exists and is not empty", destPath)}
	}

	cmd := gitCommand("clone", repoURL, destPath)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		return &FetchError{URL: repoURL, Err: fmt.Errorf("git clone: %w\noutput: %s", err, output)}
	}
	return nil
}

// fileName derives the local file name from the URL's final path segment.
func fileName(rawURL string) string {
	name := "download"
	if u, err := url.Parse(rawURL); err == nil {
		if base := path.Base(u.Path); base != "" && base != "." && base != "/" {
			name = base
		}
	}
	return name
}
