package bootstrap

import (
	"archive/zip"
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootstrap-machine/internal/config"
)

// redirectXDG points the XDG base directories at a temp dir for the duration
// of the test so nothing lands in the real home.
func redirectXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, ".local", "share"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestInstallFonts(t *testing.T) {
	redirectXDG(t)
	captured := captureCommands(t)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"JetBrainsMono-Regular.ttf": "ttf bytes",
		"OFL.txt":                   "license",
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(buf.Bytes())
	}))
	defer srv.Close()

	err := installFonts(config.FontSettings{
		Name: "JetBrainsMono",
		URL:  srv.URL + "/JetBrainsMono.zip",
	})
	require.NoError(t, err)

	// Font files land under the per-user font dir; non-font files do not.
	fontDir := filepath.Join(config.FontsDir(), "JetBrainsMono")
	raw, err := os.ReadFile(filepath.Join(fontDir, "JetBrainsMono-Regular.ttf"))
	require.NoError(t, err)
	assert.Equal(t, "ttf bytes", string(raw))
	_, err = os.Stat(filepath.Join(fontDir, "OFL.txt"))
	assert.True(t, os.IsNotExist(err))

	// The font cache is refreshed afterward.
	require.Len(t, *captured, 1)
	assert.Equal(t, []string{"fc-cache", "-f"}, (*captured)[0])
}

func TestInstallFontsUnconfiguredIsNoop(t *testing.T) {
	captured := captureCommands(t)
	require.NoError(t, installFonts(config.FontSettings{}))
	assert.Empty(t, *captured)
}
