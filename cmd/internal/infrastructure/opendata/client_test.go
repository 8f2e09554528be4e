package opendata

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDownloadAndExtract(t *testing.T) {
	archive := buildZip(t, map[string]string{
		"export/data.xml": "<Certificates/>",
		"readme.txt":      "open data",
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(archive)
	}))
	defer srv.Close()

	cacheDir := t.TempDir()
	client := NewClient(srv.URL, cacheDir)

	names, err := client.DownloadAndExtract(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"export/data.xml", "readme.txt"}, names)

	content, err := os.ReadFile(filepath.Join(cacheDir, "export", "data.xml"))
	require.NoError(t, err)
	assert.Equal(t, "<Certificates/>", string(content))
}

func TestDownloadFailsOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, t.TempDir())
	_, err := client.DownloadAndExtract(context.Background())
	assert.Error(t, err)
}

func TestExtractRejectsPathTraversal(t *testing.T) {
	archive := buildZip(t, map[string]string{"../escape.xml": "nope"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(archive)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, t.TempDir())
	_, err := client.DownloadAndExtract(context.Background())
	assert.Error(t, err)
}

func TestFindXML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "data.XML"), []byte("x"), 0o644))

	path, err := FindXML(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "data.XML"), path)
}

func TestFindXMLEmpty(t *testing.T) {
	path, err := FindXML(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "", path)
}
