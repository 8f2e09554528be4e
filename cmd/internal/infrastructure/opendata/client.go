// Package opendata downloads and unpacks the accreditation registry's
// open-data archive.
package opendata

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/log"
)

type Client struct {
	dataURL    string
	cacheDir   string
	httpClient *http.Client
}

func NewClient(dataURL, cacheDir string) *Client {
	return &Client{
		dataURL:    dataURL,
		cacheDir:   cacheDir,
		httpClient: &http.Client{},
	}
}

// DownloadAndExtract fetches the archive into the cache directory, unpacks
// it there and returns the extracted file names. Any transport or archive
// failure is returned as-is; the caller treats it as fatal for the run.
func (c *Client) DownloadAndExtract(ctx context.Context) ([]string, error) {
	log.Infof("Downloading data from %s", c.dataURL)

	if err := os.MkdirAll(c.cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	zipPath := filepath.Join(c.cacheDir, "data.zip")
	if err := c.download(ctx, zipPath); err != nil {
		return nil, err
	}

	names, err := c.extract(zipPath)
	if err != nil {
		return nil, err
	}
	log.Infof("Archive extracted, files: %v", names)
	return names, nil
}

func (c *Client) download(ctx context.Context, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.dataURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("downloading archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed with status code: %d", resp.StatusCode)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("writing archive: %w", err)
	}
	return nil
}

func (c *Client) extract(zipPath string) ([]string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer r.Close()

	var names []string
	for _, file := range r.File {
		if err := c.extractFile(file); err != nil {
			return nil, fmt.Errorf("extracting %s: %w", file.Name, err)
		}
		names = append(names, file.Name)
	}
	return names, nil
}

func (c *Client) extractFile(file *zip.File) error {
	// Reject entries that would escape the cache directory.
	dest := filepath.Join(c.cacheDir, file.Name)
	rel, err := filepath.Rel(c.cacheDir, dest)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return fmt.Errorf("illegal archive path %q", file.Name)
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(dest, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}

// FindXML walks dir and returns the first XML file found, or "" when there
// is none.
func FindXML(dir string) (string, error) {
	var found string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".xml") {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return found, nil
}
