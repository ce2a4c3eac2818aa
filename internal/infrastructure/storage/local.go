package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage keeps media on the local filesystem under a base
// directory and serves it from a base URL. Filenames are prefixed with
// a UUID so uploads never collide.
type LocalStorage struct {
	baseDir string
	baseURL string
}

// NewLocalStorage creates a local media store
func NewLocalStorage(baseDir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &LocalStorage{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Upload streams a file into the folder and returns its URL
func (s *LocalStorage) Upload(ctx context.Context, r io.Reader, name, folder string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create folder: %w", err)
	}

	filename := uuid.New().String() + "_" + filepath.Base(name)
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}

	return s.baseURL + "/" + folder + "/" + filename, nil
}

// Delete removes a previously uploaded file by its URL
func (s *LocalStorage) Delete(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rel := strings.TrimPrefix(url, s.baseURL+"/")
	if rel == url || strings.Contains(rel, "..") {
		return fmt.Errorf("url %q is not managed by this store", url)
	}
	if err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(rel))); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
