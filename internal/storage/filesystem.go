package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputDir writes rendered wallpapers below a root directory.
type OutputDir struct {
	root string
}

// NewOutputDir creates root if needed.
func NewOutputDir(root string) (*OutputDir, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("storage: output directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create output directory: %w", err)
	}
	return &OutputDir{root: root}, nil
}

func (d *OutputDir) Root() string { return d.root }

// Save writes data to name through a temporary file so readers never see a
// partial image. It returns the path written.
func (d *OutputDir) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	rel, err := cleanName(name)
	if err != nil {
		return "", err
	}
	dest := filepath.Join(d.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("storage: create directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".wallpaper-*")
	if err != nil {
		return "", fmt.Errorf("storage: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("storage: write %s: %w", rel, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("storage: close %s: %w", rel, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("storage: chmod %s: %w", rel, err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", fmt.Errorf("storage: rename %s: %w", rel, err)
	}
	return dest, nil
}

// cleanName turns name into a slash-separated path that stays inside the root.
func cleanName(name string) (string, error) {
	name = strings.TrimSpace(strings.ReplaceAll(name, "\\", "/"))
	name = strings.TrimLeft(strings.TrimPrefix(name, "./"), "/")
	if name == "" {
		return "", errors.New("storage: file name is required")
	}
	cleaned := filepath.ToSlash(filepath.Clean(name))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("storage: invalid file name %q", name)
	}
	return cleaned, nil
}
