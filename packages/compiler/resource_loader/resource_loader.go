package resource_loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResourceLoader fetches template and stylesheet text by URL. Load is the
// normalizer's single suspension point; implementations must honor ctx.
type ResourceLoader interface {
	Load(ctx context.Context, url string) (string, error)
}

// FileLoader loads resources from the file system, jailed to a root directory
type FileLoader struct {
	root string
}

// NewFileLoader creates a FileLoader rooted at the given directory
func NewFileLoader(root string) *FileLoader {
	return &FileLoader{
		root: root,
	}
}

// Load reads the file at url relative to the loader's root
func (l *FileLoader) Load(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := filepath.Join(l.root, filepath.FromSlash(url))
	rel, err := filepath.Rel(l.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("resource %q is outside the loader root %q", url, l.root)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
