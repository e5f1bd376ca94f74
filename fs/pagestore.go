// Package fs provides filesystem-backed page access and script injection.
package fs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pwalkowski/richmark"
)

// Ensure PageStore implements richmark.PageStore at compile time.
var _ richmark.PageStore = (*PageStore)(nil)

// PageStore reads site pages from a directory tree rooted at rootDir.
// Page paths are relative to the root and use forward slashes.
type PageStore struct {
	rootDir string
}

// NewPageStore creates a PageStore rooted at the given directory.
func NewPageStore(rootDir string) *PageStore {
	return &PageStore{rootDir: rootDir}
}

func (s *PageStore) fullPath(path string) string {
	return filepath.Join(s.rootDir, filepath.FromSlash(path))
}

// ReadPage returns the source text of the page at the given path.
func (s *PageStore) ReadPage(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(s.fullPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return "", richmark.Errorf(richmark.ENOTFOUND, "page not found: %s", path)
		}
		return "", richmark.Errorf(richmark.EINTERNAL, "failed to read page %s: %v", path, err)
	}
	return string(data), nil
}

// ModTime returns the page's last modification time.
func (s *PageStore) ModTime(ctx context.Context, path string) (time.Time, error) {
	info, err := os.Stat(s.fullPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, richmark.Errorf(richmark.ENOTFOUND, "page not found: %s", path)
		}
		return time.Time{}, richmark.Errorf(richmark.EINTERNAL, "failed to stat page %s: %v", path, err)
	}
	return info.ModTime(), nil
}

// IndexExists reports whether the directory holds an index document.
func (s *PageStore) IndexExists(ctx context.Context, dir string) (bool, error) {
	for _, name := range []string{"index.html", "index.htm"} {
		path := dir
		if path != "" {
			path += "/"
		}
		path += name
		if _, err := os.Stat(s.fullPath(path)); err == nil {
			return true, nil
		} else if !os.IsNotExist(err) {
			return false, richmark.Errorf(richmark.EINTERNAL, "failed to stat %s: %v", path, err)
		}
	}
	return false, nil
}

// Pages returns the relative paths of all HTML pages under the root,
// sorted in walk order.
func (s *PageStore) Pages(ctx context.Context) ([]string, error) {
	var pages []string
	err := filepath.WalkDir(s.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".html" && ext != ".htm" {
			return nil
		}
		rel, err := filepath.Rel(s.rootDir, path)
		if err != nil {
			return err
		}
		pages = append(pages, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, richmark.Errorf(richmark.EINTERNAL, "failed to walk %s: %v", s.rootDir, err)
	}
	return pages, nil
}
