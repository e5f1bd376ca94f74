package fs

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/pwalkowski/richmark"
)

// Ensure Writer implements richmark.ScriptWriter at compile time.
var _ richmark.ScriptWriter = (*Writer)(nil)

// Writer injects JSON-LD script tags into page files. Writes are atomic:
// content goes to a temporary file first and is renamed into place.
type Writer struct {
	rootDir string
}

// NewWriter creates a Writer operating on the directory tree at rootDir.
func NewWriter(rootDir string) *Writer {
	return &Writer{rootDir: rootDir}
}

var (
	jsonLDScriptRe = regexp.MustCompile(`(?is)[ \t]*<script\s+type="application/ld\+json">.*?</script>\n?`)
	headCloseRe    = regexp.MustCompile(`(?i)</head>`)
	bodyCloseRe    = regexp.MustCompile(`(?i)</body>`)
)

// WriteScripts injects one script tag per result into the page at the given
// path. Previously injected JSON-LD tags are removed first so rebuilds stay
// idempotent. Tags go before </head>, falling back to </body>, falling back
// to appending at the end of the document.
func (w *Writer) WriteScripts(ctx context.Context, path string, results []richmark.Result) error {
	fullPath := filepath.Join(w.rootDir, filepath.FromSlash(path))

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return richmark.Errorf(richmark.ENOTFOUND, "page not found: %s", path)
		}
		return richmark.Errorf(richmark.EINTERNAL, "failed to read page %s: %v", path, err)
	}

	// The rename below replaces the file, so carry its mode over.
	mode := os.FileMode(0644)
	if info, err := os.Stat(fullPath); err == nil {
		mode = info.Mode().Perm()
	}

	source := InjectScripts(string(data), results)

	tmpPath := filepath.Join(filepath.Dir(fullPath), "."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmpPath, []byte(source), mode); err != nil {
		return richmark.Errorf(richmark.EINTERNAL, "failed to write page %s: %v", path, err)
	}
	// WriteFile's mode is subject to the umask; chmod makes it exact.
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return richmark.Errorf(richmark.EINTERNAL, "failed to chmod page %s: %v", path, err)
	}
	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return richmark.Errorf(richmark.EINTERNAL, "failed to replace page %s: %v", path, err)
	}
	return nil
}

// StripScripts returns the page source with all JSON-LD script tags
// removed. Build runs hash the stripped source so injected output doesn't
// invalidate the incremental skip check.
func StripScripts(source string) string {
	return jsonLDScriptRe.ReplaceAllString(source, "")
}

// InjectScripts returns the page source with one JSON-LD script tag per
// result. Existing JSON-LD tags are stripped before injection.
func InjectScripts(source string, results []richmark.Result) string {
	source = StripScripts(source)
	if len(results) == 0 {
		return source
	}

	var b strings.Builder
	for _, result := range results {
		b.WriteString(`<script type="application/ld+json">`)
		b.Write(result.JSONLD)
		b.WriteString("</script>\n")
	}
	tags := b.String()

	if loc := headCloseRe.FindStringIndex(source); loc != nil {
		return source[:loc[0]] + tags + source[loc[0]:]
	}
	if loc := bodyCloseRe.FindStringIndex(source); loc != nil {
		return source[:loc[0]] + tags + source[loc[0]:]
	}
	if !strings.HasSuffix(source, "\n") {
		source += "\n"
	}
	return source + tags
}
