package dedup

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultExtensions is the image extension allow-list applied when no
// explicit list is configured.
var DefaultExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".webp"}

// ExtensionSet is a case-insensitive file extension filter.
type ExtensionSet map[string]struct{}

// NewExtensionSet normalizes the given extensions into a set. Leading dots
// are optional and case is ignored, so "JPG", ".jpg" and "jpg" are
// equivalent. An empty list yields the default image allow-list.
func NewExtensionSet(exts []string) ExtensionSet {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	set := make(ExtensionSet, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return set
}

// Match reports whether path carries one of the allowed extensions.
func (s ExtensionSet) Match(path string) bool {
	_, ok := s[strings.ToLower(filepath.Ext(path))]
	return ok
}

// CollectImageFiles walks every root concurrently and returns the sorted
// list of matching file paths. A root that does not exist, or a subtree
// that cannot be read, is reported through warnf and skipped rather than
// failing the collection.
func CollectImageFiles(ctx context.Context, roots []string, exts ExtensionSet, warnf func(format string, args ...any)) ([]string, error) {
	if warnf == nil {
		warnf = func(string, ...any) {}
	}

	var mu sync.Mutex
	var files []string

	g, ctx := errgroup.WithContext(ctx)
	for _, root := range roots {
		g.Go(func() error {
			if _, err := os.Stat(root); os.IsNotExist(err) {
				warnf("directory does not exist: %s", root)
				return nil
			}
			return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					warnf("cannot read %s: %v", path, err)
					if d != nil && d.IsDir() {
						return fs.SkipDir
					}
					return nil
				}
				if ctx.Err() != nil {
					return ctx.Err()
				}
				if d.IsDir() || !exts.Match(path) {
					return nil
				}
				mu.Lock()
				files = append(files, path)
				mu.Unlock()
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
