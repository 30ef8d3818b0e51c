package kb

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// matchDocuments walks dir and returns the files matching any of the glob
// patterns. Patterns are relative to dir and support recursive wildcards
// ("**/*.jsonld"). Results are sorted for deterministic load order.
func matchDocuments(dir string, patterns []string) ([]string, error) {
	var matched []string
	seen := make(map[string]bool)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		for _, pattern := range patterns {
			ok, err := doublestar.Match(pattern, rel)
			if err != nil {
				return err
			}
			if ok && !seen[path] {
				seen[path] = true
				matched = append(matched, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(matched)
	return matched, nil
}
