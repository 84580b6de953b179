// Package walker enumerates the source files a mining run should visit.
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// minableExtensions are the extensions the directory mode mines. Everything
// else in the directory is skipped.
var minableExtensions = map[string]string{
	".js": "JavaScript",
	".ts": "TypeScript",
}

// FileInfo holds metadata about one file selected for mining.
type FileInfo struct {
	Path     string // Full path to the file.
	Name     string // Base name of the directory entry.
	Language string // Detected language.
}

// DetectLanguage returns the minable language for a filename, or "" when the
// file is not minable.
func DetectLanguage(name string) string {
	return minableExtensions[strings.ToLower(filepath.Ext(name))]
}

// List enumerates the immediate entries of dir (non-recursive), keeping
// regular files with a minable extension that pass the include/exclude
// globs. Entries come back in the directory's own listing order, unsorted.
func List(dir string, include, exclude []string) ([]FileInfo, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("walker: opening %s: %w", dir, err)
	}
	defer f.Close()

	// File.ReadDir keeps the filesystem's ordering; os.ReadDir would sort.
	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("walker: reading %s: %w", dir, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()

		lang := DetectLanguage(name)
		if lang == "" {
			continue
		}

		if !MatchesInclude(name, include) || MatchesExclude(name, exclude) {
			continue
		}

		files = append(files, FileInfo{
			Path:     filepath.Join(dir, name),
			Name:     name,
			Language: lang,
		})
	}
	return files, nil
}

// MatchesInclude returns true if the name matches any of the include
// patterns. If patterns is empty, everything is included.
func MatchesInclude(name string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(name, patterns)
}

// MatchesExclude returns true if the name matches any of the exclude
// patterns. If patterns is empty, nothing is excluded.
func MatchesExclude(name string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(name, patterns)
}

func matchesAny(name string, patterns []string) bool {
	normalized := filepath.ToSlash(name)
	for _, pattern := range patterns {
		if matched, err := doublestar.PathMatch(filepath.ToSlash(pattern), normalized); err == nil && matched {
			return true
		}
	}
	return false
}
