// Package resolver implements PATH lookup for external commands.
package resolver

import (
	"os"
	"path/filepath"
	"sort"
)

// Resolve searches PATH for an executable regular file named name, in
// directory-list order. It reports the PATH entry joined with name (absolute
// only when that entry is) and whether one was found. Directories that cannot be read are skipped silently.
func Resolve(name string) (string, bool) {
	for _, dir := range pathDirs() {
		candidate := filepath.Join(dir, name)
		if isExecutableFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// Enumerate lists every distinct executable name visible on PATH, sorted
// alphabetically. Used by the REPL's completer.
func Enumerate() []string {
	seen := make(map[string]bool)
	var names []string
	for _, dir := range pathDirs() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			full := filepath.Join(dir, e.Name())
			if !isExecutableFile(full) {
				continue
			}
			if !seen[e.Name()] {
				seen[e.Name()] = true
				names = append(names, e.Name())
			}
		}
	}
	sort.Strings(names)
	return names
}

func pathDirs() []string {
	return filepath.SplitList(os.Getenv("PATH"))
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0o111 != 0
}
