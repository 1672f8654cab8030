// Package glob expands doublestar file patterns.
package glob

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob is a set of include patterns minus a set of exclude patterns.
type Glob struct {
	Patterns []string
	Excludes []string
}

// Validate reports the first invalid pattern.
func (g Glob) Validate() error {
	for _, pattern := range append(append([]string(nil), g.Patterns...), g.Excludes...) {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid glob pattern: %q", pattern)
		}
	}
	return nil
}

// Apply returns the sorted, deduplicated names in fsys matching any pattern
// and no exclude.
func Apply(g Glob, fsys fs.FS) ([]string, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	// part 1: gather candidates
	seen := make(map[string]bool)
	var includes []string
	for _, pattern := range g.Patterns {
		names, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, name := range names {
			if !seen[name] {
				seen[name] = true
				includes = append(includes, name)
			}
		}
	}

	// part 2: filter candidates
	var srcs []string
loop:
	for _, name := range includes {
		for _, exclude := range g.Excludes {
			if ok, _ := doublestar.Match(exclude, name); ok {
				continue loop
			}
		}
		srcs = append(srcs, name)
	}

	sort.Strings(srcs)
	return srcs, nil
}
