package discovery

import (
	"path/filepath"
	"strings"
)

// Filter narrows case names by a name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the case names matching pattern. Patterns may use
// filepath.Match wildcards ("vec*", "add?"); "*part*" style patterns also
// match when every literal part occurs in the name, and a pattern without
// wildcards is a substring match. An empty pattern keeps everything.
func (f *Filter) FilterByName(names []string, pattern string) []string {
	if pattern == "" {
		return names
	}

	hasWildcard := strings.ContainsAny(pattern, "*?")
	var filtered []string
	for _, name := range names {
		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			filtered = append(filtered, name)
			continue
		}

		if !hasWildcard {
			if strings.Contains(name, pattern) {
				filtered = append(filtered, name)
			}
			continue
		}

		if strings.Contains(pattern, "*") && containsAllParts(name, strings.Split(pattern, "*")) {
			filtered = append(filtered, name)
		}
	}

	return filtered
}

// containsAllParts reports whether name contains every non-empty part, and
// at least one part is non-empty
func containsAllParts(name string, parts []string) bool {
	nonEmpty := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		if strings.Contains(part, "?") || !strings.Contains(name, part) {
			return false
		}
		nonEmpty = true
	}
	return nonEmpty
}
