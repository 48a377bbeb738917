package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"goldrun/internal/domain"
)

// ExpectedSuffix is appended to a case name to form its snapshot file name
const ExpectedSuffix = ".expected.txt"

// Store locates cases in a single directory and resolves their files
type Store struct {
	dir string
	ext string
}

// NewStore creates a new Store for the given case directory and input extension
func NewStore(dir, ext string) *Store {
	return &Store{
		dir: filepath.Clean(dir),
		ext: "." + strings.TrimPrefix(ext, "."),
	}
}

// Dir returns the case directory
func (s *Store) Dir() string {
	return s.dir
}

// DiscoverAll returns the names of all cases in the directory, sorted
func (s *Store) DiscoverAll() ([]string, error) {
	info, err := os.Stat(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCasesDirNotFound, s.dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrCasesDirNotFound, s.dir)
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.dir, err)
	}

	var names []string
	for _, entry := range entries {
		fileName := entry.Name()
		if !strings.HasSuffix(fileName, s.ext) || strings.HasSuffix(fileName, ExpectedSuffix) {
			continue
		}

		// Follow symlinks so linked inputs are discovered like Exists sees them
		info, err := os.Stat(filepath.Join(s.dir, fileName))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		name := strings.TrimSuffix(fileName, s.ext)
		if name == "" {
			continue
		}
		names = append(names, name)
	}

	// Listing order is not guaranteed across platforms
	sort.Strings(names)
	return names, nil
}

// Resolve builds the input and snapshot paths for a case name.
// The file system is not consulted.
func (s *Store) Resolve(name string) domain.TestCase {
	return domain.TestCase{
		Name:         name,
		InputPath:    filepath.Join(s.dir, name+s.ext),
		ExpectedPath: filepath.Join(s.dir, name+ExpectedSuffix),
	}
}

// Exists reports whether the input file of a case exists
func (s *Store) Exists(name string) bool {
	info, err := os.Stat(s.Resolve(name).InputPath)
	return err == nil && !info.IsDir()
}

// HasSnapshot reports whether a case has a recorded snapshot
func (s *Store) HasSnapshot(name string) bool {
	_, err := os.Stat(s.Resolve(name).ExpectedPath)
	return err == nil
}
