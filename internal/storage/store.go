package storage

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// Store owns an output directory of rendered images.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Init creates the directory if it is missing. Calling it again is a no-op.
func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

func (s *Store) Path(name string) string {
	return filepath.Join(s.baseDir, name)
}

// WriteImage encodes img as PNG under name and returns the full path.
func (s *Store) WriteImage(name string, img image.Image) (string, error) {
	path := s.Path(name)
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// ReadImage decodes a previously written image.
func (s *Store) ReadImage(name string) (image.Image, error) {
	return imgio.Open(s.Path(name))
}

// List returns the PNG file names in the directory, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".png") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Remove deletes the files in the directory whose names match the
// filepath.Match pattern and returns how many were removed.
func (s *Store) Remove(pattern string) (int, error) {
	paths, err := filepath.Glob(filepath.Join(s.baseDir, pattern))
	if err != nil {
		return 0, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	removed := 0
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("remove %s: %w", path, err)
		}
		removed++
	}
	return removed, nil
}

// EnsureDirs creates each directory if absent and reports it on out.
func EnsureDirs(dirs []string, out io.Writer) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
		fmt.Fprintf(out, "Created directory: %s\n", dir)
	}
	return nil
}
