//go:build !js

package scorestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File stores the high score as a one-key JSON document on disk.
type File struct {
	path string
}

// Open returns the platform default store: a JSON file at path.
func Open(path string) *File {
	return &File{path: path}
}

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

// Load reads the stored score. A missing file is not an error and yields 0.
func (f *File) Load() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read high score %s: %w", f.path, err)
	}
	var doc map[string]int
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("decode high score %s: %w", f.path, err)
	}
	score := doc[Key]
	if score < 0 {
		score = 0
	}
	return score, nil
}

// Save writes score atomically via a temp file in the same directory.
func (f *File) Save(score int) error {
	data, err := json.MarshalIndent(map[string]int{Key: score}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode high score: %w", err)
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create score dir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("create temp score file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp score file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace high score %s: %w", f.path, err)
	}
	return nil
}
