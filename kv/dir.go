package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Dir is a Store keeping one JSON file per key under a directory.
type Dir struct {
	path string
}

// NewDir returns a Dir rooted at path. The directory is created on the
// first write.
func NewDir(path string) *Dir { return &Dir{path: path} }

func (d *Dir) file(key string) string { return filepath.Join(d.path, key+".json") }

func (d *Dir) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(d.file(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read key %q: %w", key, err)
	}
	return data, true, nil
}

func (d *Dir) Set(_ context.Context, key string, value []byte) error {
	if err := os.MkdirAll(d.path, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", d.path, err)
	}
	// Write-then-rename so a crash mid-write never truncates the previous value.
	tmp := d.file(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0644); err != nil {
		return fmt.Errorf("could not write key %q: %w", key, err)
	}
	if err := os.Rename(tmp, d.file(key)); err != nil {
		return fmt.Errorf("could not commit key %q: %w", key, err)
	}
	return nil
}

func (d *Dir) Delete(_ context.Context, key string) error {
	err := os.Remove(d.file(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not delete key %q: %w", key, err)
	}
	return nil
}
