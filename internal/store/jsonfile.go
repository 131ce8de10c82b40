package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// JSONFile persists a single JSON document on disk. Every write replaces the
// whole file. Updates are serialized per JSONFile value.
type JSONFile[T any] struct {
	path string
	mu   sync.Mutex
}

// NewJSONFile creates a store backed by path
func NewJSONFile[T any](path string) *JSONFile[T] {
	return &JSONFile[T]{path: path}
}

// Path returns the backing file path
func (f *JSONFile[T]) Path() string {
	return f.path
}

// Ensure writes def to disk when the file does not exist yet
func (f *JSONFile[T]) Ensure(def T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := os.Stat(f.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return f.write(def)
}

// Load reads and decodes the file. A missing file yields the zero value of T.
func (f *JSONFile[T]) Load() (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

// Save replaces the file contents with v
func (f *JSONFile[T]) Save(v T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.write(v)
}

// Update runs a read-modify-write cycle while holding the lock. Nothing is
// written when fn returns an error.
func (f *JSONFile[T]) Update(fn func(*T) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, err := f.read()
	if err != nil {
		return err
	}
	if err := fn(&v); err != nil {
		return err
	}
	return f.write(v)
}

func (f *JSONFile[T]) read() (T, error) {
	var v T
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return v, nil
		}
		return v, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("failed to decode %s: %w", f.path, err)
	}
	return v, nil
}

func (f *JSONFile[T]) write(v T) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
