package credstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File persists the session triple as a small JSON document so a CLI session
// survives process restarts. Writes go through a temp file and rename so a
// crash mid-write leaves the previous triple intact.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a file-backed store at path. The file is created lazily on
// the first Set.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Get(context.Context) (Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("read credentials: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		// A corrupt file reads as no session rather than failing every
		// authorization check.
		return Session{}, nil
	}
	return s, nil
}

func (f *File) Set(_ context.Context, s Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".credstore-*")
	if err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(name, f.path); err != nil {
		os.Remove(name)
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

func (f *File) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}
