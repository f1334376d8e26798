package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps session keys in a JSON file. Every Set and Delete rewrites
// the whole file.
type FileStore struct {
	path string
	mu   sync.Mutex
	data map[string]string
}

// NewFileStore returns a FileStore backed by path. It loads the file if it
// exists; a missing file yields an empty store.
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path}
	if err := fs.load(); err != nil {
		return nil, err
	}
	return fs, nil
}

func (fs *FileStore) load() error {
	f, err := os.Open(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			fs.data = make(map[string]string)
			return nil
		}
		return err
	}
	defer f.Close()

	data := make(map[string]string)
	if err := json.NewDecoder(f).Decode(&data); err != nil {
		return fmt.Errorf("decode %s: %w", fs.path, err)
	}
	fs.data = data
	return nil
}

// save must be called with fs.mu held.
func (fs *FileStore) save() error {
	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(fs.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(fs.data)
}

func (fs *FileStore) Set(_ context.Context, key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.data[key] = value
	return fs.save()
}

func (fs *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	v, ok := fs.data[key]
	return v, ok, nil
}

func (fs *FileStore) Delete(_ context.Context, keys ...string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for _, k := range keys {
		delete(fs.data, k)
	}
	return fs.save()
}
