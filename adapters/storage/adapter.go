// Package storage provides the key-value store behind persisted recommendations.
// Supports multiple backends: file, memory, badger.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/google/uuid"
)

// Backend is a storage backend type
type Backend string

const (
	BackendFile   Backend = "file"
	BackendMemory Backend = "memory"
	BackendBadger Backend = "badger"
)

// Backends returns the supported backends
func Backends() []Backend {
	return []Backend{BackendFile, BackendMemory, BackendBadger}
}

// ErrNotFound is returned when a slot holds no value
var ErrNotFound = errors.New("storage: key not found")

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// Store is a scoped key-value store with named slots
type Store interface {
	// Get returns the value of a slot or ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value of a slot
	Set(ctx context.Context, key string, value []byte) error

	// Delete empties a slot; deleting an empty slot is not an error
	Delete(ctx context.Context, key string) error

	// Close closes the store
	Close() error
}

func checkKey(key string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("invalid storage key %q", key)
	}
	return nil
}

// FileStore is a file-based storage backend, one JSON file per key
type FileStore struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileStore creates a file store
func NewFileStore(basePath string) (*FileStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileStore{basePath: basePath}, nil
}

// Path returns the storage directory
func (s *FileStore) Path() string {
	return s.basePath
}

func (s *FileStore) filePath(key string) string {
	return filepath.Join(s.basePath, key+".json")
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.filePath(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// write then rename so readers never see a partial file
	tmp := filepath.Join(s.basePath, "."+key+"-"+uuid.New().String()+".tmp")
	if err := os.WriteFile(tmp, value, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.filePath(key)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.filePath(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}

// MemoryStore is an in-memory storage backend (for testing)
type MemoryStore struct {
	values map[string][]byte
	mu     sync.RWMutex
}

// NewMemoryStore creates a memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string][]byte),
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// DefaultPath returns the default storage directory
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".aws-recommender"
	}
	return filepath.Join(home, ".aws-recommender", "data")
}

// StoreFactory creates stores by backend type
func StoreFactory(backend Backend, config map[string]string) (Store, error) {
	path := config["path"]
	if path == "" {
		path = DefaultPath()
	}

	switch backend {
	case BackendFile, "":
		return NewFileStore(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendBadger:
		return NewBadgerStore(BadgerOptions{
			Path:     path,
			InMemory: config["in_memory"] == "true",
		})
	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}
}

// Ensure interfaces are implemented
var _ io.Closer = (*FileStore)(nil)
var _ io.Closer = (*MemoryStore)(nil)
var _ Store = (*FileStore)(nil)
var _ Store = (*MemoryStore)(nil)
