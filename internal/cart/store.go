package cart

import (
	"fmt"
	"os"
)

// Store persists the whole serialized cart under a single key,
// localStorage style: Load reports ok=false when nothing was saved yet.
type Store interface {
	Load() (blob []byte, ok bool, err error)
	Save(blob []byte) error
}

// FileStore keeps the cart blob in one file on disk
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Load() ([]byte, bool, error) {
	blob, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cart file: %w", err)
	}
	return blob, true, nil
}

func (s *FileStore) Save(blob []byte) error {
	if err := os.WriteFile(s.Path, blob, 0644); err != nil {
		return fmt.Errorf("write cart file: %w", err)
	}
	return nil
}

// MemStore is an in-memory Store for tests
type MemStore struct {
	blob []byte
	ok   bool
}

func (s *MemStore) Load() ([]byte, bool, error) {
	return append([]byte(nil), s.blob...), s.ok, nil
}

func (s *MemStore) Save(blob []byte) error {
	s.blob = append([]byte(nil), blob...)
	s.ok = true
	return nil
}
