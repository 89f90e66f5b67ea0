package stepcontext

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// StoreFileVersion is the current version of the store file format.
const StoreFileVersion = 1

// storeFile is the on-disk layout of a FileStore.
type storeFile struct {
	Version int               `cbor:"1,keyasint"`
	SavedAt time.Time         `cbor:"2,keyasint"`
	Entries map[string][]byte `cbor:"3,keyasint"`
}

// FileStore is a Store persisted to a single CBOR file, so shared data
// survives between processes of a test run. Every call reads the file;
// every write rewrites it.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a FileStore backed by path. The file is created on
// the first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Set stores data under id.
func (s *FileStore) Set(id string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return err
	}
	f.Entries[id] = data
	return s.save(f)
}

// Get returns the data stored under id.
func (s *FileStore) Get(id string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return nil, err
	}
	data, ok := f.Entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDataNotFound, id)
	}
	return data, nil
}

// Delete removes id.
func (s *FileStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := f.Entries[id]; !ok {
		return fmt.Errorf("%w: %q", ErrDataNotFound, id)
	}
	delete(f.Entries, id)
	return s.save(f)
}

// IDs returns the stored identifiers in ascending order.
func (s *FileStore) IDs() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(f.Entries))
	for id := range f.Entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Clear removes the store file.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// load reads the store file. A missing file is an empty store.
func (s *FileStore) load() (*storeFile, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &storeFile{Version: StoreFileVersion, Entries: make(map[string][]byte)}, nil
	}
	if err != nil {
		return nil, err
	}

	f := &storeFile{}
	if err := unmarshalShared(data, f); err != nil {
		return nil, fmt.Errorf("read store %s: %w", s.path, err)
	}
	if f.Version != StoreFileVersion {
		return nil, fmt.Errorf("read store %s: unsupported version %d", s.path, f.Version)
	}
	if f.Entries == nil {
		f.Entries = make(map[string][]byte)
	}
	return f, nil
}

func (s *FileStore) save(f *storeFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	f.Version = StoreFileVersion
	f.SavedAt = time.Now()

	data, err := marshalShared(f)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
