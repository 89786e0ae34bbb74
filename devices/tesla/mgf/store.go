package mgf

import (
	"os"
	"path/filepath"
	"sync"
)

// Store is the persistent byte storage backing a tape. Each block is a
// named byte object. ReadAll of a missing object must return an error
// for which os.IsNotExist holds on its cause.
type Store interface {
	// ReadAll returns the full contents of the named object.
	ReadAll(name string) ([]byte, error)

	// WriteAll replaces the named object with p, creating it if
	// needed.
	WriteAll(name string, p []byte) error

	// List returns the names of all stored objects.
	List() ([]string, error)
}

// DirStore keeps each block as a file in a directory.
type DirStore struct {
	dir string
}

var _ Store = &DirStore{}

// NewDirStore creates a store rooted at the given directory.
// The directory is created on the first write.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

// ReadAll returns the full contents of the named object.
func (s *DirStore) ReadAll(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.dir, name))
}

// WriteAll replaces the named object with p.
func (s *DirStore) WriteAll(name string, p []byte) error {
	if err := os.MkdirAll(s.dir, 0744); err != nil && !os.IsExist(err) {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), p, 0644)
}

// List returns the names of all stored objects.
func (s *DirStore) List() ([]string, error) {
	ents, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, ent := range ents {
		if !ent.IsDir() {
			names = append(names, ent.Name())
		}
	}
	return names, nil
}

// MemStore keeps blocks in memory. It backs tests and tape image
// manipulation that never touches disk.
type MemStore struct {
	m       sync.Mutex
	objects map[string][]byte
}

var _ Store = &MemStore{}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{objects: make(map[string][]byte)}
}

// ReadAll returns the full contents of the named object.
func (s *MemStore) ReadAll(name string) ([]byte, error) {
	s.m.Lock()
	defer s.m.Unlock()

	p, ok := s.objects[name]
	if !ok {
		return nil, os.ErrNotExist
	}

	q := make([]byte, len(p))
	copy(q, p)
	return q, nil
}

// WriteAll replaces the named object with p.
func (s *MemStore) WriteAll(name string, p []byte) error {
	s.m.Lock()
	defer s.m.Unlock()

	q := make([]byte, len(p))
	copy(q, p)
	s.objects[name] = q
	return nil
}

// List returns the names of all stored objects.
func (s *MemStore) List() ([]string, error) {
	s.m.Lock()
	defer s.m.Unlock()

	names := make([]string, 0, len(s.objects))
	for name := range s.objects {
		names = append(names, name)
	}
	return names, nil
}
