package directory

import (
	"bytes"
	"os"
	"sync"
)

// Store holds the loaded dataset. The slice handed out by All is never
// mutated, Reload swaps it for a freshly read one.
type Store struct {
	path string

	mutex     sync.RWMutex
	officials []Official
	raw       []byte
}

// OpenStore reads the dataset at path.
func OpenStore(path string) (*Store, error) {
	s := &Store{path: path}
	err := s.Reload()
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NewStaticStore wraps an in-memory dataset, Reload is a no-op on it.
func NewStaticStore(officials []Official) (*Store, error) {
	raw, err := Encode(officials)
	if err != nil {
		return nil, err
	}
	return &Store{officials: officials, raw: raw}, nil
}

// Reload re-reads the dataset file, the previous dataset is kept on error.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	officials, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.officials = officials
	s.raw = raw
	return nil
}

func (s *Store) All() []Official {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.officials
}

// Raw is the dataset file as it was read.
func (s *Store) Raw() []byte {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.raw
}

// Find returns the first official with the given name.
func (s *Store) Find(name string) (Official, bool) {
	for _, o := range s.All() {
		if o.Name == name {
			return o, true
		}
	}
	return Official{}, false
}
