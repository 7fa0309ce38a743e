package store

import (
	"path/filepath"
	"sync"

	"qgcalc/internal/domain"
)

const fileExt = ".json"

// FileStore keeps each key in <dir>/<key>.json.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

var _ domain.KVStore = (*FileStore)(nil)

func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// Path returns the file that backs key.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, key+fileExt)
}

func (s *FileStore) Get(key string) ([]byte, bool, error) {
	if err := validKey(key); err != nil {
		return nil, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.Path(key))
	if err != nil {
		return nil, false, unavailable("read", key, err)
	}
	if b == nil {
		return nil, false, nil
	}
	return b, true, nil
}

func (s *FileStore) Set(key string, value []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFile(s.Path(key), value, 0o600); err != nil {
		return unavailable("write", key, err)
	}
	return nil
}
