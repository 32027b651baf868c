package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store keeps each record key in its own file under a directory, giving the
// same per-key, last-write-wins semantics as a browser's local storage.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create record directory: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	info, err := os.Stat(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habitflow init' first")
		}
		return fmt.Errorf("failed to read record directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("record path is not a directory: %s", s.dir)
	}
	return nil
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) Read(key string) (string, bool, error) {
	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read record %q: %w", key, err)
	}
	return string(data), true, nil
}

func (s *Store) Write(key, value string) error {
	if err := os.WriteFile(s.keyPath(key), []byte(value), 0600); err != nil {
		return fmt.Errorf("failed to write record %q: %w", key, err)
	}
	return nil
}

func (s *Store) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	var keys []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(entry.Name(), ".json"))
	}
	return keys, nil
}

func (s *Store) GetConfigPath() string {
	return s.dir
}

func (s *Store) keyPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}
