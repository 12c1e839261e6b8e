// Package prefs is a small JSON-file key-value store, the local analog of a
// platform preference store. It holds the seed-version markers and persists
// independently of the relational database file, so wiping one never touches
// the other.
package prefs

import (
	"encoding/json"
	"os"
	"sync"
)

type Store struct {
	path string

	mu     sync.Mutex
	values map[string]json.RawMessage
}

// Open loads the store at path, starting empty when the file does not exist
// yet.
func Open(path string) (*Store, error) {
	store := &Store{
		path:   path,
		values: make(map[string]json.RawMessage),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return store, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &store.values); err != nil {
		return nil, err
	}
	return store, nil
}

// GetInt returns the int stored under key, or fallback when the key is
// absent or holds something else.
func (s *Store) GetInt(key string, fallback int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.values[key]
	if !ok {
		return fallback
	}
	var value int
	if err := json.Unmarshal(raw, &value); err != nil {
		return fallback
	}
	return value
}

// SetInt stores an int under key and flushes to disk.
func (s *Store) SetInt(key string, value int) error {
	return s.set(key, value)
}

// GetBool returns the bool stored under key, or fallback when the key is
// absent or holds something else.
func (s *Store) GetBool(key string, fallback bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.values[key]
	if !ok {
		return fallback
	}
	var value bool
	if err := json.Unmarshal(raw, &value); err != nil {
		return fallback
	}
	return value
}

// SetBool stores a bool under key and flushes to disk.
func (s *Store) SetBool(key string, value bool) error {
	return s.set(key, value)
}

// GetString returns the string stored under key, or fallback when the key
// is absent or holds something else.
func (s *Store) GetString(key string, fallback string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.values[key]
	if !ok {
		return fallback
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return fallback
	}
	return value
}

// SetString stores a string under key and flushes to disk.
func (s *Store) SetString(key string, value string) error {
	return s.set(key, value)
}

func (s *Store) set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.values[key] = raw
	return s.flush()
}

// flush writes the whole map out. Writes go through a temp file and rename
// so a crash mid-write cannot truncate the store.
func (s *Store) flush() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
