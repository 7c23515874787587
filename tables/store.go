// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tables

import (
	"fmt"
	"os"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// Load reads a TOML tables file layered over the defaults: keys absent
// from the file keep their Default() values. An empty path returns the
// defaults unchanged.
func Load(path string) (*Tables, error) {
	t := Default()
	if path == "" {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tables file: %w", err)
	}
	if err := toml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse tables file %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tables file %s: %w", path, err)
	}
	return t, nil
}

// Store holds the active tables and supports atomic reload while
// requests are being served.
type Store struct {
	mu      sync.RWMutex
	path    string
	current *Tables
}

// NewStore loads the tables at path (or the defaults when path is
// empty) and returns a store serving them.
func NewStore(path string) (*Store, error) {
	t, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, current: t}, nil
}

// Current returns the active tables. Callers must not mutate the
// returned value.
func (s *Store) Current() *Tables {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Reload re-reads the tables file and swaps it in. On error the
// previously active tables stay in effect.
func (s *Store) Reload() (*Tables, error) {
	t, err := Load(s.path)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.current = t
	s.mu.Unlock()
	return t, nil
}
