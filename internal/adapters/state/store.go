// Package state persists member fingerprints between invocations so that
// generate can skip recomputation when nothing changed.
package state

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/unify/internal/core/domain"
	"go.trai.ch/unify/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the state file written next to the configuration.
const DefaultFileName = ".unify-state.yaml"

var _ ports.StateStore = (*Store)(nil)

// Store implements ports.StateStore using a flat YAML file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.MemberState
}

// NewStore creates a new StateStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.MemberState),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read state file")
	}

	if len(data) == 0 {
		return nil
	}

	if err := yaml.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal state file")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := yaml.Marshal(s.cache)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal state file")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for state file")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write state file")
	}

	return nil
}

// Get retrieves the recorded state for a member module path.
func (s *Store) Get(name string) (*domain.MemberState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.cache[name]
	if !ok {
		return nil, nil
	}
	return &state, nil
}

// Put stores the state for a member.
func (s *Store) Put(state domain.MemberState) error {
	s.mu.Lock()
	s.cache[state.Name] = state
	s.mu.Unlock()

	return s.save()
}
