package repository

import (
	"auction-coordinator/internal/biddingerrors"
	model "auction-coordinator/internal/models"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// State is everything the coordinator needs to resume an auction
type State struct {
	Auction model.Auction `yaml:"auction"`
	Teams   []model.Team  `yaml:"teams"`
	History []model.Bid   `yaml:"history"`
}

// StateStore defines the persistence interface for auction state
type StateStore interface {
	Load() (State, error)
	Save(state State) error
}

// MemoryStore is a concurrency-safe in-memory implementation of StateStore
type MemoryStore struct {
	mu    sync.RWMutex
	state *State
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the last saved state
func (s *MemoryStore) Load() (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state == nil {
		return State{}, fmt.Errorf("load state from memory: %w", biddingerrors.ErrNoState)
	}
	return cloneState(*s.state), nil
}

// Save replaces the stored state
func (s *MemoryStore) Save(state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := cloneState(state)
	s.state = &st
	return nil
}

// FileStore persists state as a YAML document on disk
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the file at path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the state file. A missing file yields ErrNoState.
func (s *FileStore) Load() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return State{}, fmt.Errorf("load state from %s: %w", s.path, biddingerrors.ErrNoState)
	}
	if err != nil {
		return State{}, fmt.Errorf("load state from %s: %w", s.path, err)
	}

	var state State
	if err := yaml.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("decode state from %s: %w", s.path, err)
	}
	return state, nil
}

// Save writes the state file atomically by renaming a temp file over it
func (s *FileStore) Save(state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".auction-state-*")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace state file %s: %w", s.path, err)
	}
	return nil
}

func cloneState(s State) State {
	out := State{
		Auction: s.Auction.Clone(),
		Teams:   make([]model.Team, 0, len(s.Teams)),
		History: append([]model.Bid{}, s.History...),
	}
	for _, t := range s.Teams {
		out.Teams = append(out.Teams, t.Clone())
	}
	return out
}
