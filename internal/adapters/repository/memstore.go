package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/burdigala/melee/internal/domain/model"
	"github.com/burdigala/melee/pkg/metrics"
)

// MemStore implements Store over an immutable in-memory index. Name lookups
// are O(1); List returns fighters in the order the roster supplied them.
// The index is built once and never written again, so reads need no locking.
type MemStore struct {
	byName  map[string]model.Fighter
	ordered []model.Fighter
}

// NewMemStore builds a store from the supplied roster. It enforces the
// data-integrity preconditions the rest of the system assumes: non-empty
// names and no duplicates.
func NewMemStore(ctx context.Context, fighters []model.Fighter) (*MemStore, error) {
	s := &MemStore{
		byName:  make(map[string]model.Fighter, len(fighters)),
		ordered: make([]model.Fighter, 0, len(fighters)),
	}
	for _, f := range fighters {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		if _, ok := s.byName[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
		f.Name = name
		s.byName[name] = f
		s.ordered = append(s.ordered, f)
	}
	metrics.UpdateRosterSize(len(s.ordered))
	return s, nil
}

// Get returns the fighter with the given name.
func (s *MemStore) Get(ctx context.Context, name string) (model.Fighter, error) {
	start := time.Now()
	defer func() {
		metrics.RecordRosterQueryLatency(float64(time.Since(start).Milliseconds()))
	}()

	f, ok := s.byName[name]
	if !ok {
		return model.Fighter{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return f, nil
}

// List returns all fighters in load order. Callers must not mutate the
// returned slice's fighters; a fresh slice header is returned each call.
func (s *MemStore) List(ctx context.Context) []model.Fighter {
	out := make([]model.Fighter, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Count returns the number of fighters in the roster.
func (s *MemStore) Count(ctx context.Context) int {
	return len(s.ordered)
}
