// Package store owns the in-memory CV state and its file-backed persistence.
// The Store is the single source of truth; every mutation replaces the whole
// aggregate and notifies subscribers, which is what drives debounced
// auto-save.
package store

import (
	"sync"

	"github.com/jonathan/cv-builder/internal/types"
)

// Snapshot is an immutable view of everything the application persists.
type Snapshot struct {
	CV       types.CVData
	Template types.TemplateID
}

// Store holds the current CV aggregate and selected template behind a mutex.
// All reads copy; all writes replace.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
	subs []func(Snapshot)
}

// New returns a store initialized to the empty aggregate and default template.
func New() *Store {
	return &Store{snap: Snapshot{CV: types.Empty(), Template: types.DefaultTemplate}}
}

// NewFromSnapshot returns a store seeded with previously loaded state.
func NewFromSnapshot(snap Snapshot) *Store {
	if !types.KnownTemplate(snap.Template) {
		snap.Template = types.DefaultTemplate
	}
	return &Store{snap: snap}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// CV returns the current aggregate.
func (s *Store) CV() types.CVData {
	return s.Snapshot().CV
}

// Template returns the currently selected template.
func (s *Store) Template() types.TemplateID {
	return s.Snapshot().Template
}

// Update applies fn to the current aggregate and swaps in its result, all
// under the write lock, so concurrent updates never observe the same input
// snapshot and none is lost. When fn reports false the aggregate is left
// untouched and subscribers are not notified. fn must not call back into the
// store.
func (s *Store) Update(fn func(types.CVData) (types.CVData, bool)) bool {
	s.mu.Lock()
	next, ok := fn(s.snap.CV)
	if !ok {
		s.mu.Unlock()
		return false
	}
	s.snap.CV = next
	snap := s.snap
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return true
}

// Replace swaps in a new aggregate and notifies subscribers.
func (s *Store) Replace(cv types.CVData) {
	s.mu.Lock()
	s.snap.CV = cv
	snap := s.snap
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// ReplaceTemplate selects a template. Unknown ids are rejected and leave the
// selection unchanged.
func (s *Store) ReplaceTemplate(id types.TemplateID) bool {
	if !types.KnownTemplate(id) {
		return false
	}

	s.mu.Lock()
	s.snap.Template = id
	snap := s.snap
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return true
}

// Reset restores the empty aggregate and default template.
func (s *Store) Reset() {
	s.mu.Lock()
	s.snap = Snapshot{CV: types.Empty(), Template: types.DefaultTemplate}
	snap := s.snap
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// Subscribe registers a callback invoked after every mutation. Callbacks run
// on the mutating goroutine and must not call back into the store's write
// methods.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
