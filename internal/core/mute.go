package core

import (
	"sort"
	"sync"

	"github.com/samber/lo"
)

// MuteSet tracks sender names whose messages a handle refuses to render.
// Each handle owns exactly one set and mutates it only through its own
// mute/unmute commands, but rooms read it on every broadcast pass, so access
// is guarded.
type MuteSet struct {
	mu    sync.Mutex
	names map[string]struct{}
}

// NewMuteSet returns an empty mute set.
func NewMuteSet() *MuteSet {
	return &MuteSet{names: make(map[string]struct{})}
}

// Add inserts a name and reports whether the set changed. Re-muting an
// already-muted name is a silent no-op.
func (s *MuteSet) Add(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.names[name]; ok {
		return false
	}
	s.names[name] = struct{}{}
	return true
}

// Remove deletes a name and reports whether the set changed. Unmuting a name
// that was never muted is a silent no-op.
func (s *MuteSet) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.names[name]; !ok {
		return false
	}
	delete(s.names, name)
	return true
}

// Contains reports whether messages from name are suppressed.
func (s *MuteSet) Contains(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.names[name]
	return ok
}

// Len returns the number of muted names.
func (s *MuteSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.names)
}

// Names returns the muted names in sorted order.
func (s *MuteSet) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := lo.Keys(s.names)
	sort.Strings(names)
	return names
}
