package relay

import (
	"sort"
	"sync"
)

// Registry tracks the live session per lps. Each lps has at most one
// session; registering a new one supersedes the previous.
type Registry struct {
	sessions map[string]*Session
	mtx      *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		mtx:      &sync.RWMutex{},
	}
}

// Register makes s the live session for its lps and returns the session it
// replaced, if any. The caller is responsible for shutting the previous one
// down.
func (r *Registry) Register(s *Session) *Session {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	previous := r.sessions[s.LpsID]
	r.sessions[s.LpsID] = s

	return previous
}

// Unregister removes s only if it is still the live session for its lps
func (r *Registry) Unregister(s *Session) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if current, ok := r.sessions[s.LpsID]; ok && current == s {
		delete(r.sessions, s.LpsID)
	}
}

func (r *Registry) Get(lpsID string) (*Session, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s, ok := r.sessions[lpsID]

	return s, ok
}

// List returns session info ordered by lps id
func (r *Registry) List() []*Info {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	out := make([]*Info, 0, len(r.sessions))

	for _, s := range r.sessions {
		out = append(out, s.Info())
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].LpsID < out[j].LpsID
	})

	return out
}

// ShutdownAll shuts down and removes every registered session
func (r *Registry) ShutdownAll() {
	r.mtx.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mtx.Unlock()

	for _, s := range sessions {
		if err := s.Shutdown(); err != nil {
			s.log.Warningf("error during shutdown: %s", err)
		}
	}
}
