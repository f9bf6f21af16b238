package session

import (
	"sync"
	"time"

	"github.com/simplehac/simpletoolkit/internal/model"
)

// Store keeps every session the manager has seen and the control each
// tracked session is bound to. Reads return copies.
type Store struct {
	mu        sync.RWMutex
	sessions  map[string]*model.DownloadSession
	order     []string           // session ids, newest first
	controls  map[string]Control // session id -> bound control
	byControl map[string]string  // control id -> session id
	tracked   map[string]bool
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		sessions:  make(map[string]*model.DownloadSession),
		controls:  make(map[string]Control),
		byControl: make(map[string]string),
		tracked:   make(map[string]bool),
	}
}

// Register tracks s and binds it to control. A control already bound to
// another session is moved to s. A session already known, for example from
// an early push event, keeps its stored state and only gains the identity
// fields the push left empty. Register reports whether s was new.
func (st *Store) Register(s *model.DownloadSession, control Control) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	existing, known := st.sessions[s.ID]
	if !known {
		st.putLocked(s)
	} else {
		if existing.URL == "" {
			existing.URL = s.URL
		}
		if existing.Path == "" {
			existing.Path = s.Path
		}
		if existing.Filename == "" {
			existing.Filename = s.Filename
		}
	}
	st.tracked[s.ID] = true

	if control == nil {
		return !known
	}
	controlID := control.ControlID()
	if prev, ok := st.byControl[controlID]; ok && prev != s.ID {
		delete(st.controls, prev)
	}
	st.byControl[controlID] = s.ID
	st.controls[s.ID] = control
	return !known
}

// Upsert merges s into the store. It returns the previous status and
// whether the session was new.
func (st *Store) Upsert(s *model.DownloadSession) (model.SessionStatus, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	existing, ok := st.sessions[s.ID]
	if !ok {
		st.putLocked(s)
		return "", true
	}

	prev := existing.Status
	merged := s.Clone()
	if merged.URL == "" {
		merged.URL = existing.URL
	}
	if merged.Path == "" {
		merged.Path = existing.Path
	}
	if merged.Filename == "" {
		merged.Filename = existing.Filename
	}
	if merged.Status == "" {
		merged.Status = existing.Status
	}
	merged.UpdatedAt = time.Now()
	st.sessions[s.ID] = merged
	return prev, false
}

func (st *Store) putLocked(s *model.DownloadSession) {
	if _, ok := st.sessions[s.ID]; !ok {
		st.order = append([]string{s.ID}, st.order...)
	}
	c := s.Clone()
	c.UpdatedAt = time.Now()
	st.sessions[s.ID] = c
}

// Get returns a copy of the session with id
func (st *Store) Get(id string) (*model.DownloadSession, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	return s.Clone(), true
}

// ControlFor returns the control bound to session id
func (st *Store) ControlFor(id string) (Control, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	c, ok := st.controls[id]
	return c, ok
}

// IsTracked reports whether id is in the active registry
func (st *Store) IsTracked(id string) bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.tracked[id]
}

// SetStatus updates the status of a known session
func (st *Store) SetStatus(id string, status model.SessionStatus) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return false
	}
	s.Status = status
	s.UpdatedAt = time.Now()
	return true
}

// Untrack drops id from the active registry and releases its control
func (st *Store) Untrack(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.tracked, id)
	if c, ok := st.controls[id]; ok {
		if st.byControl[c.ControlID()] == id {
			delete(st.byControl, c.ControlID())
		}
		delete(st.controls, id)
	}
}

// Active returns tracked sessions that have not reached a terminal status
func (st *Store) Active() []*model.DownloadSession {
	st.mu.RLock()
	defer st.mu.RUnlock()

	active := make([]*model.DownloadSession, 0, len(st.tracked))
	for _, id := range st.order {
		s := st.sessions[id]
		if st.tracked[id] && s.Status.IsActive() {
			active = append(active, s.Clone())
		}
	}
	return active
}

// All returns every known session, newest first
func (st *Store) All() []*model.DownloadSession {
	st.mu.RLock()
	defer st.mu.RUnlock()

	all := make([]*model.DownloadSession, 0, len(st.order))
	for _, id := range st.order {
		all = append(all, st.sessions[id].Clone())
	}
	return all
}
