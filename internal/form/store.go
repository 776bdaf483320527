package form

import (
	"sync"
	"time"
)

// DefaultSessionTTL is how long an idle visitor's form is kept
const DefaultSessionTTL = 30 * time.Minute

type entry struct {
	form     *Form
	lastSeen time.Time
}

// Store keeps one Form per visitor session. Evicting a session closes its
// form, which cancels any pending reset.
type Store struct {
	mu      sync.Mutex
	forms   map[string]*entry
	newForm func() *Form
	ttl     time.Duration
	now     func() time.Time
	stop    chan struct{}
	done    chan struct{}
	started bool
	closed  bool
}

// NewStore creates a store using newForm for fresh sessions. Call Start to run
// the idle-session janitor and Close to release everything.
func NewStore(newForm func() *Form, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Store{
		forms:   make(map[string]*entry),
		newForm: newForm,
		ttl:     ttl,
		now:     time.Now,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start runs the janitor every interval until Close
func (s *Store) Start(interval time.Duration) {
	if interval <= 0 {
		interval = s.ttl / 2
	}
	s.mu.Lock()
	if s.started || s.closed {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-s.stop:
				return
			}
		}
	}()
}

// Get returns the session's form, creating it on first use, and marks the
// session as active. It returns nil after Close.
func (s *Store) Get(sessionID string) *Form {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	e, ok := s.forms[sessionID]
	if !ok {
		e = &entry{form: s.newForm()}
		s.forms[sessionID] = e
	}
	e.lastSeen = s.now()
	return e.form
}

// Lookup returns an existing session's form and marks it active. Unlike Get
// it never creates one, so read-only page views cannot grow the store.
func (s *Store) Lookup(sessionID string) (*Form, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.forms[sessionID]
	if !ok || s.closed {
		return nil, false
	}
	e.lastSeen = s.now()
	return e.form, true
}

// Peek returns the session's form without creating or touching it
func (s *Store) Peek(sessionID string) (*Form, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.forms[sessionID]
	if !ok {
		return nil, false
	}
	return e.form, true
}

// Len reports the number of live sessions
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.forms)
}

// Sweep evicts sessions idle for longer than the TTL and returns how many went
func (s *Store) Sweep() int {
	s.mu.Lock()
	cutoff := s.now().Add(-s.ttl)
	var expired []*Form
	for id, e := range s.forms {
		if e.lastSeen.Before(cutoff) {
			expired = append(expired, e.form)
			delete(s.forms, id)
		}
	}
	s.mu.Unlock()

	for _, f := range expired {
		f.Close()
	}
	return len(expired)
}

// Close stops the janitor, waits for it to exit and closes every form
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	started := s.started
	forms := s.forms
	s.forms = make(map[string]*entry)
	s.mu.Unlock()

	close(s.stop)
	if started {
		<-s.done
	}
	for _, e := range forms {
		e.form.Close()
	}
}
