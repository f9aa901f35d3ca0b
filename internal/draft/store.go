// Package draft holds the editable, not yet committed copy of a widget's
// settings and fans every change out to preview listeners.
package draft

import (
	"sync"

	"github.com/alexisbeaulieu97/quotewidget/internal/domain/widget"
)

// Listener receives the preview snapshot after every change.
type Listener func(preview widget.Settings)

// Store keeps the draft and the preview snapshot. Both are value copies, so a
// snapshot handed to a renderer is never mutated afterwards. No range or
// closed-set validation happens here.
type Store struct {
	mu        sync.RWMutex
	draft     widget.Settings
	preview   widget.Settings
	listeners []Listener
}

// NewStore creates a store whose draft and preview start at initial.
func NewStore(initial widget.Settings) *Store {
	return &Store{draft: initial, preview: initial}
}

// Subscribe registers a preview listener and returns a function removing it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, l)
	idx := len(s.listeners) - 1
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if idx < len(s.listeners) {
			s.listeners[idx] = nil
		}
	}
}

// Load replaces the whole draft and resets the preview to match.
func (s *Store) Load(settings widget.Settings) {
	s.mu.Lock()
	s.draft = settings
	s.preview = settings
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	notify(listeners, settings)
}

// Set replaces exactly one field in the draft and the preview and returns the
// new draft.
func (s *Store) Set(field widget.Field, value any) (widget.Settings, error) {
	s.mu.Lock()
	next, err := s.draft.With(field, value)
	if err != nil {
		s.mu.Unlock()
		return s.Draft(), err
	}
	preview, err := s.preview.With(field, value)
	if err != nil {
		s.mu.Unlock()
		return s.Draft(), err
	}
	s.draft = next
	s.preview = preview
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	notify(listeners, preview)
	return next, nil
}

// Draft returns a copy of the current draft.
func (s *Store) Draft() widget.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft
}

// Preview returns a copy of the current preview snapshot.
func (s *Store) Preview() widget.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.preview
}

func (s *Store) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		if l != nil {
			out = append(out, l)
		}
	}
	return out
}

func notify(listeners []Listener, preview widget.Settings) {
	for _, l := range listeners {
		l(preview)
	}
}
