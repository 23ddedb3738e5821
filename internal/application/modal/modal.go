// Package modal holds the overlay state machine shared by every screen
// that opens a form or confirmation dialog. Exactly one modal may be
// active; opening while one is active replaces it rather than stacking.
package modal

import "sync"

// Modal is the active overlay content.
type Modal struct {
	Kind    string // e.g. "course_create", "course_edit", "confirm_delete"
	Title   string
	Content any // screen-specific payload handed to the template
}

// Shell enforces the single-active-modal rule and the scroll lock that
// accompanies an open overlay. Close is idempotent and every close path
// (button, backdrop, Escape) routes through it.
type Shell struct {
	mu     sync.Mutex
	active *Modal
}

// NewShell creates an empty Shell.
func NewShell() *Shell {
	return &Shell{}
}

// Open activates a modal, replacing any currently active one.
// PRE: kind and title are non-empty
// POST: the given modal is the only active one; scroll is locked
func (s *Shell) Open(kind, title string, content any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = &Modal{Kind: kind, Title: title, Content: content}
}

// Close deactivates the active modal, if any.
// PRE: none
// POST: no modal is active; scroll lock is released
func (s *Shell) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
}

// Active returns the current modal and whether one is open.
func (s *Shell) Active() (Modal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return Modal{}, false
	}
	return *s.active, true
}

// ScrollLocked reports whether page scroll should be suppressed.
// INVARIANT: true exactly while a modal is active
func (s *Shell) ScrollLocked() bool {
	_, open := s.Active()
	return open
}
