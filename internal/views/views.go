// Package views tracks which top-level screen is active. Navigation is a
// pure state transition: nothing happens here beyond swapping the name.
package views

import (
	"errors"
	"sync"
)

// View names the dashboard's top-level screens.
type View string

const (
	Landing   View = "landing"
	Login     View = "login"
	Register  View = "register"
	Dashboard View = "dashboard"
	Students  View = "students"
	Expenses  View = "expenses"
	Assistant View = "assistant"
)

// ErrUnknownView rejects navigation to a name outside the set.
var ErrUnknownView = errors.New("unknown view")

// Valid reports whether v is one of the named views.
func Valid(v View) bool {
	switch v {
	case Landing, Login, Register, Dashboard, Students, Expenses, Assistant:
		return true
	}
	return false
}

// Router holds the current view.
type Router struct {
	mu      sync.Mutex
	current View
}

// NewRouter starts at the given view, defaulting to the landing page.
func NewRouter(start View) *Router {
	if !Valid(start) {
		start = Landing
	}
	return &Router{current: start}
}

// Current returns the active view.
func (r *Router) Current() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Navigate switches to the named view.
func (r *Router) Navigate(v View) error {
	if !Valid(v) {
		return ErrUnknownView
	}
	r.mu.Lock()
	r.current = v
	r.mu.Unlock()
	return nil
}
