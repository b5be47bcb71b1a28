// Package route tracks the funnel's current location as a path string.
// Screens never mutate funnel state directly; they navigate, and the
// application reacts to location changes.
package route

import "sync"

// Location exposes the current path and change notifications.
type Location interface {
	// Current returns the current path, always starting with "/".
	Current() string

	// Navigate replaces the current path and notifies subscribers.
	// Navigating to the current path still notifies, so a re-entry of
	// the same funnel entry point re-runs its load sequence.
	Navigate(path string)

	// Subscribe registers fn to run after every navigation. The
	// returned function removes the subscription.
	Subscribe(fn func()) func()
}

// Memory is an in-process Location.
type Memory struct {
	mu   sync.Mutex
	path string
	subs map[int]func()
	next int
}

// NewMemory returns a Memory location starting at path. An empty path
// starts at "/".
func NewMemory(path string) *Memory {
	return &Memory{path: Clean(path), subs: make(map[int]func())}
}

func (m *Memory) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.path
}

func (m *Memory) Navigate(path string) {
	m.mu.Lock()
	m.path = Clean(path)
	fns := make([]func(), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	// Run subscribers outside the lock so they may call back in.
	for _, fn := range fns {
		fn()
	}
}

func (m *Memory) Subscribe(fn func()) func() {
	m.mu.Lock()
	id := m.next
	m.next++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Clean normalizes a path to the "/slug" form: a leading slash is
// enforced and a trailing slash is dropped.
func Clean(path string) string {
	if path == "" || path == "/" {
		return "/"
	}
	if path[0] != '/' {
		path = "/" + path
	}
	if n := len(path); n > 1 && path[n-1] == '/' {
		path = path[:n-1]
	}
	return path
}
