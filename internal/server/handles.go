package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mj1618/axkit/ax"
)

// handleEntry holds a registered element with its last-use timestamp.
type handleEntry struct {
	el       *ax.Element
	lastUsed time.Time
}

// Handles maps opaque IDs to elements returned by earlier tool calls, so an
// agent can keep working on an element without re-walking its path. Entries
// idle for longer than the TTL are dropped.
type Handles struct {
	mu      sync.Mutex
	entries map[string]handleEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewHandles creates a registry. A ttl of 0 keeps entries until Clear.
func NewHandles(ttl time.Duration) *Handles {
	return &Handles{
		entries: make(map[string]handleEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Put registers el and returns its handle. An element already registered
// under an equal native reference keeps its existing handle.
func (h *Handles) Put(el *ax.Element) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sweep()

	now := h.now()
	for id, entry := range h.entries {
		if entry.el.Equal(el) {
			entry.lastUsed = now
			h.entries[id] = entry
			return id
		}
	}
	id := uuid.NewString()
	h.entries[id] = handleEntry{el: el, lastUsed: now}
	return id
}

// Get returns the element for id and refreshes its timestamp.
func (h *Handles) Get(id string) (*ax.Element, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sweep()

	entry, ok := h.entries[id]
	if !ok {
		return nil, false
	}
	entry.lastUsed = h.now()
	h.entries[id] = entry
	return entry.el, true
}

// Len returns the number of live handles.
func (h *Handles) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sweep()
	return len(h.entries)
}

// Clear drops every handle.
func (h *Handles) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = make(map[string]handleEntry)
}

// sweep drops expired entries. The caller must hold h.mu.
func (h *Handles) sweep() {
	if h.ttl == 0 {
		return
	}
	now := h.now()
	for id, entry := range h.entries {
		if now.Sub(entry.lastUsed) >= h.ttl {
			delete(h.entries, id)
		}
	}
}
