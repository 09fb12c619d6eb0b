// Package history provides history stacks for targets without a browser
// history API.
package history

import (
	"sync"

	"github.com/bnema/remotenav/internal/application/port"
)

type entry struct {
	marker    port.HistoryMarker
	hasMarker bool
}

// Memory is an in-process history stack with browser semantics: Push
// truncates forward entries and does not notify, Back/Forward notify
// listeners once per call.
type Memory struct {
	mu        sync.Mutex
	entries   []entry
	pos       int
	listeners map[int]func()
	nextID    int
}

// NewMemory creates a stack holding one unmarked entry.
func NewMemory() *Memory {
	return &Memory{
		entries:   []entry{{}},
		listeners: make(map[int]func()),
	}
}

// Push implements port.History.
func (h *Memory) Push(marker port.HistoryMarker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.pos+1], entry{marker: marker, hasMarker: true})
	h.pos++
}

// Back implements port.History.
func (h *Memory) Back(steps int) {
	h.move(-steps)
}

// Forward moves the position forward by steps entries.
func (h *Memory) Forward(steps int) {
	h.move(steps)
}

func (h *Memory) move(delta int) {
	h.mu.Lock()
	target := min(max(h.pos+delta, 0), len(h.entries)-1)
	if target == h.pos {
		h.mu.Unlock()
		return
	}
	h.pos = target
	listeners := make([]func(), 0, len(h.listeners))
	for id := 0; id < h.nextID; id++ {
		if fn, ok := h.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	h.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Current implements port.History.
func (h *Memory) Current() (port.HistoryMarker, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	e := h.entries[h.pos]
	return e.marker, e.hasMarker
}

// OnPositionChanged implements port.History.
func (h *Memory) OnPositionChanged(fn func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}

// Len returns the number of entries, forward entries included.
func (h *Memory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Position returns the index of the current entry.
func (h *Memory) Position() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pos
}
