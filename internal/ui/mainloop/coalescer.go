package mainloop

import (
	"sync"

	"github.com/bnema/remotenav/internal/application/port"
)

// Coalescer merges bursts of same-key loop tasks: while a task for a key is
// queued, posting again only replaces the callback that will run.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]bool
	callbacks map[string]func()
	poster    port.Poster
	destroyed bool
}

func NewCoalescer(poster port.Poster) *Coalescer {
	if poster == nil {
		panic("mainloop.NewCoalescer: poster cannot be nil")
	}

	return &Coalescer{
		pending:   make(map[string]bool),
		callbacks: make(map[string]func()),
		poster:    poster,
	}
}

func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.callbacks[key] = fn
	if c.pending[key] {
		c.mu.Unlock()
		return
	}
	c.pending[key] = true
	poster := c.poster
	c.mu.Unlock()

	poster.Post(func() {
		c.mu.Lock()
		if c.destroyed {
			delete(c.pending, key)
			delete(c.callbacks, key)
			c.mu.Unlock()
			return
		}
		fn := c.callbacks[key]
		delete(c.pending, key)
		delete(c.callbacks, key)
		c.mu.Unlock()

		if fn != nil {
			fn()
		}
	})
}

// Pending reports whether a task for key is waiting to run.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending[key]
}

func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[string]bool{}
	c.callbacks = map[string]func(){}
	c.mu.Unlock()
}

// Cancel drops the callback queued for key. The already posted task still
// runs but does nothing unless key is posted again before it.
func (c *Coalescer) Cancel(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.callbacks, key)
}
