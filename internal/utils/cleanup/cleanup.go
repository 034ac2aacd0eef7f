package cleanup

import "sync"

// Cleanup collects teardown functions and runs them at most once, in reverse
// order of registration. Calling Cleanup again (or concurrently) is a no-op.
type Cleanup struct {
	mu  sync.Mutex
	fns []func()
	ran bool
}

func (c *Cleanup) Add(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ran {
		// Too late to defer it; the owner is already torn down.
		fn()
		return
	}
	c.fns = append(c.fns, fn)
}

func (c *Cleanup) Cleanup() {
	c.mu.Lock()
	fns := c.fns
	c.fns = nil
	c.ran = true
	c.mu.Unlock()

	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}

// Done reports whether Cleanup has been called.
func (c *Cleanup) Done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ran
}
