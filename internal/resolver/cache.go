package resolver

import (
	"context"
	"sync"

	"shortcuts/internal/models"
)

// suggestionCache is the single slot of suggestion rows shared by the sync
// and delayed paths of one session. Writes carry the generation token handed
// out when their fetch began and are dropped once a newer query has
// advanced the generation.
type suggestionCache struct {
	mu        sync.Mutex
	rows      []models.Result
	gen       uint64
	lastInput string
	cancel    context.CancelFunc
}

// snapshot returns a copy of the cached rows.
func (c *suggestionCache) snapshot() []models.Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.rows) == 0 {
		return nil
	}
	out := make([]models.Result, len(c.rows))
	copy(out, c.rows)
	return out
}

// observe records input seen by the sync path. A changed input makes any
// in-flight fetch stale.
func (c *suggestionCache) observe(input string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if input == c.lastInput {
		return
	}
	c.lastInput = input
	c.advanceLocked()
}

// begin starts a delayed resolution for input. It supersedes the previous
// one, cancelling its fetch, and returns the context and token for the new one.
func (c *suggestionCache) begin(ctx context.Context, input string) (context.Context, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastInput = input
	c.advanceLocked()

	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	return fetchCtx, c.gen
}

func (c *suggestionCache) advanceLocked() {
	c.gen++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// commit stores rows if token is still current.
func (c *suggestionCache) commit(token uint64, rows []models.Result) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.gen {
		return false
	}
	c.rows = make([]models.Result, len(rows))
	copy(c.rows, rows)
	c.finishLocked()
	return true
}

// clear empties the slot if token is still current.
func (c *suggestionCache) clear(token uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.gen {
		return false
	}
	c.rows = nil
	c.finishLocked()
	return true
}

// finishLocked releases the current fetch context.
func (c *suggestionCache) finishLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// release frees the fetch context of token without touching the rows.
func (c *suggestionCache) release(token uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token == c.gen {
		c.finishLocked()
	}
}
