// Package history keeps a bounded, chronologically-ordered record of
// recently classified stream elements; `vtstream run` pushes every
// element that passes its kind filter into it.
package history

import (
	"container/list"
	"sync"

	"github.com/vtstream-dev/vtstream/internal/vtparse"
)

// Ring is a fixed-capacity FIFO of vtparse.StreamElement values. Unlike
// the cache it's adapted from, entries never expire by time — only by
// capacity, since stream elements don't carry a meaningful TTL.
//
// Grounded on the teacher's internal/cache/cache.go Cache: a
// mutex-guarded container/list with a capacity bound. TTL eviction
// dropped; LRU "move to front on read" dropped too, since replay wants
// insertion order, not recency-of-access order.
type Ring struct {
	mu       sync.Mutex
	entries  *list.List
	capacity int
}

// New returns a Ring holding at most capacity elements. A non-positive
// capacity is treated as unbounded.
func New(capacity int) *Ring {
	return &Ring{entries: list.New(), capacity: capacity}
}

// Push appends el, evicting the oldest entry if the ring is at capacity.
func (r *Ring) Push(el vtparse.StreamElement) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries.PushBack(el)
	if r.capacity > 0 {
		for r.entries.Len() > r.capacity {
			r.entries.Remove(r.entries.Front())
		}
	}
}

// Snapshot returns every retained element, oldest first.
func (r *Ring) Snapshot() []vtparse.StreamElement {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]vtparse.StreamElement, 0, r.entries.Len())
	for e := r.entries.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(vtparse.StreamElement))
	}
	return out
}

// Len returns the number of retained elements.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries.Len()
}
