// Package idgen issues timestamp identifiers for articles and comments.
package idgen

import (
	"sync"
	"time"
)

// Generator hands out Unix-millisecond IDs. IDs are strictly increasing:
// two calls within the same millisecond get consecutive values.
type Generator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// New creates a generator backed by the wall clock
func New() *Generator {
	return NewWithClock(time.Now)
}

// NewWithClock creates a generator with an injectable clock
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Next returns the next identifier
func (g *Generator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe makes sure future IDs are greater than id, so seeded records
// never collide with generated ones.
func (g *Generator) Observe(id int64) {
	g.mu.Lock()
	if id > g.last {
		g.last = id
	}
	g.mu.Unlock()
}
