package intercept

import "github.com/vovakirdan/drop-arcade/internal/core"

// Entity is an incoming object the player intercepts.
type Entity struct {
	X, Y float64 // Bottom-left corner in world units
	W, H float64
}

// Rect returns the entity's bounding rectangle.
func (e Entity) Rect() core.RectF {
	return core.NewRectF(e.X, e.Y, e.W, e.H)
}

// Pool is an unordered, growable collection of active entities.
// Removal swaps the last entity into the freed slot, so callers that remove
// while iterating must walk the pool from the end.
type Pool struct {
	items []Entity
}

// Add appends an entity to the pool.
func (p *Pool) Add(e Entity) {
	p.items = append(p.items, e)
}

// Len returns the number of active entities.
func (p *Pool) Len() int {
	return len(p.items)
}

// At returns a pointer to the entity at index i for in-place updates.
// The pointer is invalidated by the next Add or RemoveAt.
func (p *Pool) At(i int) *Entity {
	return &p.items[i]
}

// RemoveAt drops the entity at index i.
func (p *Pool) RemoveAt(i int) {
	last := len(p.items) - 1
	p.items[i] = p.items[last]
	p.items = p.items[:last]
}

// Items returns the active entities. The slice must not be modified.
func (p *Pool) Items() []Entity {
	return p.items
}

// Reset removes all entities, keeping the allocated capacity.
func (p *Pool) Reset() {
	p.items = p.items[:0]
}
