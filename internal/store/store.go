// Package store holds the in-memory collections backing the API. Records
// live in an ordered slice guarded by a RWMutex, so every handler sees a
// consistent view without any persistence adapter behind it.
package store

import "sync"

// Entity is implemented by record types held in a Collection.
type Entity[E any] interface {
	EntityID() int
	WithID(id int) E
}

// Collection is an ordered, mutex-guarded sequence of entities. Entities are
// values, so readers always get copies and never a pointer into the slice.
type Collection[E Entity[E]] struct {
	mu    sync.RWMutex
	items []E
}

// NewCollection builds a collection pre-populated with the given fixtures.
func NewCollection[E Entity[E]](seed ...E) *Collection[E] {
	c := &Collection[E]{items: make([]E, len(seed))}
	copy(c.items, seed)

	return c
}

// List returns all entities in insertion order.
func (c *Collection[E]) List() []E {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]E, len(c.items))
	copy(out, c.items)

	return out
}

// Get returns the entity with the given id.
func (c *Collection[E]) Get(id int) (E, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, e := range c.items {
		if e.EntityID() == id {
			return e, true
		}
	}

	var zero E

	return zero, false
}

// Insert assigns the next id and appends the entity. Ids are one greater
// than the current maximum, so the id of a deleted entity can be handed out
// again once the maximum drops.
func (c *Collection[E]) Insert(e E) E {
	c.mu.Lock()
	defer c.mu.Unlock()

	maxID := 0

	for _, cur := range c.items {
		if cur.EntityID() > maxID {
			maxID = cur.EntityID()
		}
	}

	e = e.WithID(maxID + 1)
	c.items = append(c.items, e)

	return e
}

// Replace swaps the stored entity for e, keeping its slice position and id.
func (c *Collection[E]) Replace(id int, e E) (E, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, cur := range c.items {
		if cur.EntityID() == id {
			e = e.WithID(id)
			c.items[i] = e

			return e, true
		}
	}

	var zero E

	return zero, false
}

// Update applies fn to the stored entity under the write lock and stores the
// result. The id is reasserted afterwards, so fn cannot change it.
func (c *Collection[E]) Update(id int, fn func(E) E) (E, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, cur := range c.items {
		if cur.EntityID() == id {
			next := fn(cur).WithID(id)
			c.items[i] = next

			return next, true
		}
	}

	var zero E

	return zero, false
}

// Remove deletes the entity with the given id, preserving the order of the
// remaining entities.
func (c *Collection[E]) Remove(id int) (E, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, cur := range c.items {
		if cur.EntityID() == id {
			c.items = append((c.items)[:i], (c.items)[i+1:]...)

			return cur, true
		}
	}

	var zero E

	return zero, false
}

// Len returns the number of stored entities.
func (c *Collection[E]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}
