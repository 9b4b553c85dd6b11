// Package store is the in-memory datastore behind the repositories. A Store
// is created at service start and closed at shutdown; there is no
// package-level state.
package store

import (
	"slices"
	"sync"

	"github.com/dmitrijs2005/inkwell/internal/common"
)

// Cloner is implemented by records that can produce a copy sharing no
// mutable memory with the original.
type Cloner[T any] interface {
	Clone() T
}

// Collection is an insertion-ordered set of records keyed by id. Every
// read-modify-write happens under the write lock, so concurrent updates of
// the same collection are serialised.
type Collection[T Cloner[T]] struct {
	mu    sync.RWMutex
	order []string
	items map[string]T
}

func NewCollection[T Cloner[T]]() *Collection[T] {
	return &Collection[T]{items: make(map[string]T)}
}

// List returns copies of all records in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id].Clone())
	}
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// Get returns a copy of the record or common.ErrorNotFound.
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, common.ErrorNotFound
	}
	return v.Clone(), nil
}

// Find returns a copy of the first record, in insertion order, that match
// accepts.
func (c *Collection[T]) Find(match func(T) bool) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.order {
		if v := c.items[id]; match(v) {
			return v.Clone(), nil
		}
	}
	var zero T
	return zero, common.ErrorNotFound
}

// Insert stores v under id. When conflicts is non-nil and reports true for
// any existing record the insert is refused with common.ErrorConflict.
func (c *Collection[T]) Insert(id string, v T, conflicts func(candidate, existing T) bool) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; ok {
		var zero T
		return zero, common.ErrorConflict
	}
	if err := c.checkConflicts(id, v, conflicts); err != nil {
		var zero T
		return zero, err
	}

	c.items[id] = v.Clone()
	c.order = append(c.order, id)
	return v.Clone(), nil
}

// Update applies mutate to a copy of the record and stores the result if
// mutate returns nil and no other record conflicts with it.
func (c *Collection[T]) Update(id string, mutate func(*T) error, conflicts func(candidate, existing T) bool) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T

	current, ok := c.items[id]
	if !ok {
		return zero, common.ErrorNotFound
	}

	next := current.Clone()
	if err := mutate(&next); err != nil {
		return zero, err
	}
	if err := c.checkConflicts(id, next, conflicts); err != nil {
		return zero, err
	}

	c.items[id] = next
	return next.Clone(), nil
}

// Delete removes the record or returns common.ErrorNotFound.
func (c *Collection[T]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(c.items, id)
	if i := slices.Index(c.order, id); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
	return nil
}

// Clear drops every record.
func (c *Collection[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]T)
	c.order = nil
}

func (c *Collection[T]) checkConflicts(id string, v T, conflicts func(candidate, existing T) bool) error {
	if conflicts == nil {
		return nil
	}
	for _, otherID := range c.order {
		if otherID == id {
			continue
		}
		if conflicts(v, c.items[otherID]) {
			return common.ErrorConflict
		}
	}
	return nil
}
