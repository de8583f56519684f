// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "sync"

// collection is a mutex-guarded in-memory record set. Identifiers are
// assigned from a per-collection counter starting at 1 and are never reused
// after deletion. Listing preserves insertion order.
type collection[T any] struct {
	mu     sync.RWMutex
	nextID int64
	order  []int64
	items  map[int64]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{
		nextID: 1,
		items:  make(map[int64]T),
	}
}

// create assigns the next identifier and stores the record produced by build.
// conflict, when non-nil, is evaluated against every existing record first;
// the first non-nil error aborts the create without assigning an identifier.
func (c *collection[T]) create(conflict func(existing T) error, build func(id int64) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	if conflict != nil {
		for _, id := range c.order {
			if err := conflict(c.items[id]); err != nil {
				return zero, err
			}
		}
	}

	id := c.nextID
	c.nextID++

	rec := build(id)
	c.items[id] = rec
	c.order = append(c.order, id)
	return rec, nil
}

// get returns the record for id, or false if absent.
func (c *collection[T]) get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.items[id]
	return rec, ok
}

// find returns the first record, in insertion order, for which match is true.
func (c *collection[T]) find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, id := range c.order {
		if match(c.items[id]) {
			return c.items[id], true
		}
	}
	var zero T
	return zero, false
}

// list returns all records in insertion order. A nil match returns every
// record; otherwise only records for which match is true are included.
func (c *collection[T]) list(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		if match == nil || match(c.items[id]) {
			out = append(out, c.items[id])
		}
	}
	return out
}

// update replaces the record for id with the result of apply. conflict, when
// non-nil, is evaluated against every other record before apply runs. The
// middle return is false if id is absent.
func (c *collection[T]) update(id int64, conflict func(other T) error, apply func(T) (T, error)) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	existing, ok := c.items[id]
	if !ok {
		return zero, false, nil
	}

	if conflict != nil {
		for _, otherID := range c.order {
			if otherID == id {
				continue
			}
			if err := conflict(c.items[otherID]); err != nil {
				return zero, true, err
			}
		}
	}

	updated, err := apply(existing)
	if err != nil {
		return zero, true, err
	}
	c.items[id] = updated
	return updated, true, nil
}

// delete removes the record for id, reporting whether it was present.
func (c *collection[T]) delete(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}
