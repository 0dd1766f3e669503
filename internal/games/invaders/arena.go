package invaders

import (
	"iter"
	"slices"
)

// Handle identifies an entity inside its arena. Handles are never reused
// within a match, so a stale handle simply resolves to nothing.
type Handle uint32

type slot[T any] struct {
	handle Handle
	dead   bool
	value  T
}

// arena stores entities of one kind in insertion order.
// Remove only marks a slot dead; Compact drops dead slots.
// Handles grow monotonically, so slots stay sorted by handle.
type arena[T any] struct {
	slots []slot[T]
	next  Handle
	live  int
}

// Add stores v and returns its handle.
func (a *arena[T]) Add(v T) Handle {
	a.next++
	a.slots = append(a.slots, slot[T]{handle: a.next, value: v})
	a.live++
	return a.next
}

func (a *arena[T]) index(h Handle) int {
	i, found := slices.BinarySearchFunc(a.slots, h, func(s slot[T], h Handle) int {
		switch {
		case s.handle < h:
			return -1
		case s.handle > h:
			return 1
		}
		return 0
	})
	if !found || a.slots[i].dead {
		return -1
	}
	return i
}

// Get returns the live entity for h.
func (a *arena[T]) Get(h Handle) (*T, bool) {
	i := a.index(h)
	if i < 0 {
		return nil, false
	}
	return &a.slots[i].value, true
}

// Remove marks h dead. Removing an absent or dead handle is a no-op.
func (a *arena[T]) Remove(h Handle) bool {
	i := a.index(h)
	if i < 0 {
		return false
	}
	a.slots[i].dead = true
	a.live--
	return true
}

// Len returns the number of live entities.
func (a *arena[T]) Len() int {
	return a.live
}

// All yields live entities in insertion order. Entities removed during
// iteration are skipped; entities added during iteration are not visited.
func (a *arena[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		n := len(a.slots)
		for i := range n {
			s := &a.slots[i]
			if s.dead {
				continue
			}
			if !yield(s.handle, &s.value) {
				return
			}
		}
	}
}

// Handles returns the live handles in insertion order.
func (a *arena[T]) Handles() []Handle {
	out := make([]Handle, 0, a.live)
	for h := range a.All() {
		out = append(out, h)
	}
	return out
}

// Compact drops dead slots, keeping order.
func (a *arena[T]) Compact() {
	a.slots = slices.DeleteFunc(a.slots, func(s slot[T]) bool { return s.dead })
}

// Clear removes everything. Handles keep growing so old ones stay invalid.
func (a *arena[T]) Clear() {
	a.slots = a.slots[:0]
	a.live = 0
}
