package spring

import (
	"slices"
	"sync"
)

// listenerSet is a copy-on-write set. Every mutation installs a fresh
// slice, so a notification pass ranging over snapshot() is unaffected by
// listeners that add or remove entries while it runs.
type listenerSet[T comparable] struct {
	mu    sync.Mutex
	items []T
}

func (ls *listenerSet[T]) add(l T) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if slices.Contains(ls.items, l) {
		return
	}
	next := make([]T, len(ls.items), len(ls.items)+1)
	copy(next, ls.items)
	ls.items = append(next, l)
}

func (ls *listenerSet[T]) remove(l T) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	i := slices.Index(ls.items, l)
	if i < 0 {
		return
	}
	next := make([]T, 0, len(ls.items)-1)
	next = append(next, ls.items[:i]...)
	ls.items = append(next, ls.items[i+1:]...)
}

func (ls *listenerSet[T]) clear() {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.items = nil
}

func (ls *listenerSet[T]) count() int {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return len(ls.items)
}

// snapshot returns the current listeners. The slice is never written to
// after it is installed and must not be modified by the caller.
func (ls *listenerSet[T]) snapshot() []T {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.items
}
