package catalog

import "sync/atomic"

// Holder publishes the current catalog snapshot. Replacing the catalog swaps
// the pointer to a new immutable Store, so readers never take a lock.
type Holder struct {
	current atomic.Pointer[Store]
}

// NewHolder returns a Holder serving s.
func NewHolder(s *Store) *Holder {
	h := &Holder{}
	h.current.Store(s)
	return h
}

// Load returns the snapshot in effect right now.
func (h *Holder) Load() *Store {
	return h.current.Load()
}

// Swap installs s and returns the snapshot it replaced.
func (h *Holder) Swap(s *Store) *Store {
	return h.current.Swap(s)
}
