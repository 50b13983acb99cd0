package filesystem

import "sync/atomic"

// idAllocator issues node identifiers for a single tree.
// The first identifier is 1 and identifiers are never reused.
type idAllocator struct {
	last atomic.Uint64 // Last identifier handed out; 0 before the first
}

// Next returns a fresh identifier
func (a *idAllocator) Next() uint64 {
	return a.last.Add(1)
}

// Last returns the most recently issued identifier, 0 if none
func (a *idAllocator) Last() uint64 {
	return a.last.Load()
}
