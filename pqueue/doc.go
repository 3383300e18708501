// Package pqueue implements an indexed binary min-heap of (distance,
// cellIndex) pairs with true O(log N) DecreaseKey, addressed by a dense
// position side table rather than the lazy-duplicate-entry trick spec.md
// §9 flags in the reference implementation. Ties on distance are broken
// by insertion order (FIFO) so extraction order is fully deterministic.
//
// Heap membership is additionally tracked in a github.com/kelindar/bitmap
// bitset, giving O(1) Contains without a second map or a linear scan of
// the position table.
package pqueue
