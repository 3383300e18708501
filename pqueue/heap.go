package pqueue

import "github.com/kelindar/bitmap"

// entry is one slot in the heap's backing array.
type entry struct {
	idx  int     // cell index, the value addressed by the outer solver
	dist float64 // current key
	seq  uint64  // insertion sequence, used to break ties FIFO
}

// Heap is an indexed min-heap over cell indices in [0,n). It must be
// constructed with New; the zero value is not usable because the position
// table needs to be pre-sized to n.
type Heap struct {
	data    []entry
	pos     []int32 // pos[cellIndex] = slot in data, or -1 if absent
	present bitmap.Bitmap
	nextSeq uint64
}

const absent int32 = -1

// New allocates a Heap addressing cell indices in [0,n).
// Complexity: O(n) to size the position table and presence bitset.
func New(n int) *Heap {
	pos := make([]int32, n)
	for i := range pos {
		pos[i] = absent
	}
	h := &Heap{
		data: make([]entry, 0, n),
		pos:  pos,
	}
	if n > 0 {
		h.present.Grow(uint32(n - 1))
	}
	return h
}

// Len returns the number of entries currently in the heap.
func (h *Heap) Len() int { return len(h.data) }

// Contains reports whether cell idx currently has an entry in the heap.
// Complexity: O(1).
func (h *Heap) Contains(idx int) bool {
	return h.present.Contains(uint32(idx))
}

// Insert adds cell idx with key dist. idx must not already be present;
// callers should check Contains first if that is not already known from
// solver state. Complexity: O(log N).
func (h *Heap) Insert(idx int, dist float64) {
	slot := len(h.data)
	h.data = append(h.data, entry{idx: idx, dist: dist, seq: h.nextSeq})
	h.nextSeq++
	h.pos[idx] = int32(slot)
	h.present.Set(uint32(idx))
	h.siftUp(slot)
}

// DecreaseKey lowers the key of cell idx to dist. It is a no-op if idx is
// not present, or if dist is not strictly smaller than the current key.
// Complexity: O(log N).
func (h *Heap) DecreaseKey(idx int, dist float64) {
	slot := h.pos[idx]
	if slot == absent {
		return
	}
	if dist >= h.data[slot].dist {
		return
	}
	h.data[slot].dist = dist
	h.siftUp(int(slot))
}

// ExtractMin removes and returns the entry with the smallest (dist, seq)
// key. ok is false if the heap is empty. Complexity: O(log N).
func (h *Heap) ExtractMin() (idx int, dist float64, ok bool) {
	if len(h.data) == 0 {
		return 0, 0, false
	}

	top := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data = h.data[:last]
	h.pos[top.idx] = absent
	h.present.Remove(uint32(top.idx))

	if len(h.data) > 0 {
		h.pos[h.data[0].idx] = 0
		h.siftDown(0)
	}

	return top.idx, top.dist, true
}

// less reports whether a has strictly higher priority than b: smaller
// distance first, insertion order breaking ties.
func less(a, b entry) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.seq < b.seq
}

func (h *Heap) siftUp(slot int) {
	for slot > 0 {
		parent := (slot - 1) / 2
		if !less(h.data[slot], h.data[parent]) {
			break
		}
		h.swap(slot, parent)
		slot = parent
	}
}

func (h *Heap) siftDown(slot int) {
	n := len(h.data)
	for {
		left := 2*slot + 1
		right := 2*slot + 2
		smallest := slot
		if left < n && less(h.data[left], h.data[smallest]) {
			smallest = left
		}
		if right < n && less(h.data[right], h.data[smallest]) {
			smallest = right
		}
		if smallest == slot {
			break
		}
		h.swap(slot, smallest)
		slot = smallest
	}
}

func (h *Heap) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
	h.pos[h.data[i].idx] = int32(i)
	h.pos[h.data[j].idx] = int32(j)
}
