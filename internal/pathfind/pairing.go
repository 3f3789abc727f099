package pathfind

// PairingQueue is a Queue backed by a pairing heap.
type PairingQueue struct {
	heap    *pairingHeap
	heapMap map[int]*pairingHeap
	size    int
}

func NewPairingQueue() *PairingQueue {
	return &PairingQueue{heapMap: make(map[int]*pairingHeap)}
}

func (q *PairingQueue) Len() int {
	return q.size
}

func (q *PairingQueue) Set(vertex, cost int) {
	if heap, exists := q.heapMap[vertex]; exists {
		heap.root.cost = cost
		if heap.incorrectlyNested() {
			q.heap = merge(q.heap, heap)
			q.heap.parent = nil
		}
		return
	}
	heap := &pairingHeap{root: &entry{vertex: vertex, cost: cost}}
	q.heapMap[vertex] = heap
	q.heap = merge(q.heap, heap)
	q.size++
}

func (q *PairingQueue) Pop() (int, int, bool) {
	if q.heap == nil {
		return 0, 0, false
	}
	top := q.heap.root
	delete(q.heapMap, top.vertex)
	q.size--
	// Clear the popped heap's parent reference in case it is still listed
	// as a subheap somewhere, then merge its subheap pairs into a new top.
	q.heap.parent = nil
	q.heap = mergePairs(q.heap.subheapList())
	return top.vertex, top.cost, true
}

type pairingHeap struct {
	root     *entry
	parent   *pairingHeap
	subheaps []*pairingHeap
}

// subheapList returns the heap's valid subheaps. Lazy deletion leaves stale
// entries in the subheap slice; only those still claiming this heap as
// their parent count.
func (h *pairingHeap) subheapList() []*pairingHeap {
	valid := h.subheaps[:0:0]
	for _, sub := range h.subheaps {
		if sub.parent == h {
			valid = append(valid, sub)
		}
	}
	return valid
}

// incorrectlyNested reports whether the heap orders below its parent.
func (h *pairingHeap) incorrectlyNested() bool {
	return h.parent != nil && h.root.cost < h.parent.root.cost
}

// merge combines two pairing heaps, short-circuiting if either is nil.
func merge(h1, h2 *pairingHeap) *pairingHeap {
	switch {
	case h1 == nil:
		return h2
	case h2 == nil:
		return h1
	case h1.root.cost < h2.root.cost:
		h2.parent = h1
		h1.subheaps = append(h1.subheaps, h2)
		return h1
	default:
		h1.parent = h2
		h2.subheaps = append(h2.subheaps, h1)
		return h2
	}
}

// mergePairs merges subheaps pairwise and reduces the results into one.
func mergePairs(heaps []*pairingHeap) *pairingHeap {
	var merged *pairingHeap
	for i := 0; i < len(heaps); i += 2 {
		pair := heaps[i]
		if i+1 < len(heaps) {
			pair = merge(pair, heaps[i+1])
		}
		merged = merge(merged, pair)
	}
	if merged != nil {
		merged.parent = nil
	}
	return merged
}
