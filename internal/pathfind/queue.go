// Package pathfind provides shortest-path search over the transport
// network: Dijkstra's algorithm backed by a decrease-key priority queue.
// Two queue implementations with the same contract are included, one on a
// binary heap and one on a pairing heap.
package pathfind

type entry struct {
	vertex int
	cost   int
}

// Queue is a min-priority queue of vertices keyed by cost. Set inserts a
// vertex or lowers the cost of an existing one (only reductions are
// allowed, though not enforced at runtime). Pop returns the cheapest
// vertex, reporting false once the queue is empty.
type Queue interface {
	Len() int
	Set(vertex, cost int)
	Pop() (vertex, cost int, ok bool)
}

// BinaryQueue is a Queue backed by a binary heap with an index map for
// decrease-key updates.
type BinaryQueue struct {
	heap     []*entry
	indexMap map[int]int
}

func NewBinaryQueue() *BinaryQueue {
	return &BinaryQueue{indexMap: make(map[int]int)}
}

func (q *BinaryQueue) Len() int {
	return len(q.heap)
}

// Set updates an existing entry in the heap, or inserts a new one.
func (q *BinaryQueue) Set(vertex, cost int) {
	pos, exists := q.indexMap[vertex]
	var item *entry
	if exists {
		item = q.heap[pos]
		item.cost = cost
	} else {
		pos = len(q.heap)
		item = &entry{vertex: vertex, cost: cost}
		q.heap = append(q.heap, item)
	}
	q.siftUp(pos, item)
}

func (q *BinaryQueue) Pop() (int, int, bool) {
	if len(q.heap) == 0 {
		return 0, 0, false
	}
	top := q.heap[0]
	delete(q.indexMap, top.vertex)
	tail := q.heap[len(q.heap)-1]
	q.heap = q.heap[:len(q.heap)-1]
	if len(q.heap) > 0 {
		q.siftDown(0, tail)
	}
	return top.vertex, top.cost, true
}

// siftDown moves the item at pos to its correct position deeper in the
// heap. Following the intuition that items reinserted at the root after an
// extraction tend to be large, the heap is first restored by successively
// moving up the smaller of two child nodes; the entry is then sifted up
// from the bottom as if it had been inserted there. The worst case is the
// same (2 log n), but in practice this needs closer to (log n) comparisons.
func (q *BinaryQueue) siftDown(pos int, item *entry) {
	for left := pos*2 + 1; left < len(q.heap); left = pos*2 + 1 {
		minPos := left
		if right := left + 1; right < len(q.heap) && q.heap[right].cost < q.heap[left].cost {
			minPos = right
		}
		minChild := q.heap[minPos]
		q.heap[pos] = minChild
		q.indexMap[minChild.vertex] = pos
		pos = minPos
	}
	q.siftUp(pos, item)
}

// siftUp swaps an entry with its parent until the heap is restored.
func (q *BinaryQueue) siftUp(pos int, item *entry) {
	for pos > 0 {
		parentPos := (pos - 1) / 2
		parent := q.heap[parentPos]
		if item.cost >= parent.cost {
			break
		}
		q.heap[pos] = parent
		q.indexMap[parent.vertex] = pos
		pos = parentPos
	}
	q.heap[pos] = item
	q.indexMap[item.vertex] = pos
}
