// SPDX-License-Identifier: MIT
// Package: haulsim/network
//
// queue.go - the cost-ordered view of a Node's remaining Links.
//
// Design:
//   • One *linkItem per remaining Link, shared by the heap and the pool.
//   • linkPQ is a container/heap min-heap keyed by (cost, seq); seq is the
//     insertion counter, so equal costs pop first-in first-out.
//   • Swap/Push/Pop keep heapIdx current, which lets RandomLink drop an
//     arbitrary item with heap.Remove in O(log k).
//   • Popped items carry heapIdx == -1.

package network

// linkItem is the single owned record of one remaining Link.
// heapIdx and poolIdx locate it in the two views of its Node.
type linkItem struct {
	link    *Link
	seq     uint64 // insertion order, breaks cost ties
	heapIdx int    // position in linkPQ, -1 once popped
	poolIdx int    // position in Node.pool
}

// linkPQ implements heap.Interface as a min-heap keyed by (cost, seq).
type linkPQ []*linkItem

// Len returns the number of items in the heap.
func (pq linkPQ) Len() int { return len(pq) }

// Less orders by cost, then by insertion order so equal costs pop FIFO.
func (pq linkPQ) Less(i, j int) bool {
	if pq[i].link.cost != pq[j].link.cost {
		return pq[i].link.cost < pq[j].link.cost
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements and keeps their heap positions current.
func (pq linkPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].heapIdx = i
	pq[j].heapIdx = j
}

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *linkItem.
func (pq *linkPQ) Push(x interface{}) {
	it := x.(*linkItem)
	it.heapIdx = len(*pq)
	*pq = append(*pq, it)
}

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *linkPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil // drop reference for GC
	it.heapIdx = -1
	*pq = old[:n-1]

	return it
}
