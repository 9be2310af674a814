package kdtree

import (
	"container/heap"
	"iter"

	"github.com/katalvlaran/puzzlekit/geom"
)

// itemKind orders heap items of equal bound: finished pairs pop first.
type itemKind uint8

const (
	pointPair itemKind = iota
	pointNode
	nodeNode
)

// pairItem is one heap entry. Which fields are set depends on kind:
// pointPair uses p and q, pointNode uses p and a, nodeNode uses a and b.
type pairItem struct {
	bound uint64
	kind  itemKind
	seq   uint64
	p, q  *Point
	a, b  *node
}

// pairPQ is a min-heap of pairItem ordered by (bound, kind, seq).
type pairPQ []pairItem

func (pq pairPQ) Len() int { return len(pq) }
func (pq pairPQ) Less(i, j int) bool {
	if pq[i].bound != pq[j].bound {
		return pq[i].bound < pq[j].bound
	}
	if pq[i].kind != pq[j].kind {
		return pq[i].kind < pq[j].kind
	}
	return pq[i].seq < pq[j].seq
}
func (pq pairPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *pairPQ) Push(x interface{}) { *pq = append(*pq, x.(pairItem)) }
func (pq *pairPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// PairIter streams distinct point pairs in non-decreasing squared distance.
// It borrows the tree, which must not be modified while it is in use.
type PairIter struct {
	pq  pairPQ
	seq uint64
}

// ClosestPairs starts the closest-pair stream. An empty or single-point
// tree yields nothing.
func (t *Tree) ClosestPairs() *PairIter {
	it := &PairIter{}
	if t.root != nil {
		it.push(pairItem{kind: nodeNode, a: t.root, b: t.root})
	}
	return it
}

func (it *PairIter) push(x pairItem) {
	x.seq = it.seq
	it.seq++
	heap.Push(&it.pq, x)
}

func (it *PairIter) pushPointNode(p *Point, n *node) {
	it.push(pairItem{bound: n.box.DistSqPoint(p.Coords), kind: pointNode, p: p, a: n})
}

func (it *PairIter) pushNodeNode(a, b *node) {
	it.push(pairItem{bound: a.box.DistSqBox(b.box), kind: nodeNode, a: a, b: b})
}

// Next returns the next closest pair, or false when every pair was emitted.
func (it *PairIter) Next() (Pair, bool) {
	for it.pq.Len() > 0 {
		x := heap.Pop(&it.pq).(pairItem)
		switch x.kind {
		case pointPair:
			p, q := *x.p, *x.q
			if p.ID > q.ID {
				p, q = q, p
			}
			return Pair{DistSq: x.bound, P: p, Q: q}, true

		case pointNode:
			n := x.a
			it.push(pairItem{
				bound: geom.SquareDistance(x.p.Coords, n.pivot.Coords),
				kind:  pointPair,
				p:     x.p,
				q:     &n.pivot,
			})
			for _, c := range n.children() {
				if c != nil {
					it.pushPointNode(x.p, c)
				}
			}

		case nodeNode:
			it.splitNodes(x.a, x.b)
		}
	}
	return Pair{}, false
}

// splitNodes decomposes a node–node item into items covering the same
// pairs.
func (it *PairIter) splitNodes(a, b *node) {
	if a == b {
		// 1. pivot against each child, each child against itself
		for _, c := range a.children() {
			if c != nil {
				it.pushPointNode(&a.pivot, c)
				it.push(pairItem{kind: nodeNode, a: c, b: c})
			}
		}
		// 2. left against right
		if a.left != nil && a.right != nil {
			it.pushNodeNode(a.left, a.right)
		}
		return
	}
	// split the subtree with the larger box, keep the other whole
	if a.box.Extent() < b.box.Extent() {
		a, b = b, a
	}
	it.pushPointNode(&a.pivot, b)
	for _, c := range a.children() {
		if c != nil {
			it.pushNodeNode(c, b)
		}
	}
}

// All adapts the stream for range-over-func.
func (it *PairIter) All() iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for {
			p, ok := it.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}
