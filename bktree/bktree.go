// Package bktree implements a Burkhard-Keller tree: a space-partitioning
// index over any metric space that supports fast "everything within
// distance d of this query" lookups by pruning whole subtrees with the
// triangle inequality.
package bktree

import (
	"fmt"
	"sort"

	"lexdist/internal/lexerr"
	"lexdist/metric"
)

// node owns a map of its children keyed by distance, plus an ordered
// list of those keys in insertion order — iteration order is a
// user-visible property (construction order of the child-distance
// keys), so a plain map range (randomized per run) can't serve it.
type node[V any, D metric.Numeric] struct {
	value    V
	children map[D]*node[V, D]
	order    []D
}

func newNode[V any, D metric.Numeric](v V) *node[V, D] {
	return &node[V, D]{value: v, children: make(map[D]*node[V, D])}
}

// addChild files child under key d and records d at the end of the
// insertion-order list.
func (n *node[V, D]) addChild(d D, child *node[V, D]) {
	n.children[d] = child
	n.order = append(n.order, d)
}

// removeChild drops the child keyed by d from both the map and the
// order list.
func (n *node[V, D]) removeChild(d D) {
	delete(n.children, d)
	for i, k := range n.order {
		if k == d {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
}

// Tree is a BK-tree over values of type V under the given metric.
type Tree[V any, D metric.Numeric] struct {
	root *node[V, D]
	size int
	m    metric.Metric[V, D]
}

// New creates an empty tree keyed by m. m has no sensible default for
// an arbitrary V, so a nil metric panics, wrapping lexerr.ErrNullArgument,
// rather than being silently substituted.
func New[V any, D metric.Numeric](m metric.Metric[V, D]) *Tree[V, D] {
	if m == nil {
		panic(fmt.Errorf("lexdist: bktree.New called with a nil metric: %w", lexerr.ErrNullArgument))
	}
	return &Tree[V, D]{m: m}
}

// Size returns the number of values in the tree.
func (t *Tree[V, D]) Size() int { return t.size }

// Insert adds v to the tree. A value already present (metric.Equal to
// an existing one) is a no-op.
func (t *Tree[V, D]) Insert(v V) {
	if t.insertNode(v) {
		t.size++
	}
}

// insertNode threads v into the tree without touching size — Remove
// reuses it to re-home a removed node's descendants, which are already
// counted.
func (t *Tree[V, D]) insertNode(v V) bool {
	if t.root == nil {
		t.root = newNode[V, D](v)
		return true
	}
	current := t.root
	for {
		d := t.m.Distance(v, current.value)
		if t.m.Equal(v, current.value) {
			return false
		}
		child, ok := current.children[d]
		if !ok {
			current.addChild(d, newNode[V, D](v))
			return true
		}
		current = child
	}
}

// Contains reports whether a value metric-equal to v is present.
func (t *Tree[V, D]) Contains(v V) bool {
	current := t.root
	for current != nil {
		if t.m.Equal(v, current.value) {
			return true
		}
		d := t.m.Distance(v, current.value)
		current = current.children[d]
	}
	return false
}

// Result pairs a value found by Find or FindAll with its distance from
// the query.
type Result[V any, D metric.Numeric] struct {
	Value    V
	Distance D
}

// Find returns the closest value to query within maxDistance, or false
// if nothing qualifies. Among equal-distance candidates, the
// last-visited one wins, matching the running-best update rule
// (d <= best_distance) of the reference DFS.
func (t *Tree[V, D]) Find(query V, maxDistance D) (Result[V, D], bool) {
	if t.root == nil {
		return Result[V, D]{}, false
	}
	best := Result[V, D]{}
	found := false
	t.walk(t.root, query, maxDistance, func(r Result[V, D]) {
		if !found || r.Distance <= best.Distance {
			best, found = r, true
		}
	})
	return best, found
}

// FindAll returns every value within maxDistance of query, sorted by
// ascending distance; ties preserve the DFS visit order.
func (t *Tree[V, D]) FindAll(query V, maxDistance D) []Result[V, D] {
	if t.root == nil {
		return nil
	}
	var results []Result[V, D]
	t.walk(t.root, query, maxDistance, func(r Result[V, D]) {
		results = append(results, r)
	})
	sort.SliceStable(results, func(i, j int) bool { return results[i].Distance < results[j].Distance })
	return results
}

// walk is the triangle-inequality-pruned DFS shared by Find and
// FindAll: a child bucketed at distance c from its parent can only
// hold values whose true distance to query lies in [|dist-c|,
// dist+c], so buckets outside that band are skipped entirely without
// ever computing a distance for them. Children are visited in
// insertion order of their distance key, and each subtree is walked to
// completion — visited last, after its descendants — before its
// parent is recorded, which is the order the tie-breaks in FindAll are
// defined against.
func (t *Tree[V, D]) walk(n *node[V, D], query V, maxDistance D, visit func(Result[V, D])) {
	dist := t.m.Distance(query, n.value)
	var lo D
	if dist > maxDistance {
		lo = dist - maxDistance
	}
	hi := dist + maxDistance
	for _, c := range n.order {
		if c >= lo && c <= hi {
			t.walk(n.children[c], query, maxDistance, visit)
		}
	}
	if dist <= maxDistance {
		visit(Result[V, D]{Value: n.value, Distance: dist})
	}
}
