package bktree

// Remove deletes a value metric-equal to v from the tree, if present.
// Removing an interior node can't simply drop its subtree: a node's
// children are bucketed by distance to that specific parent, which has
// no meaning once the parent is gone. Instead every descendant of the
// removed node is collected and re-threaded from the root, exactly as
// if freshly inserted — correct by the same invariant Insert
// maintains, at the cost of reshaping that corner of the tree.
func (t *Tree[V, D]) Remove(v V) bool {
	if t.root == nil {
		return false
	}
	target, parent, key, isRoot := t.locate(v)
	if target == nil {
		return false
	}

	var orphans []V
	for _, d := range target.order {
		t.collect(target.children[d], &orphans)
	}

	switch {
	case isRoot:
		t.root = nil
	default:
		parent.removeChild(key)
	}
	t.size--

	for _, orphan := range orphans {
		t.insertNode(orphan)
	}
	return true
}

func (t *Tree[V, D]) collect(n *node[V, D], out *[]V) {
	*out = append(*out, n.value)
	for _, d := range n.order {
		t.collect(n.children[d], out)
	}
}

// locate walks the same distance-bucketed path Insert would, returning
// the node matching v, its parent, and the distance key it's filed
// under. isRoot reports whether the match is the tree's root, in which
// case parent is nil and key is meaningless.
func (t *Tree[V, D]) locate(v V) (target, parent *node[V, D], key D, isRoot bool) {
	current := t.root
	var prev *node[V, D]
	var prevKey D
	for current != nil {
		if t.m.Equal(v, current.value) {
			if prev == nil {
				var zero D
				return current, nil, zero, true
			}
			return current, prev, prevKey, false
		}
		d := t.m.Distance(v, current.value)
		prev, prevKey = current, d
		current = current.children[d]
	}
	var zero D
	return nil, nil, zero, false
}
