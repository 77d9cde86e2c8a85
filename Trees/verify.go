package Trees

// Pure structural inspections for test harnesses. Nothing here mutates
// the tree and nothing in the mutating paths calls these.

// countLinks walks the subtree, counting nodes and checking that every
// child points back at its parent. Recursive, depth bounded by tree
// height.
func countLinks[T any](n *node[T]) (uint, bool) {
	if n == nil {
		return 0, true
	}
	if n.l != nil && n.l.p != n {
		return 0, false
	}
	if n.r != nil && n.r.p != n {
		return 0, false
	}
	lc, lok := countLinks(n.l)
	rc, rok := countLinks(n.r)
	return lc + rc + 1, lok && rok
}

// blackPaths returns the number of black nodes on every path from n to
// an absent child, or -1 when paths disagree or a red node has a red
// child. Recursive.
func blackPaths[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	l, r := blackPaths(n.l), blackPaths(n.r)
	if l < 0 || l != r {
		return -1
	}
	if n.red {
		if (n.l != nil && n.l.red) || (n.r != nil && n.r.red) {
			return -1
		}
		return l
	}
	return l + 1
}

// colorsCorrupt checks the red-black rules on the subtree under root:
// black root, no red node with a red child, equal black count on every
// root-to-absent-child path.
func colorsCorrupt[T any](root *node[T]) bool {
	if root == nil {
		return false
	}
	if root.red {
		return true
	}
	return blackPaths(root) < 0
}

// Corrupt [Tree.Corrupt]. Checks parent links, ordering via an in-order
// walk, and that the recorded size matches the reachable node count.
func (u *RBTree[T]) Corrupt() bool {
	if u.root != nil && u.root.p != nil {
		return true
	}
	cnt, ok := countLinks(u.root)
	if !ok || cnt != u.sz {
		return true
	}
	if u.root == nil {
		return false
	}
	prev := leftmost(u.root)
	for cur := succ(prev); cur != nil; prev, cur = cur, succ(cur) {
		if cur.v < prev.v {
			return true
		}
	}
	return false
}

// ColorsCorrupt [Tree.ColorsCorrupt].
func (u *RBTree[T]) ColorsCorrupt() bool {
	return colorsCorrupt(u.root)
}

// Corrupt [Tree.Corrupt].
func (u *CRBTree[T]) Corrupt() bool {
	if u.root != nil && u.root.p != nil {
		return true
	}
	cnt, ok := countLinks(u.root)
	if !ok || cnt != u.sz {
		return true
	}
	if u.root == nil {
		return false
	}
	prev := leftmost(u.root)
	for cur := succ(prev); cur != nil; prev, cur = cur, succ(cur) {
		if cur.v.LessThan(prev.v) {
			return true
		}
	}
	return false
}

// ColorsCorrupt [Tree.ColorsCorrupt].
func (u *CRBTree[T]) ColorsCorrupt() bool {
	return colorsCorrupt(u.root)
}

var (
	_ Tree[int, Iterator[int]] = (*RBTree[int])(nil)
)
