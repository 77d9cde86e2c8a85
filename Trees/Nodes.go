package Trees

// A node in the RBTree and CRBTree.
// The zero value is meaningless. l and r are the node's owned subtrees,
// p is a pure back-reference used for traversal and rebalancing; it
// never keeps a detached subtree reachable on its own.
type node[T any] struct {
	v    T
	l, r *node[T]
	p    *node[T]
	red  bool
}

// addLeft attaches c as the left child of n, setting c's back-reference.
func (n *node[T]) addLeft(c *node[T]) {
	if c != nil {
		c.p = n
	}
	n.l = c
}

// addRight attaches c as the right child of n, setting c's back-reference.
func (n *node[T]) addRight(c *node[T]) {
	if c != nil {
		c.p = n
	}
	n.r = c
}

// relink puts nr into the child slot that g occupies under its parent.
// g keeps its own p link; callers reassign it.
func relink[T any](g, nr *node[T]) {
	nr.p = g.p
	if g.p != nil {
		if g.p.l == g {
			g.p.l = nr
		} else {
			g.p.r = nr
		}
	}
}

// The four insertion-fixup shapes. Each takes the grandparent g of the
// offending red-red pair and returns the new root of the local subtree
// with every child and parent link rewritten. Recoloring is done by the
// caller. The shape names read node-side then parent-side.

// rotateLL: n=p.l, p=g.l. Single right rotation at g.
// Links: g.l=p.r (reparented), p.r=g, p takes g's slot, g.p=p.
func rotateLL[T any](g *node[T]) *node[T] {
	p := g.l
	g.l = p.r
	if p.r != nil {
		p.r.p = g
	}
	relink(g, p)
	p.r = g
	g.p = p
	return p
}

// rotateRR: n=p.r, p=g.r. Single left rotation at g, mirror of rotateLL.
func rotateRR[T any](g *node[T]) *node[T] {
	p := g.r
	g.r = p.l
	if p.l != nil {
		p.l.p = g
	}
	relink(g, p)
	p.l = g
	g.p = p
	return p
}

// rotateRL: n=p.r, p=g.l. n is rotated left around p, then the result is
// rotated right around g; n ends up as the local root.
// Links: p.r=n.l, g.l=n.r (both reparented), n takes g's slot, n.l=p,
// n.r=g, p.p=n, g.p=n.
func rotateRL[T any](g *node[T]) *node[T] {
	p := g.l
	n := p.r
	p.r = n.l
	if n.l != nil {
		n.l.p = p
	}
	g.l = n.r
	if n.r != nil {
		n.r.p = g
	}
	relink(g, n)
	n.l = p
	p.p = n
	n.r = g
	g.p = n
	return n
}

// rotateLR: n=p.l, p=g.r. Mirror of rotateRL.
func rotateLR[T any](g *node[T]) *node[T] {
	p := g.r
	n := p.l
	p.l = n.r
	if n.r != nil {
		n.r.p = p
	}
	g.r = n.l
	if n.l != nil {
		n.l.p = g
	}
	relink(g, n)
	n.r = p
	p.p = n
	n.l = g
	g.p = n
	return n
}

// balance restores the red-black coloring invariants upward from a
// freshly attached red leaf n. Case by case:
//  1. n is the root: blacken it.
//  2. black parent: nothing to do.
//  3. red parent and red uncle: push blackness down from the grandparent
//     and continue from the grandparent. The grandparent stays black when
//     it is the root.
//  4. red parent, black or absent uncle: one of the four rotation shapes,
//     after which the new local root is blackened, the displaced
//     grandparent reddened, and no further propagation is needed.
func balance[T any](n *node[T]) {
	p := n.p
	if p == nil {
		n.red = false
		return
	}
	if !p.red {
		return
	}
	g := p.p
	if g == nil {
		return
	}
	u := g.l
	if u == p {
		u = g.r
	}
	if u != nil && u.red {
		p.red = false
		u.red = false
		if g.p != nil {
			g.red = true
		}
		balance(g)
		return
	}
	var nr *node[T]
	switch {
	case n == p.l && p == g.l:
		nr = rotateLL(g)
	case n == p.r && p == g.r:
		nr = rotateRR(g)
	case n == p.r && p == g.l:
		nr = rotateRL(g)
	default:
		nr = rotateLR(g)
	}
	nr.red = false
	g.red = true
}

// succ returns the next node in sorted order, nil when n is the last.
// Either the leftmost node of the right subtree, or the first ancestor
// reached from a left child.
func succ[T any](n *node[T]) *node[T] {
	if n.r != nil {
		n = n.r
		for n.l != nil {
			n = n.l
		}
		return n
	}
	for n.p != nil && n == n.p.r {
		n = n.p
	}
	return n.p
}

// pred is the mirror of succ: the previous node in sorted order, nil
// when n is the first.
func pred[T any](n *node[T]) *node[T] {
	if n.l != nil {
		n = n.l
		for n.r != nil {
			n = n.r
		}
		return n
	}
	for n.p != nil && n == n.p.l {
		n = n.p
	}
	return n.p
}

// leftmost of the subtree rooted at n; n mustn't be nil.
func leftmost[T any](n *node[T]) *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// cloneNode deep-copies the subtree rooted at src, preserving values,
// colors and shape, hanging the copy under p.
func cloneNode[T any](src, p *node[T]) *node[T] {
	if src == nil {
		return nil
	}
	d := &node[T]{v: src.v, red: src.red, p: p}
	d.l = cloneNode(src.l, d)
	d.r = cloneNode(src.r, d)
	return d
}

// eraseNode unlinks n from the tree rooted at *root and returns the node
// the erase iterator should land on: the former parent when n was a
// leaf, the new leftmost node when n had one child, or the spliced
// in-order successor when it had two. Colors are left exactly as the
// relinked nodes carried them; removal never rebalances, so the coloring
// invariants only hold again after the next insertion.
func eraseNode[T any](root **node[T], n *node[T]) *node[T] {
	switch {
	case n.l == nil && n.r == nil:
		p := n.p
		if p == nil {
			*root = nil
		} else if p.l == n {
			p.l = nil
		} else {
			p.r = nil
		}
		return p
	case n.l == nil || n.r == nil:
		c := n.l
		if c == nil {
			c = n.r
		}
		c.p = n.p
		if n.p == nil {
			*root = c
		} else if n.p.l == n {
			n.p.l = c
		} else {
			n.p.r = c
		}
		return leftmost(*root)
	default:
		s := leftmost(n.r)
		// Detach s first. It has no left child; its right child, if any,
		// moves up into its slot.
		if s.p != n {
			s.p.l = s.r
			if s.r != nil {
				s.r.p = s.p
			}
			s.r = n.r
			n.r.p = s
		}
		// Splice s into n's structural position.
		s.p = n.p
		if n.p == nil {
			*root = s
		} else if n.p.l == n {
			n.p.l = s
		} else {
			n.p.r = s
		}
		s.l = n.l
		n.l.p = s
		return s
	}
}

// reconcile copies the subtree rooted at src onto *dst, reusing
// destination nodes in place where both sides have one at the same
// structural position, allocating where the destination runs short and
// pruning where the source does. Works pre-order: self, right, left.
func reconcile[T any](dst **node[T], p, src *node[T]) {
	if src == nil {
		*dst = nil
		return
	}
	if *dst == nil {
		*dst = &node[T]{p: p}
	}
	d := *dst
	d.v, d.red = src.v, src.red
	reconcile(&d.r, d, src.r)
	reconcile(&d.l, d, src.l)
}
