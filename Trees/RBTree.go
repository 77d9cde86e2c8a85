package Trees

import "cmp"

// RBTree is a binary search tree ordered by < that maintains balance on
// insertion through red-black recoloring and rotations. Repeated values
// are allowed unless an insertion asks to keep the tree unique; equal
// values are stored in the right subtree. Removal relinks nodes without
// rebalancing, so the height bound degrades under long erase-only
// sequences and is restored by later insertions; the ordering invariant
// holds at all times.
// T is the type of values it will hold. The zero value is an empty tree
// ready for use. Not safe for concurrent use; callers needing that must
// lock around every mutating call.
type RBTree[T cmp.Ordered] struct {
	root *node[T]
	sz   uint
}

// New returns an empty RBTree.
func New[T cmp.Ordered]() *RBTree[T] {
	return &RBTree[T]{}
}

// From builds an RBTree by inserting every element of vs in order.
// Duplicates in vs all end up in the tree.
// Time: O(n*log n)
func From[T cmp.Ordered](vs []T) *RBTree[T] {
	u := &RBTree[T]{}
	for _, v := range vs {
		u.Insert(v, false)
	}
	return u
}

// Size of the tree.
// Time: O(1)
func (u *RBTree[T]) Size() uint {
	return u.sz
}

// Empty reports whether the tree holds no elements.
func (u *RBTree[T]) Empty() bool {
	return u.sz == 0
}

// Insert v into the tree. When keepUnique is true and an equal value is
// already present, nothing changes and the cursor to the existing value
// is returned with false. Otherwise a new red leaf is attached at the
// search position, the coloring is fixed up bottom-up from it, and the
// cursor to the new node is returned with true. Values are taken by
// copy; Go has no transfer-of-ownership variant.
// Time: O(D)
func (u *RBTree[T]) Insert(v T, keepUnique bool) (Iterator[T], bool) {
	if keepUnique {
		if it := u.Find(v); it.n != nil {
			return it, false
		}
	}
	n := &node[T]{v: v, red: true}
	if u.root == nil {
		n.red = false
		u.root = n
		u.sz++
		return Iterator[T]{n}, true
	}
	for cur := u.root; ; {
		if v < cur.v {
			if cur.l == nil {
				cur.addLeft(n)
				break
			}
			cur = cur.l
		} else {
			if cur.r == nil {
				cur.addRight(n)
				break
			}
			cur = cur.r
		}
	}
	balance(n)
	// Rotations may have moved the root; re-derive it from the new node.
	for top := n; ; top = top.p {
		if top.p == nil {
			u.root = top
			break
		}
	}
	u.sz++
	return Iterator[T]{n}, true
}

// Find the node holding a value equal to v. Returns End when absent.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Find(v T) Iterator[T] {
	for cur := u.root; cur != nil; {
		if v == cur.v {
			return Iterator[T]{cur}
		}
		if v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return u.End()
}

// Has element v.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Has(v T) bool {
	return u.Find(v).n != nil
}

// Erase the node it references and relink the tree around it. Calling
// Erase with the End cursor is a no-op returning End. The returned
// cursor follows the shape of the removal: the former parent when a
// leaf was removed, the tree's first element when a one-child node was
// removed, and the in-order successor now occupying the removed
// position when a two-children node was removed. No recoloring happens
// here; see the RBTree doc.
// Time: O(D)
func (u *RBTree[T]) Erase(it Iterator[T]) Iterator[T] {
	if it.n == nil {
		return u.End()
	}
	n := eraseNode(&u.root, it.n)
	u.sz--
	return Iterator[T]{n}
}

// Clear detaches every node. The collector reclaims the whole subtree
// once the root reference is gone; parent back-references don't keep
// nodes alive.
// Time: O(1)
func (u *RBTree[T]) Clear() {
	u.root = nil
	u.sz = 0
}

// Begin returns the cursor to the smallest element, End when empty.
// Time: O(D)
func (u *RBTree[T]) Begin() Iterator[T] {
	if u.root == nil {
		return u.End()
	}
	return Iterator[T]{leftmost(u.root)}
}

// End returns the one-past-the-last cursor.
func (u *RBTree[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// Clone returns a deep copy of the tree: same values, same shape, same
// colors, fully independent storage.
// Time: O(n)
func (u *RBTree[T]) Clone() *RBTree[T] {
	return &RBTree[T]{root: cloneNode(u.root, nil), sz: u.sz}
}

// CopyFrom makes u an element-wise copy of src, walking both trees in
// lock-step and reusing u's nodes in place wherever both sides have one
// at the same structural position. Repeated CopyFrom between same-shaped
// trees allocates nothing.
// Time: O(n)
func (u *RBTree[T]) CopyFrom(src *RBTree[T]) {
	reconcile(&u.root, nil, src.root)
	u.sz = src.sz
}

// Swap exchanges the contents of two trees without touching any node.
// Time: O(1)
func (u *RBTree[T]) Swap(o *RBTree[T]) {
	u.root, o.root = o.root, u.root
	u.sz, o.sz = o.sz, u.sz
}

// Move empties u, then takes over src's storage, leaving src empty.
// Time: O(1)
func (u *RBTree[T]) Move(src *RBTree[T]) {
	u.Clear()
	u.Swap(src)
}

// Assign replaces u's contents with the elements of vs, inserted in
// order without uniqueness. The recorded size is the number of
// insertions performed, which for plain insertion always equals len(vs).
// Time: O(n*log n)
func (u *RBTree[T]) Assign(vs []T) {
	u.Clear()
	for _, v := range vs {
		u.Insert(v, false)
	}
}

// Minimum element of the tree.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return leftmost(u.root).v, true
}

// Maximum element of the tree.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// InOrder calls f on every element in sorted order until f returns
// false. The tree must not be modified during the traversal.
func (u *RBTree[T]) InOrder(f func(T) bool) {
	if u.root == nil {
		return
	}
	for cur := leftmost(u.root); cur != nil; cur = succ(cur) {
		if !f(cur.v) {
			return
		}
	}
}
