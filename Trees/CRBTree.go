package Trees

// CRBTree is the version of RBTree for user-defined element types
// satisfying the Ordered interface. All methods are implemented exactly
// as RBTree except for using Ordered.LessThan and Ordered.Equals for
// comparisons; see RBTree for the semantics of each. The zero value is
// an empty tree ready for use.
type CRBTree[T Ordered[T]] struct {
	root *node[T]
	sz   uint
}

// NewC returns an empty CRBTree.
func NewC[T Ordered[T]]() *CRBTree[T] {
	return &CRBTree[T]{}
}

// FromC builds a CRBTree by inserting every element of vs in order.
func FromC[T Ordered[T]](vs []T) *CRBTree[T] {
	u := &CRBTree[T]{}
	for _, v := range vs {
		u.Insert(v, false)
	}
	return u
}

func (u *CRBTree[T]) Size() uint {
	return u.sz
}

func (u *CRBTree[T]) Empty() bool {
	return u.sz == 0
}

func (u *CRBTree[T]) Insert(v T, keepUnique bool) (CIterator[T], bool) {
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
		return CIterator[T]{n}, true
	}
	for cur := u.root; ; {
		if v.LessThan(cur.v) {
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
	for top := n; ; top = top.p {
		if top.p == nil {
			u.root = top
			break
		}
	}
	u.sz++
	return CIterator[T]{n}, true
}

func (u *CRBTree[T]) Find(v T) CIterator[T] {
	for cur := u.root; cur != nil; {
		if v.Equals(cur.v) {
			return CIterator[T]{cur}
		}
		if v.LessThan(cur.v) {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return u.End()
}

func (u *CRBTree[T]) Has(v T) bool {
	return u.Find(v).n != nil
}

func (u *CRBTree[T]) Erase(it CIterator[T]) CIterator[T] {
	if it.n == nil {
		return u.End()
	}
	n := eraseNode(&u.root, it.n)
	u.sz--
	return CIterator[T]{n}
}

func (u *CRBTree[T]) Clear() {
	u.root = nil
	u.sz = 0
}

func (u *CRBTree[T]) Begin() CIterator[T] {
	if u.root == nil {
		return u.End()
	}
	return CIterator[T]{leftmost(u.root)}
}

func (u *CRBTree[T]) End() CIterator[T] {
	return CIterator[T]{}
}

func (u *CRBTree[T]) Clone() *CRBTree[T] {
	return &CRBTree[T]{root: cloneNode(u.root, nil), sz: u.sz}
}

func (u *CRBTree[T]) CopyFrom(src *CRBTree[T]) {
	reconcile(&u.root, nil, src.root)
	u.sz = src.sz
}

func (u *CRBTree[T]) Swap(o *CRBTree[T]) {
	u.root, o.root = o.root, u.root
	u.sz, o.sz = o.sz, u.sz
}

func (u *CRBTree[T]) Move(src *CRBTree[T]) {
	u.Clear()
	u.Swap(src)
}

func (u *CRBTree[T]) Assign(vs []T) {
	u.Clear()
	for _, v := range vs {
		u.Insert(v, false)
	}
}

func (u *CRBTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return leftmost(u.root).v, true
}

func (u *CRBTree[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

func (u *CRBTree[T]) InOrder(f func(T) bool) {
	if u.root == nil {
		return
	}
	for cur := leftmost(u.root); cur != nil; cur = succ(cur) {
		if !f(cur.v) {
			return
		}
	}
}
