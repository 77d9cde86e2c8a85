package TreeSet

import (
	"github.com/g-m-twostay/ordered-utils/Sets"
	"github.com/g-m-twostay/ordered-utils/Trees"
	"golang.org/x/exp/constraints"
)

var _ Sets.OrderedSet[int] = (*TreeSet[int])(nil)

// TreeSet is a sorted set of unique elements backed by a red-black
// tree: a thin projection of the element onto the tree's stored value.
// All operations forward to Trees.RBTree with unique insertion; nothing
// algorithmic happens here. Not safe for concurrent use.
type TreeSet[E constraints.Ordered] struct {
	t Trees.RBTree[E]
}

// New returns an empty TreeSet.
func New[E constraints.Ordered]() *TreeSet[E] {
	return &TreeSet[E]{}
}

// From returns a TreeSet holding the distinct elements of vs.
func From[E constraints.Ordered](vs []E) *TreeSet[E] {
	u := &TreeSet[E]{}
	for _, v := range vs {
		u.Put(v)
	}
	return u
}

// Put e into the set. Returns true if e wasn't present yet.
func (u *TreeSet[E]) Put(e E) bool {
	_, c := u.t.Insert(e, true)
	return c
}

// Has e in the set.
func (u *TreeSet[E]) Has(e E) bool {
	return u.t.Has(e)
}

// Remove e from the set. Returns true if the removal is successful.
func (u *TreeSet[E]) Remove(e E) bool {
	it := u.t.Find(e)
	if !it.Valid() {
		return false
	}
	u.t.Erase(it)
	return true
}

// Size of the set.
func (u *TreeSet[E]) Size() uint {
	return u.t.Size()
}

// Take removes and returns the smallest element. Returns the zero value
// if the set is empty.
func (u *TreeSet[E]) Take() (e E) {
	if it := u.t.Begin(); it.Valid() {
		e = it.Item()
		u.t.Erase(it)
	}
	return
}

// Range over the elements in ascending order and call f on them. Stops
// when f returns false. The set must not be modified during the
// iteration.
func (u *TreeSet[E]) Range(f func(E) bool) {
	u.t.InOrder(f)
}

// Min element of the set.
func (u *TreeSet[E]) Min() (E, bool) {
	return u.t.Minimum()
}

// Max element of the set.
func (u *TreeSet[E]) Max() (E, bool) {
	return u.t.Maximum()
}

// Clear removes every element.
func (u *TreeSet[E]) Clear() {
	u.t.Clear()
}
