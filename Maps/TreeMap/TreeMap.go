package TreeMap

import (
	"github.com/g-m-twostay/ordered-utils/Maps"
	"github.com/g-m-twostay/ordered-utils/Trees"
	"golang.org/x/exp/constraints"
)

var _ Maps.SortedMap[int, int] = (*TreeMap[int, int])(nil)

// Pair is a key-value entry. Ordering and equality consider only Key, so
// the backing tree dedups and locates entries by key alone.
type Pair[K constraints.Ordered, V any] struct {
	Key K
	Val V
}

func (p Pair[K, V]) LessThan(o Pair[K, V]) bool { return p.Key < o.Key }

func (p Pair[K, V]) Equals(o Pair[K, V]) bool { return p.Key == o.Key }

// TreeMap is a sorted map backed by a red-black tree of Pairs. Not safe
// for concurrent use.
type TreeMap[K constraints.Ordered, V any] struct {
	t Trees.CRBTree[Pair[K, V]]
}

// New returns an empty TreeMap.
func New[K constraints.Ordered, V any]() *TreeMap[K, V] {
	return &TreeMap[K, V]{}
}

// Put v under k, replacing the existing entry if present. Returns the
// previous value, or the zero value if k was absent.
func (u *TreeMap[K, V]) Put(k K, v V) (old V) {
	if it := u.t.Find(Pair[K, V]{Key: k}); it.Valid() {
		old = it.Item().Val
		u.t.Erase(it)
	}
	u.t.Insert(Pair[K, V]{k, v}, false)
	return
}

// HasKey reports whether k is present.
func (u *TreeMap[K, V]) HasKey(k K) bool {
	return u.t.Has(Pair[K, V]{Key: k})
}

// Get the value under k. Returns the zero value if k is absent.
func (u *TreeMap[K, V]) Get(k K) (v V) {
	if it := u.t.Find(Pair[K, V]{Key: k}); it.Valid() {
		v = it.Item().Val
	}
	return
}

// Remove the entry under k. Returns true if the removal is successful.
func (u *TreeMap[K, V]) Remove(k K) bool {
	it := u.t.Find(Pair[K, V]{Key: k})
	if !it.Valid() {
		return false
	}
	u.t.Erase(it)
	return true
}

// Take removes and returns the entry with the smallest key. Returns zero
// values if the map is empty.
func (u *TreeMap[K, V]) Take() (k K, v V) {
	if it := u.t.Begin(); it.Valid() {
		p := it.Item()
		k, v = p.Key, p.Val
		u.t.Erase(it)
	}
	return
}

// Keys in ascending order.
func (u *TreeMap[K, V]) Keys() func() K {
	it := u.t.Begin()
	return func() (k K) {
		if it.Valid() {
			k = it.Item().Key
			it = it.Next()
		}
		return
	}
}

// Values in ascending key order.
func (u *TreeMap[K, V]) Values() func() V {
	it := u.t.Begin()
	return func() (v V) {
		if it.Valid() {
			v = it.Item().Val
			it = it.Next()
		}
		return
	}
}

// Pairs in ascending key order.
func (u *TreeMap[K, V]) Pairs() func() (K, V) {
	it := u.t.Begin()
	return func() (k K, v V) {
		if it.Valid() {
			p := it.Item()
			k, v = p.Key, p.Val
			it = it.Next()
		}
		return
	}
}

// Size of the map.
func (u *TreeMap[K, V]) Size() uint {
	return u.t.Size()
}

// Range over the entries in ascending key order and call f on them.
// Stops when f returns false. The map must not be modified during the
// iteration.
func (u *TreeMap[K, V]) Range(f func(K, V) bool) {
	u.t.InOrder(func(p Pair[K, V]) bool {
		return f(p.Key, p.Val)
	})
}

// Min entry of the map.
func (u *TreeMap[K, V]) Min() (K, V, bool) {
	if p, ok := u.t.Minimum(); ok {
		return p.Key, p.Val, true
	}
	var k K
	var v V
	return k, v, false
}

// Max entry of the map.
func (u *TreeMap[K, V]) Max() (K, V, bool) {
	if p, ok := u.t.Maximum(); ok {
		return p.Key, p.Val, true
	}
	var k K
	var v V
	return k, v, false
}

// Clear removes every entry.
func (u *TreeMap[K, V]) Clear() {
	u.t.Clear()
}
