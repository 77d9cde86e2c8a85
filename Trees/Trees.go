package Trees

// Ordered is the constraint for user-defined element types held in a
// CRBTree. LessThan must be a strict total order and Equals its
// equivalence; the tree never inspects elements in any other way. For
// composite elements both may consider only part of the value (a map
// entry orders and compares by its key alone).
type Ordered[T any] interface {
	LessThan(T) bool
	Equals(T) bool
}

// Tree is the surface shared by the ordered trees in this package,
// parameterized over the element type T and the cursor type I. Receivers
// that have a bool as a second return value indicate whether the first
// return value is defined; if calling Minimum on an empty tree, the
// first return value is undefined and shouldn't be used. Unless a method
// notes otherwise, implementations are iterative; recursive ones say so.
// No implementation here is safe for concurrent mutation, or for reads
// concurrent with a mutation.
type Tree[T any, I any] interface {
	//Insert v, returning the cursor to the stored value and whether a
	//new node was created. keepUnique rejects values already present.
	Insert(v T, keepUnique bool) (I, bool)
	//Find the cursor to a value equal to v, End when absent.
	Find(v T) I
	//Erase the node the cursor references, returning the next valid
	//position. Erasing End is a no-op returning End.
	Erase(I) I
	//Begin is the cursor to the smallest element, End when empty.
	Begin() I
	//End is the one-past-the-last cursor.
	End() I
	//Has element v. Prefer Has over Find for existence checks.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//InOrder calls f on each element in sorted order until f returns
	//false. The tree must not be modified during the traversal.
	InOrder(f func(T) bool)
	//Clear removes every element.
	Clear()
	//Empty reports Size()==0.
	Empty() bool
	//Size of the tree.
	Size() uint
	//Corrupt reports whether the structure violates the search-tree
	//ordering, the parent links, or the size accounting. Pure
	//inspection for test harnesses; always false between operations.
	Corrupt() bool
	//ColorsCorrupt reports whether the red-black coloring rules are
	//violated. Pure inspection; guaranteed false only immediately
	//after an insertion, since removal does not rebalance.
	ColorsCorrupt() bool
}
