package Maps

// SortedMap associates keys with values and keeps keys ordered. Keys,
// Values, and Pairs return stateful generators that walk the entries in
// ascending key order and yield zero values once exhausted; the map must
// not be modified while a generator is in use. Take removes the entry
// with the smallest key.
type SortedMap[K, V any] interface {
	Put(K, V) V
	HasKey(K) bool
	Get(K) V
	Remove(K) bool
	Take() (K, V)
	Keys() func() K
	Values() func() V
	Pairs() func() (K, V)
	Size() uint
}
