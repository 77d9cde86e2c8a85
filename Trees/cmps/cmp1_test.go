package cmps

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/ordered-utils/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares with https://github.com/emirpasic/gods redblacktree,
// https://github.com/petar/GoLLRB, and https://github.com/google/btree
// as the ordered peers, plus https://github.com/alphadose/haxmap and
// https://github.com/cornelk/hashmap as unordered baselines to show
// what the ordering guarantee costs on point operations.

const benchmarkItemCount = 1024

var sideEff int

func setupRBTree(b *testing.B) *Trees.RBTree[int] {
	b.Helper()
	t := Trees.New[int]()
	for i := 0; i < benchmarkItemCount; i++ {
		t.Insert(i, false)
	}
	return t
}

func setupGods(b *testing.B) *redblacktree.Tree {
	b.Helper()
	t := redblacktree.NewWithIntComparator()
	for i := 0; i < benchmarkItemCount; i++ {
		t.Put(i, i)
	}
	return t
}

func setupLLRB(b *testing.B) *llrb.LLRB {
	b.Helper()
	t := llrb.New()
	for i := 0; i < benchmarkItemCount; i++ {
		t.ReplaceOrInsert(llrb.Int(i))
	}
	return t
}

func setupBTree(b *testing.B) *btree.BTreeG[int] {
	b.Helper()
	t := btree.NewOrderedG[int](32)
	for i := 0; i < benchmarkItemCount; i++ {
		t.ReplaceOrInsert(i)
	}
	return t
}

func setupHaxMap(b *testing.B) *haxmap.Map[uintptr, uintptr] {
	b.Helper()
	m := haxmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupHashMap(b *testing.B) *hashmap.Map[uintptr, uintptr] {
	b.Helper()
	m := hashmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func Benchmark1ReadRBTree(b *testing.B) {
	t := setupRBTree(b)
	b.ResetTimer()
	for bi := 0; bi < b.N; bi++ {
		for i := 0; i < benchmarkItemCount; i++ {
			it := t.Find(i)
			if !it.Valid() || it.Item() != i {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadGods(b *testing.B) {
	t := setupGods(b)
	b.ResetTimer()
	for bi := 0; bi < b.N; bi++ {
		for i := 0; i < benchmarkItemCount; i++ {
			j, ok := t.Get(i)
			if !ok || j.(int) != i {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadLLRB(b *testing.B) {
	t := setupLLRB(b)
	b.ResetTimer()
	for bi := 0; bi < b.N; bi++ {
		for i := 0; i < benchmarkItemCount; i++ {
			if j := t.Get(llrb.Int(i)); j == nil || int(j.(llrb.Int)) != i {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadBTree(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()
	for bi := 0; bi < b.N; bi++ {
		for i := 0; i < benchmarkItemCount; i++ {
			j, ok := t.Get(i)
			if !ok || j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for bi := 0; bi < b.N; bi++ {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			j, _ := m.Get(i)
			if j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark1ReadHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for bi := 0; bi < b.N; bi++ {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			j, _ := m.Get(i)
			if j != i {
				b.Fail()
			}
		}
	}
}

func Benchmark1WriteRBTree(b *testing.B) {
	for bi := 0; bi < b.N; bi++ {
		t := Trees.New[int]()
		for i := 0; i < benchmarkItemCount; i++ {
			t.Insert(i, false)
		}
	}
}

func Benchmark1WriteGods(b *testing.B) {
	for bi := 0; bi < b.N; bi++ {
		t := redblacktree.NewWithIntComparator()
		for i := 0; i < benchmarkItemCount; i++ {
			t.Put(i, i)
		}
	}
}

func Benchmark1WriteLLRB(b *testing.B) {
	for bi := 0; bi < b.N; bi++ {
		t := llrb.New()
		for i := 0; i < benchmarkItemCount; i++ {
			t.ReplaceOrInsert(llrb.Int(i))
		}
	}
}

func Benchmark1WriteBTree(b *testing.B) {
	for bi := 0; bi < b.N; bi++ {
		t := btree.NewOrderedG[int](32)
		for i := 0; i < benchmarkItemCount; i++ {
			t.ReplaceOrInsert(i)
		}
	}
}

func Benchmark1WriteHaxMap(b *testing.B) {
	for bi := 0; bi < b.N; bi++ {
		m := haxmap.New[uintptr, uintptr]()
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
	}
}

func Benchmark1WriteHashMap(b *testing.B) {
	for bi := 0; bi < b.N; bi++ {
		m := hashmap.New[uintptr, uintptr]()
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
	}
}

func Benchmark1DeleteRBTree(b *testing.B) {
	for bi := 0; bi < b.N; bi++ {
		b.StopTimer()
		t := setupRBTree(b)
		b.StartTimer()
		for i := 0; i < benchmarkItemCount; i++ {
			t.Erase(t.Find(i))
		}
	}
}

func Benchmark1DeleteGods(b *testing.B) {
	for bi := 0; bi < b.N; bi++ {
		b.StopTimer()
		t := setupGods(b)
		b.StartTimer()
		for i := 0; i < benchmarkItemCount; i++ {
			t.Remove(i)
		}
	}
}

func Benchmark1DeleteLLRB(b *testing.B) {
	for bi := 0; bi < b.N; bi++ {
		b.StopTimer()
		t := setupLLRB(b)
		b.StartTimer()
		for i := 0; i < benchmarkItemCount; i++ {
			t.Delete(llrb.Int(i))
		}
	}
}

func Benchmark1DeleteBTree(b *testing.B) {
	for bi := 0; bi < b.N; bi++ {
		b.StopTimer()
		t := setupBTree(b)
		b.StartTimer()
		for i := 0; i < benchmarkItemCount; i++ {
			t.Delete(i)
		}
	}
}

func Benchmark1DeleteHaxMap(b *testing.B) {
	for bi := 0; bi < b.N; bi++ {
		b.StopTimer()
		m := setupHaxMap(b)
		b.StartTimer()
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Del(i)
		}
	}
}

func Benchmark1DeleteHashMap(b *testing.B) {
	for bi := 0; bi < b.N; bi++ {
		b.StopTimer()
		m := setupHashMap(b)
		b.StartTimer()
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Del(i)
		}
	}
}

func Benchmark1AscendRBTree(b *testing.B) {
	t := setupRBTree(b)
	b.ResetTimer()
	for bi := 0; bi < b.N; bi++ {
		t.InOrder(func(v int) bool {
			sideEff = v
			return true
		})
	}
}

func Benchmark1AscendGods(b *testing.B) {
	t := setupGods(b)
	b.ResetTimer()
	for bi := 0; bi < b.N; bi++ {
		for it := t.Iterator(); it.Next(); {
			sideEff = it.Value().(int)
		}
	}
}

func Benchmark1AscendLLRB(b *testing.B) {
	t := setupLLRB(b)
	b.ResetTimer()
	for bi := 0; bi < b.N; bi++ {
		t.AscendGreaterOrEqual(llrb.Int(0), func(i llrb.Item) bool {
			sideEff = int(i.(llrb.Int))
			return true
		})
	}
}

func Benchmark1AscendBTree(b *testing.B) {
	t := setupBTree(b)
	b.ResetTimer()
	for bi := 0; bi < b.N; bi++ {
		t.Ascend(func(v int) bool {
			sideEff = v
			return true
		})
	}
}
