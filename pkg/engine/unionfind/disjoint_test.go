package unionfind

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestNew_Singletons(t *testing.T) {
	ds := New(5)
	testutil.AssertEqual(t, "len", ds.Len(), 5)
	testutil.AssertEqual(t, "count", ds.Count(), 5)
	for i := 0; i < 5; i++ {
		testutil.AssertEqual(t, fmt.Sprintf("root of %d", i), ds.Find(i), i)
		testutil.AssertEqual(t, fmt.Sprintf("size of %d", i), ds.SizeOf(i), 1)
	}
}

func TestUnion_MergesGroups(t *testing.T) {
	ds := New(6)

	if !ds.Union(0, 1) {
		t.Fatal("first union of 0 and 1 reported no merge")
	}
	if ds.Union(1, 0) {
		t.Error("second union of 0 and 1 reported a merge")
	}
	ds.Union(2, 3)
	ds.Union(3, 1)

	testutil.AssertEqual(t, "count", ds.Count(), 3)
	testutil.AssertEqual(t, "0~2", ds.Connected(0, 2), true)
	testutil.AssertEqual(t, "0~4", ds.Connected(0, 4), false)
	testutil.AssertEqual(t, "size", ds.SizeOf(3), 4)
}

func TestUnion_BySize(t *testing.T) {
	ds := New(4)
	ds.Union(0, 1) // root 0, size 2
	ds.Union(2, 0) // smaller tree 2 goes under 0

	testutil.AssertEqual(t, "root of 2", ds.Find(2), 0)

	ds2 := New(2)
	ds2.Union(0, 1) // equal sizes, q under p
	testutil.AssertEqual(t, "tie root", ds2.Find(1), 0)
}

func TestFind_CompressesPath(t *testing.T) {
	ds := New(4)
	// Build the chain 3 -> 2 -> 0 by hand, then check compression.
	ds.parent[1] = 0
	ds.parent[2] = 1
	ds.parent[3] = 2

	testutil.AssertEqual(t, "root", ds.Find(3), 0)
	for _, v := range []int{1, 2, 3} {
		testutil.AssertEqual(t, fmt.Sprintf("parent of %d", v), ds.parent[v], 0)
	}
}

func TestValidate_Panics(t *testing.T) {
	tests := map[string]func(ds *DisjointSet){
		"find negative":   func(ds *DisjointSet) { ds.Find(-1) },
		"find past end":   func(ds *DisjointSet) { ds.Find(3) },
		"union past end":  func(ds *DisjointSet) { ds.Union(0, 7) },
		"connected bad p": func(ds *DisjointSet) { ds.Connected(-2, 0) },
	}

	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok {
					t.Fatalf("expected error panic, got %v", r)
				}
				if !errors.Is(err, ErrInvalidIndex) {
					t.Errorf("panic %v does not wrap ErrInvalidIndex", err)
				}
			}()
			fn(New(3))
		})
	}
}

func TestNew_NegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	New(-1)
}

// naiveLabels tracks groups with a label per element, relabelling on every union.
type naiveLabels []int

func (n naiveLabels) union(p, q int) {
	from, to := n[q], n[p]
	for i := range n {
		if n[i] == from {
			n[i] = to
		}
	}
}

func TestRandomUnions_MatchNaivePartition(t *testing.T) {
	const size = 40
	rng := rand.New(rand.NewSource(11))

	for round := 0; round < 20; round++ {
		ds := New(size)
		ref := make(naiveLabels, size)
		for i := range ref {
			ref[i] = i
		}

		for i := 0; i < 30; i++ {
			p, q := rng.Intn(size), rng.Intn(size)
			merged := ds.Union(p, q)
			wasSeparate := ref[p] != ref[q]
			ref.union(p, q)
			if merged != wasSeparate {
				t.Fatalf("round %d: Union(%d, %d) = %v, want %v", round, p, q, merged, wasSeparate)
			}
		}

		groups := map[int]bool{}
		for p := 0; p < size; p++ {
			groups[ref[p]] = true
			for q := 0; q < size; q++ {
				if ds.Connected(p, q) != (ref[p] == ref[q]) {
					t.Fatalf("round %d: Connected(%d, %d) disagrees with reference", round, p, q)
				}
			}
		}
		testutil.AssertEqual(t, "count", ds.Count(), len(groups))
	}
}
