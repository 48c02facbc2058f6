// Package unionfind provides an index-based disjoint-set forest with path
// compression and union by size.
package unionfind

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex is the panic value (wrapped) raised for an index outside [0, n).
var ErrInvalidIndex = errors.New("index out of range")

// DisjointSet partitions the indices 0..n-1 into disjoint groups
type DisjointSet struct {
	parent []int
	size   []int
	count  int
}

// New creates n singleton sets
func New(n int) *DisjointSet {
	if n < 0 {
		panic(fmt.Errorf("%w: negative size %d", ErrInvalidIndex, n))
	}
	ds := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.size[i] = 1
	}
	return ds
}

// Len returns the number of elements
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// Count returns the number of disjoint groups
func (ds *DisjointSet) Count() int {
	return ds.count
}

func (ds *DisjointSet) validate(v int) {
	if v < 0 || v >= len(ds.parent) {
		panic(fmt.Errorf("%w: index %d, size %d", ErrInvalidIndex, v, len(ds.parent)))
	}
}

// Find returns the root of v's group, compressing the path on the way
func (ds *DisjointSet) Find(v int) int {
	ds.validate(v)
	root := v
	for root != ds.parent[root] {
		root = ds.parent[root]
	}
	for v != root {
		next := ds.parent[v]
		ds.parent[v] = root
		v = next
	}
	return root
}

// Connected reports whether p and q are in the same group
func (ds *DisjointSet) Connected(p, q int) bool {
	return ds.Find(p) == ds.Find(q)
}

// SizeOf returns the size of v's group
func (ds *DisjointSet) SizeOf(v int) int {
	return ds.size[ds.Find(v)]
}

// Union merges the groups of p and q, attaching the smaller tree under the larger.
// Ties attach q's root under p's. Returns false if they were already connected.
func (ds *DisjointSet) Union(p, q int) bool {
	rootP := ds.Find(p)
	rootQ := ds.Find(q)
	if rootP == rootQ {
		return false
	}

	if ds.size[rootP] < ds.size[rootQ] {
		ds.parent[rootP] = rootQ
		ds.size[rootQ] += ds.size[rootP]
	} else {
		ds.parent[rootQ] = rootP
		ds.size[rootP] += ds.size[rootQ]
	}
	ds.count--
	return true
}
