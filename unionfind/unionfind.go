// Package unionfind provides the disjoint-set structure consumed by
// Kruskal's minimum-spanning-tree algorithm.
package unionfind

import (
	"errors"
	"fmt"
)

// ErrElementOutOfRange indicates an element index outside [0, n).
var ErrElementOutOfRange = errors.New("unionfind: element index out of range")

// Merger is the capability surface Kruskal depends on: merge two
// elements' sets and learn whether they were previously separate.
type Merger interface {
	// Union merges the sets containing a and b.
	// Reports true iff two distinct sets were actually merged.
	Union(a, b int) (bool, error)
}

// UnionFind tracks a partition of the elements [0, n) into disjoint
// sets, using path compression on Find and union by size on Union.
type UnionFind struct {
	parent []int // parent[i] is i's parent; parent[root] == root
	size   []int // size[root] is the number of elements in root's set
	sets   int   // current number of disjoint sets
}

// New creates a UnionFind over n singleton sets.
// Returns an error if n is negative.
// Complexity: O(n).
func New(n int) (*UnionFind, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: size %d", ErrElementOutOfRange, n)
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		sets:   n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len reports the number of elements the structure was created with.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Sets reports the current number of disjoint sets.
func (uf *UnionFind) Sets() int { return uf.sets }

// Find returns the root of the set containing x, compressing the
// walked path along the way.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Find(x int) (int, error) {
	if x < 0 || x >= len(uf.parent) {
		return 0, fmt.Errorf("%w: %d of %d", ErrElementOutOfRange, x, len(uf.parent))
	}

	return uf.find(x), nil
}

// find is the unchecked core of Find. Iterative halving avoids deep
// recursion on degenerate chains.
func (uf *UnionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]] // point x at its grandparent
		x = uf.parent[x]
	}

	return x
}

// Union merges the sets containing a and b, attaching the smaller
// tree under the larger root. Reports true iff the elements were in
// distinct sets before the call.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Union(a, b int) (bool, error) {
	rootA, err := uf.Find(a)
	if err != nil {
		return false, err
	}
	rootB, err := uf.Find(b)
	if err != nil {
		return false, err
	}
	if rootA == rootB {
		return false, nil
	}

	// Union by size: the smaller set is absorbed into the larger.
	if uf.size[rootA] < uf.size[rootB] {
		rootA, rootB = rootB, rootA
	}
	uf.parent[rootB] = rootA
	uf.size[rootA] += uf.size[rootB]
	uf.sets--

	return true, nil
}

// Connected reports whether a and b currently share a set.
func (uf *UnionFind) Connected(a, b int) (bool, error) {
	rootA, err := uf.Find(a)
	if err != nil {
		return false, err
	}
	rootB, err := uf.Find(b)
	if err != nil {
		return false, err
	}

	return rootA == rootB, nil
}
