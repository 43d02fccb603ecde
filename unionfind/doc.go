// Package unionfind implements a disjoint-set (union-find) structure
// over dense zero-based element indices, with path compression and
// union by size.
//
// Overview:
//
//   - A UnionFind partitions the elements [0, n) into disjoint sets.
//     Initially every element is its own singleton set.
//   - Find returns the canonical representative (root) of an element's
//     set, compressing the walked path so repeat queries are near O(1).
//   - Union merges the sets containing two elements and reports whether
//     a merge actually happened — the exact capability Kruskal needs to
//     decide whether an edge closes a cycle.
//
// Complexity:
//
//   - Find / Union: O(α(n)) amortized, where α is the inverse Ackermann
//     function — effectively constant.
//   - New: O(n).
//
// Error handling (sentinel):
//
//   - ErrElementOutOfRange — an element index outside [0, n).
//
// Example usage:
//
//	uf, _ := unionfind.New(4)
//	merged, _ := uf.Union(0, 1) // true: two singletons merged
//	merged, _ = uf.Union(1, 0)  // false: already the same set
//
// Consumers that only need the merge capability should accept the
// Merger interface rather than the concrete type.
package unionfind
