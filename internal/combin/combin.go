// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package combin implements the combinatorial routines the
// canonicalizer and Wick engine are built on: sort permutations with
// their parity, and partition a set of legs into contraction blocks
// of bounded size.
package combin // import "gonum.org/v1/wick/internal/combin"

import "sort"

const badInput = "combin: wrong input slice length"

// SortPermutation returns the permutation p such that applying p to
// data (p[i] is the index in the original data that ends up at
// position i) yields a sequence ordered by less, together with the
// parity of p: +1 if p is an even permutation of the identity, -1 if
// odd.
//
// less must impose a strict weak order consistent with a total order
// on the elements of data (no ties), otherwise the parity is not well
// defined.
func SortPermutation(n int, less func(i, j int) bool) (perm []int, parity int) {
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return less(perm[i], perm[j])
	})
	return perm, Parity(perm)
}

// Parity returns the sign of the permutation perm, a slice holding a
// permutation of 0..len(perm)-1: +1 if even, -1 if odd. It is computed
// by counting transpositions via cycle decomposition.
func Parity(perm []int) int {
	n := len(perm)
	visited := make([]bool, n)
	sign := 1
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		cycleLen := 0
		for j := i; !visited[j]; j = perm[j] {
			visited[j] = true
			cycleLen++
		}
		if cycleLen%2 == 0 {
			sign = -sign
		}
	}
	return sign
}

// Apply returns a new slice holding data reordered according to perm,
// where perm[i] is the original index of the element that should end
// up at position i. It panics if len(perm) != len(data).
func Apply[T any](perm []int, data []T) []T {
	if len(perm) != len(data) {
		panic(badInput)
	}
	out := make([]T, len(data))
	for i, p := range perm {
		out[i] = data[p]
	}
	return out
}

// Block is one contraction block: the indices, into the flat leg
// list passed to Partitions, that make up that block.
type Block []int

// Partitions enumerates every way to partition the n legs 0..n-1 into
// blocks whose size lies in [minSize, maxSize], calling yield with
// each partition (a slice of Block covering 0..n-1 exactly once, in
// the unique order where each block's least element increases).
// Enumeration stops early if yield returns false.
//
// This realizes the "enumerate contraction blocks up front" strategy
// noted as an equivalent, simpler-to-verify alternative to
// choice-by-choice branching.
func Partitions(n, minSize, maxSize int, yield func(blocks []Block) bool) {
	if n == 0 {
		yield(nil)
		return
	}
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}
	var rec func(remaining []int, acc []Block) bool
	rec = func(remaining []int, acc []Block) bool {
		if len(remaining) == 0 {
			return yield(append([]Block(nil), acc...))
		}
		first := remaining[0]
		rest := remaining[1:]
		maxBlock := maxSize
		if maxBlock > len(remaining) {
			maxBlock = len(remaining)
		}
		for size := minSize; size <= maxBlock; size++ {
			if size < 1 {
				continue
			}
			for combo := range combinations(rest, size-1) {
				block := append(Block{first}, combo...)
				next := subtract(rest, combo)
				if !rec(next, append(acc, block)) {
					return false
				}
			}
		}
		return true
	}
	rec(remaining, nil)
}

// combinations yields every k-element subset of s, as a slice in the
// order elements appear in s.
func combinations(s []int, k int) func(yield func([]int) bool) {
	return func(yield func([]int) bool) {
		n := len(s)
		if k < 0 || k > n {
			return
		}
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		emit := func() []int {
			out := make([]int, k)
			for i, j := range idx {
				out[i] = s[j]
			}
			return out
		}
		if k == 0 {
			yield(nil)
			return
		}
		if !yield(emit()) {
			return
		}
		for {
			i := k - 1
			for i >= 0 && idx[i] == i+n-k {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
			if !yield(emit()) {
				return
			}
		}
	}
}

func subtract(s, remove []int) []int {
	rm := make(map[int]bool, len(remove))
	for _, r := range remove {
		rm[r] = true
	}
	out := make([]int, 0, len(s)-len(remove))
	for _, v := range s {
		if !rm[v] {
			out = append(out, v)
		}
	}
	return out
}
