// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package canon implements the canonicalizer: the procedure that
// reorders a SymbolicTerm's tensors, operators and dummy indices into
// the unique representative of its equivalence class under
// permutation symmetry and dummy-index relabeling.
//
// Canonicalize is deterministic and referentially transparent: two
// terms equal up to relabeling of dummies and tensor symmetry always
// produce byte-identical canonical terms. This is the property the
// rest of the engine (Expression merging, Wick contraction) is built
// on.
package canon // import "gonum.org/v1/wick/canon"

import (
	"sort"

	"gonum.org/v1/wick/index"
	"gonum.org/v1/wick/internal/combin"
	"gonum.org/v1/wick/orbitalspace"
	"gonum.org/v1/wick/tensor"
	"gonum.org/v1/wick/term"
)

// Canonicalize reorders t's tensors, renames its dummy indices,
// reorders each tensor's index slots, and sorts its operator string,
// mutating t in place. It returns the accumulated sign the caller
// should multiply the term's coefficient by; the sign is always +1 or
// -1.
func Canonicalize(reg *orbitalspace.Registry, t *term.SymbolicTerm) int {
	orderTensors(reg, t)
	relabelDummies(reg, t)
	sign := sortTensorSlots(t)
	sign *= sortOperatorString(t)
	return sign
}

// connPair is one entry of a tensor's connectivity signature: the
// label of a neighboring tensor and the per-space count of indices
// shared with it.
type connPair struct {
	label  string
	counts []int
}

func lessConnPair(a, b connPair) bool {
	if a.label != b.label {
		return a.label < b.label
	}
	return lessIntSlice(a.counts, b.counts)
}

func lessIntSlice(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func lessConnList(a, b []connPair) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if lessConnPair(a[i], b[i]) {
			return true
		}
		if lessConnPair(b[i], a[i]) {
			return false
		}
	}
	return len(a) < len(b)
}

// commonCount returns num_indices_per_space of the index set shared
// between a and b (index identity only, Summed ignored).
func commonCount(a, b []index.Index, numSpaces int) []int {
	bSet := make(map[index.Index]bool, len(b))
	for _, ix := range b {
		bSet[index.Index{Space: ix.Space, Pos: ix.Pos}] = true
	}
	var common []index.Index
	for _, ix := range a {
		key := index.Index{Space: ix.Space, Pos: ix.Pos}
		if bSet[key] {
			common = append(common, ix)
		}
	}
	return index.CountPerSpace(common, numSpaces)
}

// connectivity computes, for tensor i in tensors, the sorted
// upper-connectivity and lower-connectivity signatures: for each other
// tensor, the per-space count of indices that tensor i's upper slots
// share with the other tensor's upper slots (upper-connectivity), and
// that tensor i's lower slots share with the other tensor's upper
// slots (lower-connectivity). A contraction always pairs a creation
// leg (an upper slot) against an annihilation leg (a lower slot), so
// two tensors are connected exactly when one's upper overlaps the
// other's lower.
func connectivity(tensors []tensor.Tensor, i, numSpaces int) (upper, lower []connPair) {
	t := tensors[i]
	for j, other := range tensors {
		if j == i {
			continue
		}
		upper = append(upper, connPair{label: other.Label, counts: commonCount(t.Upper, other.Upper, numSpaces)})
		lower = append(lower, connPair{label: other.Label, counts: commonCount(t.Lower, other.Upper, numSpaces)})
	}
	sort.Slice(upper, func(a, b int) bool { return lessConnPair(upper[a], upper[b]) })
	sort.Slice(lower, func(a, b int) bool { return lessConnPair(lower[a], lower[b]) })
	return upper, lower
}

// orderTensors sorts t.Tensors by the score tuple (label, rank,
// lower-per-space, upper-per-space, lower-connectivity,
// upper-connectivity, intrinsic tensor order). Reordering tensors
// carries no sign: the tensor product commutes.
func orderTensors(reg *orbitalspace.Registry, t *term.SymbolicTerm) {
	n := len(t.Tensors)
	if n < 2 {
		return
	}
	numSpaces := reg.NumSpaces()
	upperConn := make([][]connPair, n)
	lowerConn := make([][]connPair, n)
	for i := range t.Tensors {
		upperConn[i], lowerConn[i] = connectivity(t.Tensors, i, numSpaces)
	}
	less := func(i, j int) bool {
		a, b := t.Tensors[i], t.Tensors[j]
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		if a.Rank() != b.Rank() {
			return a.Rank() < b.Rank()
		}
		if c := lessIntSlice(index.CountPerSpace(a.Lower, numSpaces), index.CountPerSpace(b.Lower, numSpaces)); c {
			return true
		} else if lessIntSlice(index.CountPerSpace(b.Lower, numSpaces), index.CountPerSpace(a.Lower, numSpaces)) {
			return false
		}
		if c := lessIntSlice(index.CountPerSpace(a.Upper, numSpaces), index.CountPerSpace(b.Upper, numSpaces)); c {
			return true
		} else if lessIntSlice(index.CountPerSpace(b.Upper, numSpaces), index.CountPerSpace(a.Upper, numSpaces)) {
			return false
		}
		if lessConnList(lowerConn[i], lowerConn[j]) {
			return true
		} else if lessConnList(lowerConn[j], lowerConn[i]) {
			return false
		}
		if lessConnList(upperConn[i], upperConn[j]) {
			return true
		} else if lessConnList(upperConn[j], upperConn[i]) {
			return false
		}
		return a.Less(b)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool { return less(perm[i], perm[j]) })
	t.Tensors = combin.Apply(perm, t.Tensors)
}

// relabelDummies renumbers every index per space, by position, so that
// relabeling-equivalent terms converge to the same labels. Every index
// is numbered as it is first encountered walking the already-sorted
// tensor list, lower slots before upper, with one counter per space.
// Indices that appear only on the operator string are numbered after
// that, continuing the same counters, in their original (space, pos)
// order. They are not numbered in operator-string order: doing so
// would make every reordering of the operator string canonicalize to
// the same string with the same sign, losing the fermionic sign that
// sortOperatorString reports.
func relabelDummies(reg *orbitalspace.Registry, t *term.SymbolicTerm) {
	numSpaces := reg.NumSpaces()
	assigned := make(index.Map)
	counter := make([]int, numSpaces)

	for _, ten := range t.Tensors {
		for _, ix := range ten.Lower {
			reserveTensorIndex(assigned, counter, ix)
		}
		for _, ix := range ten.Upper {
			reserveTensorIndex(assigned, counter, ix)
		}
	}

	opIdx := make([]index.Index, 0, len(t.Operators))
	for _, op := range t.Operators {
		opIdx = append(opIdx, op.Index)
	}
	sort.Slice(opIdx, func(a, b int) bool { return opIdx[a].Less(opIdx[b]) })
	for _, ix := range opIdx {
		reserveTensorIndex(assigned, counter, ix)
	}

	*t = t.Reindex(assigned)
}

func reserveTensorIndex(assigned index.Map, counter []int, ix index.Index) {
	key := index.Index{Space: ix.Space, Pos: ix.Pos}
	if _, ok := assigned[key]; ok {
		return
	}
	assigned[key] = index.Index{Space: key.Space, Pos: counter[key.Space]}
	counter[key.Space]++
}

// sortTensorSlots sorts each tensor's upper and lower index slots by
// (space, pos), multiplying
// the running sign by the permutation parity for Antisymmetric
// tensors only. Symmetric tensors are sorted with no sign.
// Nonsymmetric tensors are never reordered.
func sortTensorSlots(t *term.SymbolicTerm) int {
	sign := 1
	for i, ten := range t.Tensors {
		if ten.Symmetry == tensor.Nonsymmetric {
			continue
		}
		lower, lp := tensor.SortSlot(ten.Lower)
		upper, up := tensor.SortSlot(ten.Upper)
		ten.Lower = lower
		ten.Upper = upper
		t.Tensors[i] = ten
		if ten.Symmetry == tensor.Antisymmetric {
			sign *= lp * up
		}
	}
	return sign
}

// sortOperatorString orders SQOperators by (kind, space, pos_key,
// original_pos), where annihilators within a space sort by descending
// position, and returns the sign of the sorting permutation.
func sortOperatorString(t *term.SymbolicTerm) int {
	n := len(t.Operators)
	if n < 2 {
		return 1
	}
	less := func(i, j int) bool {
		a, b := t.Operators[i], t.Operators[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Index.Space != b.Index.Space {
			return a.Index.Space < b.Index.Space
		}
		pa, pb := posKey(a), posKey(b)
		if pa != pb {
			return pa < pb
		}
		return i < j
	}
	perm, parity := combin.SortPermutation(n, less)
	t.Operators = combin.Apply(perm, t.Operators)
	return parity
}

func posKey(op term.SQOperator) int {
	if op.Kind == term.Creation {
		return op.Index.Pos
	}
	return -op.Index.Pos
}
