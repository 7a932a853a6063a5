// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graphcanon refines canon.Canonicalize for terms that differ
// only by an automorphism of their tensor-connectivity graph: two
// terms whose tensors are structurally indistinguishable up to the
// raw-index tiebreak of canon's tensor-ordering step can otherwise
// canonicalize to different keys purely because of which arbitrary
// index labels the Wick engine happened to assign during contraction
// enumeration. It individualizes each group of such indistinguishable
// summed indices and keeps the lexicographically smallest canonical
// image, in the spirit of the individualize-and-refine approach to
// graph-isomorphism canonical forms.
package graphcanon // import "gonum.org/v1/wick/internal/graphcanon"

import (
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/wick/canon"
	"gonum.org/v1/wick/index"
	"gonum.org/v1/wick/orbitalspace"
	"gonum.org/v1/wick/term"
)

// maxGroupSize bounds the size of any single symmetry group a brute
// force search will explore; full automorphism search is factorial in
// group size, and groups of dummy indices this large are not expected
// for the tensor ranks this engine targets.
const maxGroupSize = 6

// maxGroups bounds how many independent symmetry groups are searched
// together, since the work is the product of each group's factorial.
const maxGroups = 3

// Canonicalize refines canon.Canonicalize(reg, t) by trying every
// relabeling of t's indistinguishable summed-index groups and keeping
// whichever relabeling canonicalizes to the lexicographically
// smallest term. It returns the sign to apply to the term's
// coefficient, exactly like canon.Canonicalize, and mutates *t in
// place to the chosen canonical image.
//
// If the term has no symmetry groups, or a group is too large to
// search, it falls back to canon.Canonicalize unchanged.
func Canonicalize(reg *orbitalspace.Registry, t *term.SymbolicTerm) int {
	groups := symmetryGroups(t)
	if len(groups) == 0 || len(groups) > maxGroups {
		return canon.Canonicalize(reg, t)
	}
	for _, g := range groups {
		if len(g) > maxGroupSize {
			return canon.Canonicalize(reg, t)
		}
	}

	var (
		found    bool
		bestKey  string
		bestSign int
		bestTerm term.SymbolicTerm
	)
	searchGroups(groups, 0, *t, func(candidate term.SymbolicTerm) {
		sign := canon.Canonicalize(reg, &candidate)
		key := candidate.Key()
		if !found || key < bestKey {
			found = true
			bestKey = key
			bestSign = sign
			bestTerm = candidate
		}
	})
	*t = bestTerm
	return bestSign
}

// signature returns a string identifying every (tensor label, slot
// side) pair ix occurs in within t, prefixed by its orbital space so
// indices from different spaces never compare equal.
func signature(t *term.SymbolicTerm, ix index.Index) string {
	var parts []string
	for _, ten := range t.Tensors {
		for _, u := range ten.Upper {
			if u.Equal(ix) {
				parts = append(parts, ten.Label+":U")
			}
		}
		for _, l := range ten.Lower {
			if l.Equal(ix) {
				parts = append(parts, ten.Label+":L")
			}
		}
	}
	sort.Strings(parts)
	return strconv.Itoa(ix.Space) + "|" + strings.Join(parts, ",")
}

// symmetryGroups partitions t's tensor-bound summed indices (indices
// appearing on the free operator string are excluded: their identity
// is fixed by the operator string itself, not subject to relabeling)
// into groups that share an identical signature, keeping only groups
// of size >= 2.
func symmetryGroups(t *term.SymbolicTerm) [][]index.Index {
	onOperator := make(map[index.Index]bool)
	for _, op := range t.Operators {
		onOperator[op.Index] = true
	}

	bySig := make(map[string][]index.Index)
	seen := make(map[index.Index]bool)
	for _, ten := range t.Tensors {
		for _, ix := range ten.Indices() {
			if onOperator[ix] || seen[ix] {
				continue
			}
			seen[ix] = true
			bySig[signature(t, ix)] = append(bySig[signature(t, ix)], ix)
		}
	}

	var groups [][]index.Index
	for _, g := range bySig {
		if len(g) > 1 {
			groups = append(groups, g)
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0].Less(groups[j][0]) })
	return groups
}

// searchGroups enumerates every combination of permutations across
// groups[gi:], applying each to a substitution built on top of base,
// and invokes report with the resulting term for every leaf.
func searchGroups(groups [][]index.Index, gi int, base term.SymbolicTerm, report func(term.SymbolicTerm)) {
	if gi == len(groups) {
		report(base)
		return
	}
	g := groups[gi]
	permute(g, func(image []index.Index) {
		m := make(index.Map)
		for i, orig := range g {
			m[orig] = image[i]
		}
		searchGroups(groups, gi+1, base.Reindex(m), report)
	})
}

// permute calls visit once for every permutation of items, reusing a
// scratch slice across calls.
func permute(items []index.Index, visit func([]index.Index)) {
	n := len(items)
	scratch := append([]index.Index(nil), items...)
	used := make([]bool, n)
	current := make([]index.Index, 0, n)

	var rec func()
	rec = func() {
		if len(current) == n {
			visit(current)
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			current = append(current, scratch[i])
			rec()
			current = current[:len(current)-1]
			used[i] = false
		}
	}
	rec()
}
