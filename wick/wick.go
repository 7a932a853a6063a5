// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wick implements the generalized Wick-theorem contraction
// engine: given a product of DiagOperators, it materializes explicit
// ladder operators, enumerates every admissible contraction pattern,
// computes the fermionic sign of each, and sums the resulting
// normal-ordered tensor terms into an Expression.
package wick // import "gonum.org/v1/wick/wick"

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/wick/diag"
	"gonum.org/v1/wick/expr"
	"gonum.org/v1/wick/index"
	"gonum.org/v1/wick/internal/combin"
	"gonum.org/v1/wick/internal/graphcanon"
	"gonum.org/v1/wick/orbitalspace"
	"gonum.org/v1/wick/scalar"
	"gonum.org/v1/wick/tensor"
	"gonum.org/v1/wick/term"
)

// PrintLevel records how verbosely a caller wants diagnostic
// information rendered. WickTheorem itself never performs I/O, and no
// package in this module reads the setting. It exists so callers
// compile against the same configuration surface the original
// implementation exposed.
type PrintLevel int

const (
	PrintNone PrintLevel = iota
	PrintBasic
	PrintSummary
	PrintDetailed
	PrintAll
)

// String implements fmt.Stringer.
func (p PrintLevel) String() string {
	switch p {
	case PrintNone:
		return "none"
	case PrintBasic:
		return "basic"
	case PrintSummary:
		return "summary"
	case PrintDetailed:
		return "detailed"
	case PrintAll:
		return "all"
	default:
		return "wick.PrintLevel(invalid)"
	}
}

var (
	// ErrNegativeRank is returned when a rank-window bound is negative.
	ErrNegativeRank = errors.New("wick: negative rank bound")
	// ErrRankWindow is returned when minRank > maxRank.
	ErrRankWindow = errors.New("wick: min rank exceeds max rank")
)

// WickTheorem configures and runs the contraction engine. The zero
// value has max cumulant 0 (plain normal ordering, no density
// cumulants) and graph canonicalization disabled.
type WickTheorem struct {
	maxCumulant int
	canonGraph  bool
	printLevel  PrintLevel
}

// New returns a WickTheorem with max cumulant 0: no contraction is
// admissible and every leg stays uncontracted. Call SetMaxCumulant(1)
// to admit pair contractions, and a larger k to also admit
// density-cumulant blocks of up to 2*k legs.
func New() *WickTheorem {
	return &WickTheorem{}
}

// SetMaxCumulant bounds both the largest contraction block
// (2*k legs) and whether any contraction at all is admissible (k=0
// disables all contraction). It panics if k is negative.
func (w *WickTheorem) SetMaxCumulant(k int) {
	if k < 0 {
		panic("wick: negative max cumulant")
	}
	w.maxCumulant = k
}

// SetCanonicalizeGraph enables or disables the optional labeled-graph
// canonicalization pass that unifies terms the per-term canonicalizer
// cannot distinguish because they differ only by an automorphism of
// the tensor-connectivity graph.
func (w *WickTheorem) SetCanonicalizeGraph(on bool) {
	w.canonGraph = on
}

// SetPrintLevel records the caller's desired diagnostic verbosity.
// WickTheorem never performs I/O itself; the setting is only stored
// and returned by PrintLevel.
func (w *WickTheorem) SetPrintLevel(p PrintLevel) {
	w.printLevel = p
}

// PrintLevel returns the configured diagnostic verbosity.
func (w *WickTheorem) PrintLevel() PrintLevel {
	return w.printLevel
}

// leg is one materialized ladder operator: its fresh Index, its kind,
// and which DiagOperator of the product it came from.
type leg struct {
	ix    index.Index
	kind  term.Kind
	opPos int
}

// materializeLegs assigns a fresh Index to every creation and
// annihilation leg of every operator in prod, grouped by space and
// unique across the whole product. Within one DiagOperator, legs are
// ordered: for each space in registration order, its creation legs,
// then for each space in registration order, its annihilation legs.
// Operators are materialized left-to-right, giving a single linear
// operator string.
func materializeLegs(reg *orbitalspace.Registry, prod diag.OperatorProduct) []leg {
	numSpaces := reg.NumSpaces()
	counter := make([]int, numSpaces)
	var legs []leg
	for opPos, d := range prod {
		for s := 0; s < numSpaces; s++ {
			for c := 0; c < d.Cre[s]; c++ {
				legs = append(legs, leg{ix: index.Index{Space: s, Pos: counter[s]}, kind: term.Creation, opPos: opPos})
				counter[s]++
			}
		}
		for s := 0; s < numSpaces; s++ {
			for c := 0; c < d.Ann[s]; c++ {
				legs = append(legs, leg{ix: index.Index{Space: s, Pos: counter[s]}, kind: term.Annihilation, opPos: opPos})
				counter[s]++
			}
		}
	}
	return legs
}

// Contract enumerates every admissible contraction of prod and
// returns the resulting Expression. coeff is the starting scalar
// prefactor; minRank and maxRank bound the number of legs left
// uncontracted (equivalently, the rank of the resulting tensor part).
// It returns a domain error instead of partial output: either the
// full Expression comes back, or Contract returns a non-nil error.
func (w *WickTheorem) Contract(reg *orbitalspace.Registry, coeff scalar.Rational, prod diag.OperatorProduct, minRank, maxRank int) (*expr.Expression, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	if minRank < 0 || maxRank < 0 {
		return nil, fmt.Errorf("%w: min=%d max=%d", ErrNegativeRank, minRank, maxRank)
	}
	if minRank > maxRank {
		return nil, fmt.Errorf("%w: min=%d max=%d", ErrRankWindow, minRank, maxRank)
	}

	legs := materializeLegs(reg, prod)
	n := len(legs)
	out := expr.New()

	handle := func(blocks []combin.Block) bool {
		w.considerPartition(reg, legs, blocks, minRank, maxRank, coeff, out)
		return true
	}

	if w.maxCumulant <= 0 || n == 0 {
		blocks := make([]combin.Block, n)
		for i := 0; i < n; i++ {
			blocks[i] = combin.Block{i}
		}
		handle(blocks)
		return out, nil
	}
	combin.Partitions(n, 1, 2*w.maxCumulant, handle)
	return out, nil
}

// ContractExpression runs Contract over every product of ops weighted
// by its own coefficient, and sums the results.
func (w *WickTheorem) ContractExpression(reg *orbitalspace.Registry, ops *diag.OpExpression, minRank, maxRank int) (*expr.Expression, error) {
	out := expr.New()
	for _, k := range ops.Keys() {
		e, err := w.Contract(reg, ops.Coeff(k), ops.Product(k), minRank, maxRank)
		if err != nil {
			return nil, err
		}
		out.AddExpression(reg, e)
	}
	return out, nil
}

// considerPartition validates one candidate partition of legs into
// contraction blocks (size-1 blocks are uncontracted legs), and if
// admissible and within the rank window, synthesizes its term and
// adds it to out.
func (w *WickTheorem) considerPartition(reg *orbitalspace.Registry, legs []leg, blocks []combin.Block, minRank, maxRank int, coeff scalar.Rational, out *expr.Expression) {
	uncontracted := 0
	for _, b := range blocks {
		if len(b) == 1 {
			uncontracted++
		}
	}
	if uncontracted < minRank || uncontracted > maxRank {
		return
	}

	var tensors []tensor.Tensor
	contracted := make(map[int]bool)
	for _, b := range blocks {
		if len(b) == 1 {
			continue
		}
		t, ok := classifyBlock(reg, legs, b)
		if !ok {
			return
		}
		tensors = append(tensors, t)
		for _, li := range b {
			contracted[li] = true
		}
	}

	var freeOps []term.SQOperator
	for i, l := range legs {
		if !contracted[i] {
			freeOps = append(freeOps, term.SQOperator{Kind: l.kind, Index: l.ix})
		}
	}

	sign := contractionSign(legs, blocks)
	st := term.New(tensors, freeOps)
	signedCoeff := scalar.Sign(sign, coeff)

	if w.canonGraph {
		s := graphcanon.Canonicalize(reg, &st)
		signedCoeff = scalar.Sign(s, signedCoeff)
		out.AddCanonical(st, signedCoeff)
		return
	}
	out.Add(reg, st, signedCoeff)
}

// classifyBlock validates one contraction block of size >= 2 and, if
// admissible, returns the tensor it contributes: a Kronecker delta
// for a determinantal Occupied/Unoccupied pair, or a lambda-k density
// cumulant otherwise.
func classifyBlock(reg *orbitalspace.Registry, legs []leg, block combin.Block) (tensor.Tensor, bool) {
	sp := legs[block[0]].ix.Space
	for _, li := range block[1:] {
		if legs[li].ix.Space != sp {
			return tensor.Tensor{}, false
		}
	}

	if len(block) == 2 {
		return classifyPair(reg, legs, sp, block[0], block[1])
	}
	return classifyCumulant(legs, block)
}

func classifyPair(reg *orbitalspace.Registry, legs []leg, sp int, i, j int) (tensor.Tensor, bool) {
	if legs[i].opPos == legs[j].opPos {
		return tensor.Tensor{}, false // intra-operator contraction forbidden
	}
	lo, hi := i, j
	if hi < lo {
		lo, hi = hi, lo
	}
	kLo, kHi := legs[lo].kind, legs[hi].kind

	switch reg.RDMOf(sp) {
	case orbitalspace.Occupied:
		if kLo == term.Annihilation && kHi == term.Creation {
			return tensor.New("kronecker_delta", []index.Index{legs[hi].ix}, []index.Index{legs[lo].ix}, tensor.Nonsymmetric), true
		}
		return tensor.Tensor{}, false
	case orbitalspace.Unoccupied:
		if kLo == term.Creation && kHi == term.Annihilation {
			return tensor.New("kronecker_delta", []index.Index{legs[lo].ix}, []index.Index{legs[hi].ix}, tensor.Nonsymmetric), true
		}
		return tensor.Tensor{}, false
	default: // General
		if kLo == kHi {
			return tensor.Tensor{}, false
		}
		cre, ann := legs[lo].ix, legs[hi].ix
		if kLo != term.Creation {
			cre, ann = legs[hi].ix, legs[lo].ix
		}
		return tensor.New("lambda1", []index.Index{cre}, []index.Index{ann}, tensor.Antisymmetric), true
	}
}

// classifyCumulant validates a size >= 4 block: it must draw from at
// least two distinct operators and split evenly into creation and
// annihilation legs.
func classifyCumulant(legs []leg, block combin.Block) (tensor.Tensor, bool) {
	ops := make(map[int]bool)
	var cre, ann []index.Index
	for _, li := range block {
		ops[legs[li].opPos] = true
		if legs[li].kind == term.Creation {
			cre = append(cre, legs[li].ix)
		} else {
			ann = append(ann, legs[li].ix)
		}
	}
	if len(ops) < 2 || len(cre) != len(ann) || len(cre) == 0 {
		return tensor.Tensor{}, false
	}
	label := "lambda" + strconv.Itoa(len(cre))
	return tensor.New(label, cre, ann, tensor.Antisymmetric), true
}

// contractionSign computes the parity of the permutation that brings
// every contraction block's legs adjacent in the original operator
// string, with each block's creation legs to the left of its
// annihilation legs. Blocks are ordered by their minimum leg position
// so the permutation is well defined.
func contractionSign(legs []leg, blocks []combin.Block) int {
	ordered := append([]combin.Block(nil), blocks...)
	sort.Slice(ordered, func(a, b int) bool { return minLeg(ordered[a]) < minLeg(ordered[b]) })

	perm := make([]int, 0, len(legs))
	for _, b := range ordered {
		if len(b) == 1 {
			perm = append(perm, b[0])
			continue
		}
		var cre, ann []int
		for _, li := range b {
			if legs[li].kind == term.Creation {
				cre = append(cre, li)
			} else {
				ann = append(ann, li)
			}
		}
		sort.Ints(cre)
		sort.Ints(ann)
		perm = append(perm, cre...)
		perm = append(perm, ann...)
	}
	return combin.Parity(perm)
}

func minLeg(b combin.Block) int {
	m := b[0]
	for _, v := range b[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
