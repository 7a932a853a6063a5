// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package equation implements Equation, the assignment-level layer
// above Expression: a left-hand-side tensor target, a right-hand-side
// SymbolicTerm, and a scalar factor, plus the two derived operations
// the code-generation layer needs: marking which RHS indices are
// summed, and expanding an antisymmetric two-electron integral into
// its Mulliken-ordered pair.
package equation // import "gonum.org/v1/wick/equation"

import (
	"strings"

	"gonum.org/v1/wick/index"
	"gonum.org/v1/wick/scalar"
	"gonum.org/v1/wick/tensor"
	"gonum.org/v1/wick/term"
)

// Equation is one generated assignment: LHS = Factor * RHS. LHS
// describes the target by its tensor shape alone (it carries no free
// SQOperators); RHS is the fully contracted, canonicalized term being
// assigned to it.
type Equation struct {
	LHS    term.SymbolicTerm
	RHS    term.SymbolicTerm
	Factor scalar.Rational
}

// New returns an Equation over copies of lhs and rhs.
func New(lhs, rhs term.SymbolicTerm, factor scalar.Rational) Equation {
	return Equation{LHS: lhs.Clone(), RHS: rhs.Clone(), Factor: factor}
}

// TargetIndices returns the deduplicated indices appearing on the
// LHS: the set that SetSummationIndices treats as free.
func (eq Equation) TargetIndices() []index.Index {
	return eq.LHS.Indices()
}

// SetSummationIndices returns a copy of eq whose RHS indices not
// among the LHS's target indices are marked Summed. Each target index
// stays unsummed only at its first RHS occurrence (tensors in order,
// upper slots before lower, then operators); every later occurrence is
// marked Summed: `E^a_i += t^a_i f^i_i` marks the `i`s on `f` (not
// matched to the LHS) as summed.
func SetSummationIndices(eq Equation) Equation {
	targets := make(map[index.Index]bool)
	for _, ix := range eq.TargetIndices() {
		targets[bare(ix)] = true
	}
	return Equation{LHS: eq.LHS, RHS: markSummed(eq.RHS, targets), Factor: eq.Factor}
}

func bare(ix index.Index) index.Index {
	return index.Index{Space: ix.Space, Pos: ix.Pos}
}

func markSummed(t term.SymbolicTerm, targets map[index.Index]bool) term.SymbolicTerm {
	tensors := make([]tensor.Tensor, len(t.Tensors))
	for i, ten := range t.Tensors {
		tensors[i] = tensor.New(ten.Label, markIndices(ten.Upper, targets), markIndices(ten.Lower, targets), ten.Symmetry)
	}
	ops := make([]term.SQOperator, len(t.Operators))
	for i, op := range t.Operators {
		ops[i] = term.SQOperator{Kind: op.Kind, Index: markOne(op.Index, targets)}
	}
	return term.New(tensors, ops)
}

func markIndices(idxs []index.Index, targets map[index.Index]bool) []index.Index {
	out := make([]index.Index, len(idxs))
	for i, ix := range idxs {
		out[i] = markOne(ix, targets)
	}
	return out
}

func markOne(ix index.Index, targets map[index.Index]bool) index.Index {
	ix.Summed = !targets[bare(ix)]
	delete(targets, bare(ix))
	return ix
}

// ExpandIntegralsToMulliken rewrites the first rank-4 tensor labeled
// "V" on eq's RHS (an antisymmetric two-electron integral <pq||rs>)
// into its Mulliken-ordered decomposition (pr|qs) minus (ps|qr), by
// splitting eq into two equations whose RHS carries a tensor labeled
// "I" in place of "V": upper=[p,r] lower=[q,s] with eq's own factor,
// and upper=[p,s] lower=[q,r] with the factor negated. If RHS has no
// such tensor, it returns []Equation{eq} unchanged.
func ExpandIntegralsToMulliken(eq Equation) []Equation {
	idx := -1
	for i, ten := range eq.RHS.Tensors {
		if ten.Label == "V" && len(ten.Upper) == 2 && len(ten.Lower) == 2 {
			idx = i
			break
		}
	}
	if idx < 0 {
		return []Equation{eq}
	}

	v := eq.RHS.Tensors[idx]
	p, q := v.Upper[0], v.Upper[1]
	r, s := v.Lower[0], v.Lower[1]

	replaceWith := func(upper, lower []index.Index) term.SymbolicTerm {
		tensors := append([]tensor.Tensor(nil), eq.RHS.Tensors...)
		tensors[idx] = tensor.New("I", upper, lower, tensor.Antisymmetric)
		return term.New(tensors, eq.RHS.Operators)
	}

	direct := Equation{
		LHS:    eq.LHS,
		RHS:    replaceWith([]index.Index{p, r}, []index.Index{q, s}),
		Factor: eq.Factor,
	}
	exchange := Equation{
		LHS:    eq.LHS,
		RHS:    replaceWith([]index.Index{p, s}, []index.Index{q, r}),
		Factor: scalar.Neg(eq.Factor),
	}
	return []Equation{direct, exchange}
}

// String renders eq as "LHS += factor * RHS", for debugging.
func (eq Equation) String() string {
	var b strings.Builder
	b.WriteString(eq.LHS.String())
	b.WriteString(" += ")
	b.WriteString(eq.Factor.String())
	b.WriteString(" * ")
	b.WriteString(eq.RHS.String())
	return b.String()
}
