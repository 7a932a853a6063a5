// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package term implements SQOperator, the fermionic creation or
// annihilation operator carrying a single Index, and SymbolicTerm, an
// ordered product of Tensors and SQOperators.
package term // import "gonum.org/v1/wick/term"

import (
	"strings"

	"gonum.org/v1/wick/index"
	"gonum.org/v1/wick/tensor"
)

// Kind distinguishes a creation operator from an annihilation
// operator.
type Kind int

const (
	// Creation is a†.
	Creation Kind = iota
	// Annihilation is a.
	Annihilation
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == Creation {
		return "creation"
	}
	return "annihilation"
}

// SQOperator is a single second-quantized creation or annihilation
// operator.
type SQOperator struct {
	Kind  Kind
	Index index.Index
}

// Reindex returns a copy of op with its index substituted through m.
func (op SQOperator) Reindex(m index.Map) SQOperator {
	return SQOperator{Kind: op.Kind, Index: index.Reindex(m, op.Index)}
}

// String renders op as "a†" or "a" followed by its index tag.
func (op SQOperator) String() string {
	sym := "a"
	if op.Kind == Creation {
		sym = "a†"
	}
	return sym + "(" + tensor.IndexTag(op.Index) + ")"
}

// SymbolicTerm is an ordered product of Tensors and an ordered string
// of SQOperators.
type SymbolicTerm struct {
	Tensors   []tensor.Tensor
	Operators []SQOperator
}

// New returns a SymbolicTerm over copies of tensors and operators.
func New(tensors []tensor.Tensor, operators []SQOperator) SymbolicTerm {
	return SymbolicTerm{
		Tensors:   append([]tensor.Tensor(nil), tensors...),
		Operators: append([]SQOperator(nil), operators...),
	}
}

// Clone returns a deep-enough copy of t safe to mutate (as the
// canonicalizer does) without aliasing t's slices.
func (t SymbolicTerm) Clone() SymbolicTerm {
	tensors := make([]tensor.Tensor, len(t.Tensors))
	for i, ten := range t.Tensors {
		tensors[i] = ten.Reindex(nil)
	}
	return SymbolicTerm{
		Tensors:   tensors,
		Operators: append([]SQOperator(nil), t.Operators...),
	}
}

// Reindex returns a copy of t with every index substituted through m.
func (t SymbolicTerm) Reindex(m index.Map) SymbolicTerm {
	tensors := make([]tensor.Tensor, len(t.Tensors))
	for i, ten := range t.Tensors {
		tensors[i] = ten.Reindex(m)
	}
	ops := make([]SQOperator, len(t.Operators))
	for i, op := range t.Operators {
		ops[i] = op.Reindex(m)
	}
	return SymbolicTerm{Tensors: tensors, Operators: ops}
}

// Indices returns the deduplicated union of every tensor index and
// every operator index in t, in tensor-order then operator-order.
func (t SymbolicTerm) Indices() []index.Index {
	var all []index.Index
	for _, ten := range t.Tensors {
		all = append(all, ten.Lower...)
		all = append(all, ten.Upper...)
	}
	for _, op := range t.Operators {
		all = append(all, op.Index)
	}
	return index.Dedup(all)
}

// Equal reports whether t and other are identical value-for-value,
// tensor order and operator order included; the Summed flags of
// indices are not compared. It does not canonicalize either side.
func Equal(t, other SymbolicTerm) bool {
	if len(t.Tensors) != len(other.Tensors) || len(t.Operators) != len(other.Operators) {
		return false
	}
	for i := range t.Tensors {
		if !tensor.Equal(t.Tensors[i], other.Tensors[i]) {
			return false
		}
	}
	for i := range t.Operators {
		a, b := t.Operators[i], other.Operators[i]
		if a.Kind != b.Kind || !a.Index.Equal(b.Index) {
			return false
		}
	}
	return true
}

// String renders t as a space-separated product of its tensors
// followed by its operator string, for debugging.
func (t SymbolicTerm) String() string {
	var b strings.Builder
	for i, ten := range t.Tensors {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(ten.String())
	}
	if len(t.Tensors) > 0 && len(t.Operators) > 0 {
		b.WriteByte(' ')
	}
	for i, op := range t.Operators {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(op.String())
	}
	return b.String()
}

// Key renders t into a string suitable as a deterministic map key: a
// canonicalized SymbolicTerm's Key is the unique textual
// representative of its equivalence class.
func (t SymbolicTerm) Key() string {
	return t.String()
}
