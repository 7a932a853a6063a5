// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tensor implements the Tensor value type: a labeled
// multi-index symbolic object with ordered upper and lower index
// lists and a permutation-symmetry tag.
package tensor // import "gonum.org/v1/wick/tensor"

import (
	"strconv"
	"strings"

	"gonum.org/v1/wick/index"
	"gonum.org/v1/wick/internal/combin"
)

// Symmetry declares how a Tensor's upper and lower index slots behave
// under permutation.
type Symmetry int

const (
	// Nonsymmetric tensors carry no slot symmetry; their upper and
	// lower index order is part of their identity and must never be
	// reordered.
	Nonsymmetric Symmetry = iota
	// Symmetric tensors are invariant (no sign) under any permutation
	// of their upper slots among themselves, and likewise for lower.
	Symmetric
	// Antisymmetric tensors pick up the sign of the permutation under
	// any reordering of their upper slots among themselves, and
	// likewise for lower.
	Antisymmetric
)

// String implements fmt.Stringer.
func (s Symmetry) String() string {
	switch s {
	case Nonsymmetric:
		return "nonsymmetric"
	case Symmetric:
		return "symmetric"
	case Antisymmetric:
		return "antisymmetric"
	default:
		return "tensor.Symmetry(invalid)"
	}
}

// Tensor is a labeled multi-index symbolic object.
type Tensor struct {
	Label    string
	Upper    []index.Index
	Lower    []index.Index
	Symmetry Symmetry
}

// New returns a Tensor with the given label, index slots and
// symmetry. The slices are copied.
func New(label string, upper, lower []index.Index, sym Symmetry) Tensor {
	return Tensor{
		Label:    label,
		Upper:    append([]index.Index(nil), upper...),
		Lower:    append([]index.Index(nil), lower...),
		Symmetry: sym,
	}
}

// Rank returns |Upper|+|Lower|.
func (t Tensor) Rank() int {
	return len(t.Upper) + len(t.Lower)
}

// SymmetryFactor returns |Upper|!*|Lower|! for Antisymmetric and
// Symmetric tensors, and 1 for Nonsymmetric ones.
func (t Tensor) SymmetryFactor() int64 {
	if t.Symmetry == Nonsymmetric {
		return 1
	}
	return factorial(len(t.Upper)) * factorial(len(t.Lower))
}

func factorial(n int) int64 {
	f := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		f *= i
	}
	return f
}

// Indices returns the deduplicated union of Upper and Lower, in the
// order Lower-then-Upper (the order the canonicalizer assigns dummy
// names in).
func (t Tensor) Indices() []index.Index {
	all := make([]index.Index, 0, len(t.Upper)+len(t.Lower))
	all = append(all, t.Lower...)
	all = append(all, t.Upper...)
	return index.Dedup(all)
}

// Reindex returns a copy of t with every index substituted through m.
func (t Tensor) Reindex(m index.Map) Tensor {
	out := t
	out.Upper = reindexAll(m, t.Upper)
	out.Lower = reindexAll(m, t.Lower)
	return out
}

func reindexAll(m index.Map, idxs []index.Index) []index.Index {
	out := make([]index.Index, len(idxs))
	for i, ix := range idxs {
		out[i] = index.Reindex(m, ix)
	}
	return out
}

// SortSlot returns a copy of idxs sorted by (Space, Pos) and the
// parity of the sorting permutation. Callers
// decide, based on Symmetry, whether to apply it and whether the
// parity contributes a sign.
func SortSlot(idxs []index.Index) (sorted []index.Index, parity int) {
	perm, parity := combin.SortPermutation(len(idxs), func(i, j int) bool {
		return idxs[i].Less(idxs[j])
	})
	return combin.Apply(perm, idxs), parity
}

// Less imposes the total order (Label, Lower, Upper) used to break
// ties between otherwise identical score tuples during
// canonicalization.
func (t Tensor) Less(other Tensor) bool {
	if t.Label != other.Label {
		return t.Label < other.Label
	}
	if c := compareIndexSlice(t.Lower, other.Lower); c != 0 {
		return c < 0
	}
	return compareIndexSlice(t.Upper, other.Upper) < 0
}

func compareIndexSlice(a, b []index.Index) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].Less(b[i]) {
			return -1
		}
		if b[i].Less(a[i]) {
			return 1
		}
	}
	return len(a) - len(b)
}

// Equal reports whether t and other are identical value-for-value,
// except that the Summed flags of their indices are not compared.
func Equal(t, other Tensor) bool {
	if t.Label != other.Label || t.Symmetry != other.Symmetry {
		return false
	}
	if len(t.Upper) != len(other.Upper) || len(t.Lower) != len(other.Lower) {
		return false
	}
	for i := range t.Upper {
		if !t.Upper[i].Equal(other.Upper[i]) {
			return false
		}
	}
	for i := range t.Lower {
		if !t.Lower[i].Equal(other.Lower[i]) {
			return false
		}
	}
	return true
}

// String renders t as label^{upper}_{lower} using IndexTag's
// space-and-position tags for the indices; it is intended for
// debugging, not for round-tripping.
func (t Tensor) String() string {
	var b strings.Builder
	b.WriteString(t.Label)
	if len(t.Upper) > 0 {
		b.WriteString("^{")
		writeIndices(&b, t.Upper)
		b.WriteByte('}')
	}
	if len(t.Lower) > 0 {
		b.WriteString("_{")
		writeIndices(&b, t.Lower)
		b.WriteByte('}')
	}
	return b.String()
}

func writeIndices(b *strings.Builder, idxs []index.Index) {
	for i, ix := range idxs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(IndexTag(ix))
	}
}

// IndexTag produces a compact, space-qualified debug tag for an
// index, e.g. "s0:3".
func IndexTag(ix index.Index) string {
	sign := ""
	if ix.Summed {
		sign = "*"
	}
	return "s" + strconv.Itoa(ix.Space) + ":" + strconv.Itoa(ix.Pos) + sign
}
