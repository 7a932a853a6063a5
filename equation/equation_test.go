// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equation

import (
	"testing"

	"gonum.org/v1/wick/index"
	"gonum.org/v1/wick/orbitalspace"
	"gonum.org/v1/wick/scalar"
	"gonum.org/v1/wick/tensor"
	"gonum.org/v1/wick/term"
)

func registry(t *testing.T) *orbitalspace.Registry {
	t.Helper()
	var r orbitalspace.Registry
	r.AddSpace('o', orbitalspace.Occupied, []string{"i", "j"})
	r.AddSpace('v', orbitalspace.Unoccupied, []string{"a", "b"})
	r.AddSpace('p', orbitalspace.General, []string{"p", "q", "r", "s"})
	return &r
}

// E^a_i += t^a_i f^i_i; the RHS index i appears twice, and the copy
// not matched to the LHS target is marked summed.
func TestSetSummationIndicesMarksUnmatchedCopy(t *testing.T) {
	reg := registry(t)
	a, _ := index.New(reg, 'v', 0)
	i, _ := index.New(reg, 'o', 0)

	lhsTensor := tensor.New("E", []index.Index{a}, []index.Index{i}, tensor.Nonsymmetric)
	lhs := term.New([]tensor.Tensor{lhsTensor}, nil)

	tTensor := tensor.New("t", []index.Index{a}, []index.Index{i}, tensor.Nonsymmetric)
	fTensor := tensor.New("f", []index.Index{i}, []index.Index{i}, tensor.Nonsymmetric)
	rhs := term.New([]tensor.Tensor{tTensor, fTensor}, nil)

	eq := New(lhs, rhs, scalar.One())
	got := SetSummationIndices(eq)

	for _, ten := range got.RHS.Tensors {
		for _, ix := range ten.Upper {
			if ix.Space == a.Space && ix.Pos == a.Pos && ix.Summed {
				t.Errorf("target index a should not be marked summed")
			}
		}
	}

	fOut := got.RHS.Tensors[1]
	if !fOut.Upper[0].Summed || !fOut.Lower[0].Summed {
		t.Errorf("f's i indices should be marked summed, got %+v", fOut)
	}

	tOut := got.RHS.Tensors[0]
	if tOut.Lower[0].Summed {
		t.Errorf("t's i index matches the LHS target and should not be marked summed")
	}
}

func TestExpandIntegralsNoOpWithoutV(t *testing.T) {
	reg := registry(t)
	a, _ := index.New(reg, 'v', 0)
	i, _ := index.New(reg, 'o', 0)
	lhsTensor := tensor.New("E", []index.Index{a}, []index.Index{i}, tensor.Nonsymmetric)
	lhs := term.New([]tensor.Tensor{lhsTensor}, nil)
	tTensor := tensor.New("t", []index.Index{a}, []index.Index{i}, tensor.Nonsymmetric)
	rhs := term.New([]tensor.Tensor{tTensor}, nil)
	eq := New(lhs, rhs, scalar.One())

	got := ExpandIntegralsToMulliken(eq)
	if len(got) != 1 {
		t.Fatalf("got %d equations, want 1 (no-op)", len(got))
	}
	if !term.Equal(got[0].RHS, eq.RHS) {
		t.Errorf("RHS changed despite no V tensor present")
	}
}

// A RHS tensor V^{pq}_{rs} expands into I^{pr}_{qs} (+f) and
// I^{ps}_{qr} (-f).
func TestExpandIntegralsToMulliken(t *testing.T) {
	reg := registry(t)
	p, _ := index.New(reg, 'p', 0)
	q, _ := index.New(reg, 'p', 1)
	r, _ := index.New(reg, 'p', 2)
	s, _ := index.New(reg, 'p', 3)

	lhs := term.New([]tensor.Tensor{tensor.New("E", nil, nil, tensor.Nonsymmetric)}, nil)
	v := tensor.New("V", []index.Index{p, q}, []index.Index{r, s}, tensor.Antisymmetric)
	rhs := term.New([]tensor.Tensor{v}, nil)
	eq := New(lhs, rhs, scalar.NewRational(1, 2))

	got := ExpandIntegralsToMulliken(eq)
	if len(got) != 2 {
		t.Fatalf("got %d equations, want 2", len(got))
	}

	direct, exchange := got[0], got[1]
	if direct.RHS.Tensors[0].Label != "I" {
		t.Fatalf("got label %q, want I", direct.RHS.Tensors[0].Label)
	}
	if !scalar.Equal(direct.Factor, scalar.NewRational(1, 2)) {
		t.Errorf("direct factor = %v, want 1/2", direct.Factor)
	}
	if !scalar.Equal(exchange.Factor, scalar.NewRational(-1, 2)) {
		t.Errorf("exchange factor = %v, want -1/2", exchange.Factor)
	}

	dUpper, dLower := direct.RHS.Tensors[0].Upper, direct.RHS.Tensors[0].Lower
	if !(dUpper[0].Equal(p) && dUpper[1].Equal(r) && dLower[0].Equal(q) && dLower[1].Equal(s)) {
		t.Errorf("direct term = I^{%v}_{%v}, want I^{p,r}_{q,s}", dUpper, dLower)
	}
	eUpper, eLower := exchange.RHS.Tensors[0].Upper, exchange.RHS.Tensors[0].Lower
	if !(eUpper[0].Equal(p) && eUpper[1].Equal(s) && eLower[0].Equal(q) && eLower[1].Equal(r)) {
		t.Errorf("exchange term = I^{%v}_{%v}, want I^{p,s}_{q,r}", eUpper, eLower)
	}
}
