// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import (
	"testing"

	"gonum.org/v1/wick/index"
	"gonum.org/v1/wick/orbitalspace"
	"gonum.org/v1/wick/tensor"
)

func registry(t *testing.T) *orbitalspace.Registry {
	t.Helper()
	var r orbitalspace.Registry
	r.AddSpace('o', orbitalspace.Occupied, []string{"i", "j"})
	r.AddSpace('v', orbitalspace.Unoccupied, []string{"a", "b"})
	return &r
}

func TestReindexTerm(t *testing.T) {
	reg := registry(t)
	a, _ := index.New(reg, 'v', 0)
	a2, _ := index.New(reg, 'v', 2)
	i, _ := index.New(reg, 'o', 0)

	f := tensor.New("f", []index.Index{a}, []index.Index{i}, tensor.Nonsymmetric)
	op := SQOperator{Kind: Creation, Index: a}
	st := New([]tensor.Tensor{f}, []SQOperator{op})

	out := st.Reindex(index.Map{a: a2})
	if !out.Tensors[0].Upper[0].Equal(a2) {
		t.Errorf("tensor index not substituted")
	}
	if !out.Operators[0].Index.Equal(a2) {
		t.Errorf("operator index not substituted")
	}
	// original term unaffected
	if !st.Tensors[0].Upper[0].Equal(a) {
		t.Errorf("Reindex mutated the receiver")
	}
}

func TestIndicesDeduped(t *testing.T) {
	reg := registry(t)
	a, _ := index.New(reg, 'v', 0)
	i, _ := index.New(reg, 'o', 0)
	f := tensor.New("f", []index.Index{a}, []index.Index{i}, tensor.Nonsymmetric)
	op := SQOperator{Kind: Creation, Index: a}
	st := New([]tensor.Tensor{f}, []SQOperator{op})
	idxs := st.Indices()
	if len(idxs) != 2 {
		t.Fatalf("got %d, want 2: %v", len(idxs), idxs)
	}
}

func TestEqualComparesIndices(t *testing.T) {
	reg := registry(t)
	a, _ := index.New(reg, 'v', 0)
	b, _ := index.New(reg, 'v', 1)
	f1 := tensor.New("f", []index.Index{a}, nil, tensor.Nonsymmetric)
	f2 := tensor.New("f", []index.Index{b}, nil, tensor.Nonsymmetric)
	t1 := New([]tensor.Tensor{f1}, nil)
	t2 := New([]tensor.Tensor{f2}, nil)
	if Equal(t1, t2) {
		t.Errorf("terms with different indices should not be equal")
	}
	t3 := New([]tensor.Tensor{f1}, nil)
	if !Equal(t1, t3) {
		t.Errorf("identical terms should be equal")
	}
}
