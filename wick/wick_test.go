// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wick

import (
	"testing"

	"gonum.org/v1/wick/diag"
	"gonum.org/v1/wick/orbitalspace"
	"gonum.org/v1/wick/scalar"
)

func registry(t *testing.T) *orbitalspace.Registry {
	t.Helper()
	var r orbitalspace.Registry
	r.AddSpace('o', orbitalspace.Occupied, []string{"i", "j", "k"})
	r.AddSpace('v', orbitalspace.Unoccupied, []string{"a", "b", "c"})
	r.AddSpace('p', orbitalspace.General, []string{"p", "q", "r"})
	return &r
}

func TestContractRejectsBadRankWindow(t *testing.T) {
	reg := registry(t)
	d, err := diag.New(reg, "x", []rune{'v'}, []rune{'o'})
	if err != nil {
		t.Fatal(err)
	}
	w := New()

	if _, err := w.Contract(reg, scalar.One(), diag.OperatorProduct{d}, -1, 2); err == nil {
		t.Error("expected error for negative rank bound")
	}
	if _, err := w.Contract(reg, scalar.One(), diag.OperatorProduct{d}, 3, 1); err == nil {
		t.Error("expected error for min rank exceeding max rank")
	}
}

func TestSetMaxCumulantPanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative max cumulant")
		}
	}()
	New().SetMaxCumulant(-1)
}

// Contracting O over its own exact rank with no contraction admissible
// yields a single term with an empty tensor part and an operator part
// equal to O's own legs.
func TestNoContractionAtExactRank(t *testing.T) {
	reg := registry(t)
	d, err := diag.New(reg, "O", []rune{'v'}, []rune{'o'})
	if err != nil {
		t.Fatal(err)
	}
	w := New() // max cumulant 0: plain normal ordering, nothing to contract anyway
	got, err := w.Contract(reg, scalar.One(), diag.OperatorProduct{d}, d.Rank(), d.Rank())
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 1 {
		t.Fatalf("got %d terms, want 1", got.Len())
	}
	key := got.Keys()[0]
	st := got.Term(key)
	if len(st.Tensors) != 0 {
		t.Errorf("got %d tensors, want 0", len(st.Tensors))
	}
	if len(st.Operators) != 2 {
		t.Errorf("got %d operators, want 2", len(st.Operators))
	}
}

func TestOccupiedPairContractsToKroneckerDelta(t *testing.T) {
	reg := registry(t)
	ann, err := diag.New(reg, "a1", nil, []rune{'o'})
	if err != nil {
		t.Fatal(err)
	}
	cre, err := diag.New(reg, "a2", []rune{'o'}, nil)
	if err != nil {
		t.Fatal(err)
	}
	w := New()
	w.SetMaxCumulant(1)
	got, err := w.Contract(reg, scalar.One(), diag.OperatorProduct{ann, cre}, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 1 {
		t.Fatalf("got %d terms, want 1", got.Len())
	}
	st := got.Term(got.Keys()[0])
	if len(st.Tensors) != 1 || st.Tensors[0].Label != "kronecker_delta" {
		t.Fatalf("got tensors %v, want a single kronecker_delta", st.Tensors)
	}
	if len(st.Operators) != 0 {
		t.Errorf("got %d free operators, want 0", len(st.Operators))
	}
	c := got.Coeff(got.Keys()[0])
	if !scalar.Equal(c, scalar.One()) && !scalar.Equal(c, scalar.NewRational(-1, 1)) {
		t.Errorf("coefficient %v is not unit magnitude", c)
	}
}

func TestUnoccupiedWrongOrderNeverContracts(t *testing.T) {
	reg := registry(t)
	ann1, err := diag.New(reg, "a1", nil, []rune{'v'})
	if err != nil {
		t.Fatal(err)
	}
	ann2, err := diag.New(reg, "a2", nil, []rune{'v'})
	if err != nil {
		t.Fatal(err)
	}
	w := New()
	w.SetMaxCumulant(1)
	got, err := w.Contract(reg, scalar.One(), diag.OperatorProduct{ann1, ann2}, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 0 {
		t.Errorf("got %d terms, want 0: two annihilators in an Unoccupied space never pair", got.Len())
	}
}

func TestGeneralSpacePairProducesCumulant(t *testing.T) {
	reg := registry(t)
	cre, err := diag.New(reg, "x1", []rune{'p'}, nil)
	if err != nil {
		t.Fatal(err)
	}
	ann, err := diag.New(reg, "x2", nil, []rune{'p'})
	if err != nil {
		t.Fatal(err)
	}
	w := New()
	w.SetMaxCumulant(1)
	got, err := w.Contract(reg, scalar.One(), diag.OperatorProduct{cre, ann}, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 1 {
		t.Fatalf("got %d terms, want 1", got.Len())
	}
	st := got.Term(got.Keys()[0])
	if len(st.Tensors) != 1 || st.Tensors[0].Label != "lambda1" {
		t.Fatalf("got tensors %v, want a single lambda1 cumulant", st.Tensors)
	}
}

func TestIntraOperatorContractionForbidden(t *testing.T) {
	reg := registry(t)
	both, err := diag.New(reg, "n", []rune{'o'}, []rune{'o'})
	if err != nil {
		t.Fatal(err)
	}
	w := New()
	w.SetMaxCumulant(1)
	got, err := w.Contract(reg, scalar.One(), diag.OperatorProduct{both}, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 0 {
		t.Errorf("got %d terms, want 0: a single operator cannot contract against itself", got.Len())
	}
}

func TestContractExpressionSumsEachProduct(t *testing.T) {
	reg := registry(t)
	ann, err := diag.New(reg, "a1", nil, []rune{'o'})
	if err != nil {
		t.Fatal(err)
	}
	cre, err := diag.New(reg, "a2", []rune{'o'}, nil)
	if err != nil {
		t.Fatal(err)
	}
	ops := diag.FromProduct(diag.OperatorProduct{ann, cre}, scalar.NewRational(2, 1))

	w := New()
	w.SetMaxCumulant(1)
	got, err := w.ContractExpression(reg, ops, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 1 {
		t.Fatalf("got %d terms, want 1", got.Len())
	}
	c := got.Coeff(got.Keys()[0])
	if !scalar.Equal(c, scalar.NewRational(2, 1)) && !scalar.Equal(c, scalar.NewRational(-2, 1)) {
		t.Errorf("coefficient %v does not reflect the product's weight of 2", c)
	}
}

func TestPrintLevelString(t *testing.T) {
	cases := map[PrintLevel]string{
		PrintNone:     "none",
		PrintBasic:    "basic",
		PrintSummary:  "summary",
		PrintDetailed: "detailed",
		PrintAll:      "all",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("PrintLevel(%d).String() = %q, want %q", level, got, want)
		}
	}
}
