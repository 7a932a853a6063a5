// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package printer

import (
	"errors"
	"strings"
	"testing"

	"gonum.org/v1/wick/equation"
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
	return &r
}

func TestHumanRendersTensorsAndOperators(t *testing.T) {
	reg := registry(t)
	a, _ := index.New(reg, 'v', 0)
	i, _ := index.New(reg, 'o', 0)
	f := tensor.New("f", []index.Index{a}, []index.Index{i}, tensor.Nonsymmetric)
	st := term.New([]tensor.Tensor{f}, []term.SQOperator{
		{Kind: term.Creation, Index: a},
		{Kind: term.Annihilation, Index: i},
	})

	got := Human(reg, st)
	want := "f^{a}_{i} a†(a) a(i)"
	if got != want {
		t.Errorf("Human() = %q, want %q", got, want)
	}
}

func TestLaTeXUsesDaggerMacro(t *testing.T) {
	reg := registry(t)
	a, _ := index.New(reg, 'v', 0)
	st := term.New(nil, []term.SQOperator{{Kind: term.Creation, Index: a}})
	got := LaTeX(reg, st)
	if !strings.Contains(got, `\dagger`) {
		t.Errorf("LaTeX() = %q, want it to contain \\dagger", got)
	}
}

func buildEquation(t *testing.T, reg *orbitalspace.Registry) equation.Equation {
	t.Helper()
	a, _ := index.New(reg, 'v', 0)
	i, _ := index.New(reg, 'o', 0)
	lhs := term.New([]tensor.Tensor{tensor.New("C", []index.Index{a}, []index.Index{i}, tensor.Nonsymmetric)}, nil)
	rhs := term.New([]tensor.Tensor{tensor.New("T", []index.Index{a}, []index.Index{i}, tensor.Nonsymmetric)}, nil)
	return equation.New(lhs, rhs, scalar.NewRational(1, 2))
}

func TestAmbitRendersAssignment(t *testing.T) {
	reg := registry(t)
	eq := buildEquation(t, reg)
	got, err := Ambit(reg, eq)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, `C["ia"]`) || !strings.Contains(got, `T["ia"]`) {
		t.Errorf("Ambit() = %q", got)
	}
}

func TestEinsumRendersSpec(t *testing.T) {
	reg := registry(t)
	eq := buildEquation(t, reg)
	got, err := Einsum(reg, eq)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `"ia->ia"`) {
		t.Errorf("Einsum() = %q, want an einsum spec containing \"ia->ia\"", got)
	}
}

func TestAmbitRejectsFreeOperators(t *testing.T) {
	reg := registry(t)
	a, _ := index.New(reg, 'v', 0)
	lhs := term.New([]tensor.Tensor{tensor.New("C", []index.Index{a}, nil, tensor.Nonsymmetric)}, nil)
	rhs := term.New(nil, []term.SQOperator{{Kind: term.Creation, Index: a}})
	eq := equation.New(lhs, rhs, scalar.One())

	if _, err := Ambit(reg, eq); !errors.Is(err, ErrFreeOperators) {
		t.Errorf("got %v, want ErrFreeOperators", err)
	}
}

func TestCompileRejectsUnknownFormat(t *testing.T) {
	reg := registry(t)
	eq := buildEquation(t, reg)
	if _, err := Compile(reg, "xml", eq); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("got %v, want ErrUnknownFormat", err)
	}
}
