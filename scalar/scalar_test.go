// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import "testing"

func TestRationalArithmetic(t *testing.T) {
	half := NewRational(1, 2)
	sum := Add(half, half)
	if !Equal(sum, One()) {
		t.Errorf("got %v, want 1", sum)
	}
	if !Sub(sum, One()).IsZero() {
		t.Errorf("expected 1-1 == 0")
	}
	prod := Mul(NewRational(2, 3), NewRational(3, 2))
	if !Equal(prod, One()) {
		t.Errorf("got %v, want 1", prod)
	}
}

func TestRationalString(t *testing.T) {
	if got, want := NewRational(3, 1).String(), "3"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := NewRational(1, 2).String(), "1/2"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := NewRational(-1, 2).String(), "-1/2"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSignPanicsOnBadInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Sign(2, One())
}

func TestComplexArithmetic(t *testing.T) {
	i := NewComplex(NewRational(0, 1), One())
	minusOne := MulComplex(i, i)
	want := NewComplex(NewRational(-1, 1), NewRational(0, 1))
	if !EqualComplex(minusOne, want) {
		t.Errorf("got %v, want %v", minusOne, want)
	}
}
