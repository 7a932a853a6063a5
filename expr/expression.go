// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr implements Expression, the formal sum of canonical
// SymbolicTerms weighted by scalar coefficients that the Wick engine
// produces and the equation layer consumes.
//
// Expression is an ordered map: iteration order is always the
// canonical order of its SymbolicTerm keys, because downstream
// consumers (printers, code generators) depend on textually stable
// output across runs.
package expr // import "gonum.org/v1/wick/expr"

import (
	"sort"

	"gonum.org/v1/wick/canon"
	"gonum.org/v1/wick/orbitalspace"
	"gonum.org/v1/wick/scalar"
	"gonum.org/v1/wick/term"
)

// Expression maps canonicalized SymbolicTerms to their coefficients.
// The zero value is an empty Expression ready to use.
type Expression struct {
	coeff map[string]scalar.Rational
	terms map[string]term.SymbolicTerm
}

// New returns an empty Expression.
func New() *Expression {
	return &Expression{
		coeff: make(map[string]scalar.Rational),
		terms: make(map[string]term.SymbolicTerm),
	}
}

// Add canonicalizes a copy of t (absorbing the returned sign into
// coeff), then adds coeff into the existing coefficient for t's
// canonical form, removing the entry if the result is zero.
func (e *Expression) Add(reg *orbitalspace.Registry, t term.SymbolicTerm, coeff scalar.Rational) {
	t = t.Clone()
	sign := canon.Canonicalize(reg, &t)
	coeff = scalar.Sign(sign, coeff)
	key := t.Key()

	if existing, ok := e.coeff[key]; ok {
		sum := scalar.Add(existing, coeff)
		if sum.IsZero() {
			delete(e.coeff, key)
			delete(e.terms, key)
			return
		}
		e.coeff[key] = sum
		return
	}
	if coeff.IsZero() {
		return
	}
	if e.coeff == nil {
		e.coeff = make(map[string]scalar.Rational)
		e.terms = make(map[string]term.SymbolicTerm)
	}
	e.coeff[key] = coeff
	e.terms[key] = t
}

// AddCanonical adds an already-canonicalized term directly, without
// running Canonicalize again. It exists for callers (the Wick engine's
// optional graph-canonicalization pass) that canonicalize a term
// themselves and need the result merged under its own Key.
func (e *Expression) AddCanonical(t term.SymbolicTerm, coeff scalar.Rational) {
	key := t.Key()
	if existing, ok := e.coeff[key]; ok {
		sum := scalar.Add(existing, coeff)
		if sum.IsZero() {
			delete(e.coeff, key)
			delete(e.terms, key)
			return
		}
		e.coeff[key] = sum
		return
	}
	if coeff.IsZero() {
		return
	}
	if e.coeff == nil {
		e.coeff = make(map[string]scalar.Rational)
		e.terms = make(map[string]term.SymbolicTerm)
	}
	e.coeff[key] = coeff
	e.terms[key] = t
}

// Len returns the number of distinct canonical terms in e.
func (e *Expression) Len() int {
	return len(e.coeff)
}

// Keys returns e's canonical terms sorted by their Key string, the
// order Expression iteration is contractually defined to use.
func (e *Expression) Keys() []string {
	keys := make([]string, 0, len(e.coeff))
	for k := range e.coeff {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Term returns the SymbolicTerm stored under the canonical key.
func (e *Expression) Term(key string) term.SymbolicTerm {
	return e.terms[key]
}

// Coeff returns the coefficient stored under the canonical key.
func (e *Expression) Coeff(key string) scalar.Rational {
	return e.coeff[key]
}

// AddExpression adds every term of other into e (other is left
// unmodified). It is the caller's responsibility to pass the same
// Registry other's terms were canonicalized against.
func (e *Expression) AddExpression(reg *orbitalspace.Registry, other *Expression) {
	for _, k := range other.Keys() {
		e.Add(reg, other.Term(k), other.Coeff(k))
	}
}

// Scale multiplies every coefficient in e by c in place, dropping any
// entry that becomes zero (only possible if c is itself zero).
func (e *Expression) Scale(c scalar.Rational) {
	if c.IsZero() {
		e.coeff = make(map[string]scalar.Rational)
		e.terms = make(map[string]term.SymbolicTerm)
		return
	}
	for k, v := range e.coeff {
		e.coeff[k] = scalar.Mul(v, c)
	}
}

// Equal reports whether e and other have identical canonical-term to
// coefficient mappings.
func Equal(e, other *Expression) bool {
	if e.Len() != other.Len() {
		return false
	}
	for k, v := range e.coeff {
		ov, ok := other.coeff[k]
		if !ok || !scalar.Equal(v, ov) {
			return false
		}
	}
	return true
}
