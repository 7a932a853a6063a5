// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diag implements the diagrammatic operator layer:
// DiagOperator describes an operator by its creation/annihilation
// leg counts per orbital space rather than by explicit indices;
// OperatorProduct and OpExpression compose DiagOperators into
// products and sums, and this package derives the commutator and
// Baker-Campbell-Hausdorff series over them. The Wick-theorem engine
// is what turns an OperatorProduct into explicit indexed operators.
package diag // import "gonum.org/v1/wick/diag"

import (
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/wick/orbitalspace"
	"gonum.org/v1/wick/scalar"
)

// DiagOperator describes one operator by its per-space creation and
// annihilation leg counts. Cre[s] and Ann[s] are indexed by
// orbital-space registration order.
type DiagOperator struct {
	Label string
	Cre   []int
	Ann   []int
}

// New resolves each entry of creLabels and annLabels against reg and
// builds the per-space leg-count vectors for a DiagOperator named
// label. It returns a domain error if any label is unknown to reg.
func New(reg *orbitalspace.Registry, label string, creLabels, annLabels []rune) (DiagOperator, error) {
	n := reg.NumSpaces()
	d := DiagOperator{Label: label, Cre: make([]int, n), Ann: make([]int, n)}
	for _, l := range creLabels {
		s, err := reg.IndexOf(l)
		if err != nil {
			return DiagOperator{}, err
		}
		d.Cre[s]++
	}
	for _, l := range annLabels {
		s, err := reg.IndexOf(l)
		if err != nil {
			return DiagOperator{}, err
		}
		d.Ann[s]++
	}
	return d, nil
}

// Rank returns the total number of legs (creation plus annihilation).
func (d DiagOperator) Rank() int {
	r := 0
	for _, c := range d.Cre {
		r += c
	}
	for _, a := range d.Ann {
		r += a
	}
	return r
}

func (d DiagOperator) key() string {
	var b strings.Builder
	b.WriteString(d.Label)
	b.WriteByte('|')
	writeInts(&b, d.Cre)
	b.WriteByte('|')
	writeInts(&b, d.Ann)
	return b.String()
}

func writeInts(b *strings.Builder, v []int) {
	for i, x := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(x))
	}
}

// OperatorProduct is a left-to-right sequence of DiagOperator.
type OperatorProduct []DiagOperator

func (p OperatorProduct) key() string {
	var b strings.Builder
	for i, d := range p {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(d.key())
	}
	return b.String()
}

// concat returns a new OperatorProduct equal to p followed by q.
func (p OperatorProduct) concat(q OperatorProduct) OperatorProduct {
	out := make(OperatorProduct, 0, len(p)+len(q))
	out = append(out, p...)
	out = append(out, q...)
	return out
}

// OpExpression is a formal sum of OperatorProducts weighted by
// rational coefficients, used to represent sums and differences of
// operator products (e.g. the two sides of a commutator) before Wick
// contraction expands them into tensor terms.
type OpExpression struct {
	coeff    map[string]scalar.Rational
	products map[string]OperatorProduct
}

// NewExpression returns an empty OpExpression.
func NewExpression() *OpExpression {
	return &OpExpression{
		coeff:    make(map[string]scalar.Rational),
		products: make(map[string]OperatorProduct),
	}
}

// FromProduct returns an OpExpression containing coeff*p as its only
// term.
func FromProduct(p OperatorProduct, coeff scalar.Rational) *OpExpression {
	e := NewExpression()
	e.Add(p, coeff)
	return e
}

// Add adds coeff into the coefficient of p, removing the entry if the
// result is zero.
func (e *OpExpression) Add(p OperatorProduct, coeff scalar.Rational) {
	key := p.key()
	if existing, ok := e.coeff[key]; ok {
		sum := scalar.Add(existing, coeff)
		if sum.IsZero() {
			delete(e.coeff, key)
			delete(e.products, key)
			return
		}
		e.coeff[key] = sum
		return
	}
	if coeff.IsZero() {
		return
	}
	e.coeff[key] = coeff
	e.products[key] = append(OperatorProduct(nil), p...)
}

// AddExpression adds every term of other into e.
func (e *OpExpression) AddExpression(other *OpExpression) {
	for _, k := range other.Keys() {
		e.Add(other.products[k], other.coeff[k])
	}
}

// Keys returns e's product keys in sorted (deterministic) order.
func (e *OpExpression) Keys() []string {
	keys := make([]string, 0, len(e.coeff))
	for k := range e.coeff {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of distinct operator products in e.
func (e *OpExpression) Len() int {
	return len(e.coeff)
}

// Product returns the OperatorProduct stored under key.
func (e *OpExpression) Product(key string) OperatorProduct {
	return e.products[key]
}

// Coeff returns the coefficient stored under key.
func (e *OpExpression) Coeff(key string) scalar.Rational {
	return e.coeff[key]
}

// Clone returns a deep copy of e.
func (e *OpExpression) Clone() *OpExpression {
	c := NewExpression()
	c.AddExpression(e)
	return c
}

// Scale multiplies every coefficient in e by c in place.
func (e *OpExpression) Scale(c scalar.Rational) {
	if c.IsZero() {
		e.coeff = make(map[string]scalar.Rational)
		e.products = make(map[string]OperatorProduct)
		return
	}
	for k, v := range e.coeff {
		e.coeff[k] = scalar.Mul(v, c)
	}
}

// Neg returns -e.
func Neg(e *OpExpression) *OpExpression {
	out := e.Clone()
	out.Scale(scalar.NewRational(-1, 1))
	return out
}

// Add returns a+b.
func Add(a, b *OpExpression) *OpExpression {
	out := a.Clone()
	out.AddExpression(b)
	return out
}

// Sub returns a-b.
func Sub(a, b *OpExpression) *OpExpression {
	return Add(a, Neg(b))
}

// Mul returns the formal product a*b: every product of a concatenated
// with every product of b, coefficients multiplied, like terms
// summed.
func Mul(a, b *OpExpression) *OpExpression {
	out := NewExpression()
	for _, ka := range a.Keys() {
		for _, kb := range b.Keys() {
			out.Add(a.products[ka].concat(b.products[kb]), scalar.Mul(a.coeff[ka], b.coeff[kb]))
		}
	}
	return out
}

// Equal reports whether a and b have identical product-to-coefficient
// mappings.
func Equal(a, b *OpExpression) bool {
	if a.Len() != b.Len() {
		return false
	}
	for k, v := range a.coeff {
		ov, ok := b.coeff[k]
		if !ok || !scalar.Equal(v, ov) {
			return false
		}
	}
	return true
}

// Commutator returns [a,b] = a*b - b*a.
func Commutator(a, b *OpExpression) *OpExpression {
	return Sub(Mul(a, b), Mul(b, a))
}

// BCHSeries returns the Baker-Campbell-Hausdorff expansion of
// exp(-B) A exp(B), truncated at commutator depth n:
//
//	A + [A,B] + (1/2!)[[A,B],B] + ... + (1/n!)[...[A,B],...,B] (n times)
func BCHSeries(a, b *OpExpression, n int) *OpExpression {
	result := a.Clone()
	term := a.Clone()
	fact := int64(1)
	for k := 1; k <= n; k++ {
		term = Commutator(term, b)
		fact *= int64(k)
		scaled := term.Clone()
		scaled.Scale(scalar.NewRational(1, fact))
		result.AddExpression(scaled)
	}
	return result
}
