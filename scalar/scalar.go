// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalar implements the exact rational and complex-rational
// coefficients that Expression terms are weighted by. Values are
// arbitrary precision to satisfy the engine's requirement that
// coefficient arithmetic never loses accuracy across long chains of
// contraction and canonicalization.
package scalar // import "gonum.org/v1/wick/scalar"

import (
	"fmt"
	"math/big"
)

// Rational is an exact p/q coefficient. The zero value is 0/1 and is
// ready to use.
type Rational struct {
	r big.Rat
}

// NewRational returns the rational p/q. It panics if q is zero.
func NewRational(p, q int64) Rational {
	var s Rational
	s.r.SetFrac64(p, q)
	return s
}

// One returns the rational 1/1.
func One() Rational {
	return NewRational(1, 1)
}

// IsZero reports whether s is exactly zero.
func (s Rational) IsZero() bool {
	return s.r.Sign() == 0
}

// Add returns x+y.
func Add(x, y Rational) Rational {
	var z Rational
	z.r.Add(&x.r, &y.r)
	return z
}

// Sub returns x-y.
func Sub(x, y Rational) Rational {
	var z Rational
	z.r.Sub(&x.r, &y.r)
	return z
}

// Mul returns x*y.
func Mul(x, y Rational) Rational {
	var z Rational
	z.r.Mul(&x.r, &y.r)
	return z
}

// Neg returns -x.
func Neg(x Rational) Rational {
	var z Rational
	z.r.Neg(&x.r)
	return z
}

// Sign applies the fermionic sign p (which must be +1 or -1) to x.
func Sign(p int, x Rational) Rational {
	if p == 1 {
		return x
	}
	if p == -1 {
		return Neg(x)
	}
	panic("scalar: sign must be +1 or -1")
}

// Equal reports whether x and y denote the same rational number.
func Equal(x, y Rational) bool {
	return x.r.Cmp(&y.r) == 0
}

// String implements fmt.Stringer, formatting as p/q, or just p when
// q == 1.
func (s Rational) String() string {
	if s.r.IsInt() {
		return s.r.Num().String()
	}
	return s.r.RatString()
}

// Complex is a complex number with exact rational real and imaginary
// parts, used by layers above the core that need complex-valued
// coefficients (e.g. complex orbital rotations).
type Complex struct {
	Re, Im Rational
}

// NewComplex returns re + im*i.
func NewComplex(re, im Rational) Complex {
	return Complex{Re: re, Im: im}
}

// AddComplex returns x+y.
func AddComplex(x, y Complex) Complex {
	return Complex{Re: Add(x.Re, y.Re), Im: Add(x.Im, y.Im)}
}

// MulComplex returns the product of x and y.
func MulComplex(x, y Complex) Complex {
	return Complex{
		Re: Sub(Mul(x.Re, y.Re), Mul(x.Im, y.Im)),
		Im: Add(Mul(x.Re, y.Im), Mul(x.Im, y.Re)),
	}
}

// NegComplex returns -x.
func NegComplex(x Complex) Complex {
	return Complex{Re: Neg(x.Re), Im: Neg(x.Im)}
}

// IsZero reports whether x is exactly zero.
func (x Complex) IsZero() bool {
	return x.Re.IsZero() && x.Im.IsZero()
}

// EqualComplex reports whether x and y denote the same value.
func EqualComplex(x, y Complex) bool {
	return Equal(x.Re, y.Re) && Equal(x.Im, y.Im)
}

// String implements fmt.Stringer.
func (x Complex) String() string {
	if x.Im.IsZero() {
		return x.Re.String()
	}
	return fmt.Sprintf("(%s+%si)", x.Re, x.Im)
}
