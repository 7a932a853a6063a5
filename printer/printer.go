// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package printer renders Tensors, SymbolicTerms and Equations as
// text: a human-readable form, a LaTeX form, and source strings for
// the ambit and einsum tensor-contraction libraries. None of these
// forms are part of a term's identity (two terms that canonicalize
// identically may legitimately render differently if one uses
// different dummy-index names), and no printer here parses anything
// back; that direction is explicitly out of scope.
package printer // import "gonum.org/v1/wick/printer"

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/wick/equation"
	"gonum.org/v1/wick/index"
	"gonum.org/v1/wick/orbitalspace"
	"gonum.org/v1/wick/tensor"
	"gonum.org/v1/wick/term"
)

var (
	// ErrFreeOperators is returned by a tensor-contraction source
	// printer (ambit, einsum) when the term still has free SQOperators:
	// there is no tensor-only source string for an un-contracted term.
	ErrFreeOperators = errors.New("printer: term has free operators, not a tensor-only contraction")
	// ErrMalformedLHS is returned when an Equation's LHS is not exactly
	// one tensor, which every source-code target format requires.
	ErrMalformedLHS = errors.New("printer: equation LHS must be exactly one tensor")
	// ErrUnknownFormat is returned by Compile for any format outside
	// the closed set {"ambit", "einsum"}.
	ErrUnknownFormat = errors.New("printer: unknown format")
)

// indexLabel renders ix using reg's reserved names for its space when
// available, falling back to a generated "<letter><n>" tag built from
// the space's own label so output stays readable even past the end of
// a short reserved-name pool.
func indexLabel(reg *orbitalspace.Registry, ix index.Index) string {
	if reg != nil {
		sp := reg.Space(ix.Space)
		if ix.Pos < len(sp.Names) {
			return sp.Names[ix.Pos]
		}
		return string(sp.Label) + strconv.Itoa(ix.Pos)
	}
	return tensor.IndexTag(ix)
}

func indexLabels(reg *orbitalspace.Registry, idxs []index.Index) []string {
	out := make([]string, len(idxs))
	for i, ix := range idxs {
		out[i] = indexLabel(reg, ix)
	}
	return out
}

// Human renders t in the conventional tensor-then-operator notation,
// e.g. "f^{a}_{i} a†(a) a(i)".
func Human(reg *orbitalspace.Registry, t term.SymbolicTerm) string {
	var b strings.Builder
	for i, ten := range t.Tensors {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(humanTensor(reg, ten))
	}
	for _, op := range t.Operators {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		sym := "a"
		if op.Kind == term.Creation {
			sym = "a†"
		}
		b.WriteString(sym + "(" + indexLabel(reg, op.Index) + ")")
	}
	return b.String()
}

func humanTensor(reg *orbitalspace.Registry, t tensor.Tensor) string {
	var b strings.Builder
	b.WriteString(t.Label)
	if len(t.Upper) > 0 {
		b.WriteString("^{" + strings.Join(indexLabels(reg, t.Upper), ",") + "}")
	}
	if len(t.Lower) > 0 {
		b.WriteString("_{" + strings.Join(indexLabels(reg, t.Lower), ",") + "}")
	}
	return b.String()
}

// LaTeX renders t as a LaTeX math fragment.
func LaTeX(reg *orbitalspace.Registry, t term.SymbolicTerm) string {
	var b strings.Builder
	for i, ten := range t.Tensors {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(latexTensor(reg, ten))
	}
	for _, op := range t.Operators {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		if op.Kind == term.Creation {
			fmt.Fprintf(&b, `a^{\dagger}_{%s}`, indexLabel(reg, op.Index))
		} else {
			fmt.Fprintf(&b, `a_{%s}`, indexLabel(reg, op.Index))
		}
	}
	return b.String()
}

func latexTensor(reg *orbitalspace.Registry, t tensor.Tensor) string {
	upper := strings.Join(indexLabels(reg, t.Upper), " ")
	lower := strings.Join(indexLabels(reg, t.Lower), " ")
	return fmt.Sprintf("%s^{%s}_{%s}", t.Label, upper, lower)
}

// tensorRef returns the label and the concatenated Lower-then-Upper
// index-letter string ambit and einsum both key their tensor
// subscripts on.
func tensorRef(reg *orbitalspace.Registry, t tensor.Tensor) (label, subscript string) {
	letters := append(indexLabels(reg, t.Lower), indexLabels(reg, t.Upper)...)
	return t.Label, strings.Join(letters, "")
}

func soleTensor(t term.SymbolicTerm) (tensor.Tensor, error) {
	if len(t.Tensors) != 1 {
		return tensor.Tensor{}, ErrMalformedLHS
	}
	return t.Tensors[0], nil
}

// Ambit renders eq as an ambit-library contraction statement, e.g.
// for C^{a}_{i} += 1/2 * F^{a}_{j} T^{j}_{i}:
// `C["ia"] += 1/2 * F["ja"] * T["ij"];`.
func Ambit(reg *orbitalspace.Registry, eq equation.Equation) (string, error) {
	if len(eq.RHS.Operators) != 0 {
		return "", fmt.Errorf("%w: ambit", ErrFreeOperators)
	}
	lhs, err := soleTensor(eq.LHS)
	if err != nil {
		return "", err
	}
	lhsLabel, lhsSub := tensorRef(reg, lhs)

	rhsParts := make([]string, len(eq.RHS.Tensors))
	for i, ten := range eq.RHS.Tensors {
		label, sub := tensorRef(reg, ten)
		rhsParts[i] = fmt.Sprintf("%s[%q]", label, sub)
	}
	return fmt.Sprintf("%s[%q] += %s * %s;", lhsLabel, lhsSub, eq.Factor.String(), strings.Join(rhsParts, " * ")), nil
}

// Einsum renders eq as a numpy-einsum-style contraction statement,
// e.g. for C^{a}_{i} += 1/2 * F^{a}_{j} T^{j}_{i}:
// `C["ia"] += 1/2 * np.einsum("ja,ij->ia", F, T)`.
func Einsum(reg *orbitalspace.Registry, eq equation.Equation) (string, error) {
	if len(eq.RHS.Operators) != 0 {
		return "", fmt.Errorf("%w: einsum", ErrFreeOperators)
	}
	lhs, err := soleTensor(eq.LHS)
	if err != nil {
		return "", err
	}
	lhsLabel, lhsSub := tensorRef(reg, lhs)

	subs := make([]string, len(eq.RHS.Tensors))
	operands := make([]string, len(eq.RHS.Tensors))
	for i, ten := range eq.RHS.Tensors {
		label, sub := tensorRef(reg, ten)
		subs[i] = sub
		operands[i] = label
	}
	spec := strings.Join(subs, ",") + "->" + lhsSub
	return fmt.Sprintf("%s[%q] += %s * np.einsum(%q, %s)", lhsLabel, lhsSub, eq.Factor.String(), spec, strings.Join(operands, ", ")), nil
}

// Compile dispatches to Ambit or Einsum by name. format must be one of
// the closed set "ambit" or "einsum"; any other value is an argument
// error.
func Compile(reg *orbitalspace.Registry, format string, eq equation.Equation) (string, error) {
	switch format {
	case "ambit":
		return Ambit(reg, eq)
	case "einsum":
		return Einsum(reg, eq)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
