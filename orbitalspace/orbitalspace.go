// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orbitalspace implements the orbital-space registry that the
// rest of the operator-algebra engine is built on: a small, ordered
// table describing the elementary fermionic orbital spaces (occupied,
// unoccupied, general, ...) that indices and tensors are drawn from.
package orbitalspace // import "gonum.org/v1/wick/orbitalspace"

import (
	"errors"
	"fmt"
)

// RDM declares which single-leg contractions in a space produce a
// Kronecker delta rather than requiring an explicit density cumulant.
type RDM int

const (
	// Occupied spaces contract an annihilation-then-creation pair into
	// a Kronecker delta (a hole propagator).
	Occupied RDM = iota
	// Unoccupied spaces contract a creation-then-annihilation pair into
	// a Kronecker delta (a particle propagator).
	Unoccupied
	// General spaces never collapse to a delta; any contraction in a
	// General space requires an explicit density-cumulant tensor.
	General
)

// String implements fmt.Stringer.
func (r RDM) String() string {
	switch r {
	case Occupied:
		return "occupied"
	case Unoccupied:
		return "unoccupied"
	case General:
		return "general"
	default:
		return fmt.Sprintf("orbitalspace.RDM(%d)", int(r))
	}
}

// Space is one entry of the registry: a single-character label, its
// RDM structure, and the pool of reserved index names conventionally
// used for dummies in that space.
type Space struct {
	Label rune
	RDM   RDM
	Names []string
}

// Registry is a process-wide, initialize-once table of orbital
// spaces. The zero value is an empty registry, ready to use.
//
// Registry follows a strict lifecycle: Reset followed by zero or more
// AddSpace calls forms an initialization phase; every other method is
// read-only. A Registry must not be mutated concurrently with reads,
// and once any Index, Tensor, or SQOperator has been built against it
// callers should treat it as closed for writing (see Close).
type Registry struct {
	spaces []Space
	byName map[string]int // reserved index name -> space index
	closed bool
}

var (
	// ErrDuplicateLabel is returned by AddSpace when the label is
	// already registered.
	ErrDuplicateLabel = errors.New("orbitalspace: duplicate space label")
	// ErrDuplicateName is returned by AddSpace when a reserved index
	// name collides with one already registered in any space.
	ErrDuplicateName = errors.New("orbitalspace: duplicate reserved index name")
	// ErrClosed is returned by AddSpace once the registry has been
	// closed for writing.
	ErrClosed = errors.New("orbitalspace: registry mutated after first use")
	// ErrUnknownLabel is returned by lookups for a label that was
	// never registered.
	ErrUnknownLabel = errors.New("orbitalspace: unknown space label")
	// ErrEmpty is returned by operations that require at least one
	// registered space.
	ErrEmpty = errors.New("orbitalspace: no spaces registered")
)

// Reset clears the registry, discarding every registered space and
// reopening it for writing. Reset is the only way to mutate a
// Registry once Close has been called.
func (r *Registry) Reset() {
	r.spaces = nil
	r.byName = nil
	r.closed = false
}

// AddSpace registers a new orbital space. It returns ErrDuplicateLabel
// or ErrDuplicateName if label or any of names collides with an
// already-registered space, and ErrClosed once Close has been called
// (index.New calls it when it builds an Index).
func (r *Registry) AddSpace(label rune, rdm RDM, names []string) error {
	if r.closed {
		return ErrClosed
	}
	for _, s := range r.spaces {
		if s.Label == label {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
		}
	}
	if r.byName == nil {
		r.byName = make(map[string]int)
	}
	for _, n := range names {
		if _, ok := r.byName[n]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateName, n)
		}
	}
	idx := len(r.spaces)
	cp := append([]string(nil), names...)
	r.spaces = append(r.spaces, Space{Label: label, RDM: rdm, Names: cp})
	for _, n := range cp {
		r.byName[n] = idx
	}
	return nil
}

// Close marks the registry as read-only. index.New calls Close each
// time it builds an Index; tensor.New and SQOperator values take no
// Registry and do not close it. Close is exported so that packages
// built outside this module can honor the same single-writer
// discipline.
func (r *Registry) Close() {
	r.closed = true
}

// NumSpaces returns the number of registered spaces.
func (r *Registry) NumSpaces() int {
	return len(r.spaces)
}

// Space returns the i'th registered space, in registration order.
func (r *Registry) Space(i int) Space {
	return r.spaces[i]
}

// IndexOf returns the registration-order index of the space with the
// given label, or ErrUnknownLabel if no such space exists.
func (r *Registry) IndexOf(label rune) (int, error) {
	for i, s := range r.spaces {
		if s.Label == label {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
}

// RDMOf returns the RDM structure of the i'th registered space.
func (r *Registry) RDMOf(i int) RDM {
	return r.spaces[i].RDM
}

// LabelOf returns the character label of the i'th registered space.
func (r *Registry) LabelOf(i int) rune {
	return r.spaces[i].Label
}

// Validate returns ErrEmpty if no space has been registered yet.
// wick's Contract calls Validate before doing anything else; the
// Index, Tensor, and SQOperator constructors do not call it.
func (r *Registry) Validate() error {
	if len(r.spaces) == 0 {
		return ErrEmpty
	}
	return nil
}
