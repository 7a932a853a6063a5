// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package index implements the Index value type, a (space, position)
// pair identifying a dummy or free index into an orbital space, and
// the substitution and counting operations the rest of the engine
// builds on.
package index // import "gonum.org/v1/wick/index"

import (
	"fmt"

	"gonum.org/v1/wick/orbitalspace"
)

// Index identifies a single index slot: which orbital space it is
// drawn from, its position within that space, and whether it is a
// summed (dummy) index. Equality and ordering are lexicographic on
// (Space, Pos); Summed does not participate in either.
type Index struct {
	Space  int
	Pos    int
	Summed bool
}

// New returns an Index in the space labeled label at position pos,
// resolved against reg. Pos must be non-negative.
func New(reg *orbitalspace.Registry, label rune, pos int) (Index, error) {
	if pos < 0 {
		return Index{}, fmt.Errorf("index: negative position %d", pos)
	}
	s, err := reg.IndexOf(label)
	if err != nil {
		return Index{}, err
	}
	reg.Close()
	return Index{Space: s, Pos: pos}, nil
}

// Less reports whether ix sorts before other under the lexicographic
// (Space, Pos) order. Summed is ignored.
func (ix Index) Less(other Index) bool {
	if ix.Space != other.Space {
		return ix.Space < other.Space
	}
	return ix.Pos < other.Pos
}

// Equal reports whether ix and other identify the same index. Summed
// is ignored.
func (ix Index) Equal(other Index) bool {
	return ix.Space == other.Space && ix.Pos == other.Pos
}

// Map is a substitution from one Index to another, applied by
// Reindex. A zero-value Map (nil) is the identity substitution.
type Map map[Index]Index

// Reindex returns the image of ix under m; ix passes through
// unchanged if it is not a key of m. As with Equal, Summed is ignored
// when matching ix against the keys of m; the result keeps ix's own
// Summed flag.
func Reindex(m Map, ix Index) Index {
	if m == nil {
		return ix
	}
	to, ok := m[ix]
	if !ok {
		flipped := ix
		flipped.Summed = !ix.Summed
		to, ok = m[flipped]
	}
	if ok {
		to.Summed = ix.Summed
		return to
	}
	return ix
}

// Dedup returns the deduplicated union of idxs, preserving the order
// of first appearance.
func Dedup(idxs []Index) []Index {
	seen := make(map[Index]bool, len(idxs))
	out := make([]Index, 0, len(idxs))
	for _, ix := range idxs {
		if seen[ix] {
			continue
		}
		seen[ix] = true
		out = append(out, ix)
	}
	return out
}

// CountPerSpace returns a vector of length numSpaces counting the
// occurrences of each space among idxs.
func CountPerSpace(idxs []Index, numSpaces int) []int {
	counts := make([]int, numSpaces)
	for _, ix := range idxs {
		counts[ix.Space]++
	}
	return counts
}
