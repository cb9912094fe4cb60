package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Offset is a cell position relative to a pattern's anchor.
type Offset struct {
	DX int
	DY int
}

// Zero is the anchor offset every pattern must contain.
var Zero = Offset{}

// Pattern is a set of offsets describing a shape to match.
// Order carries no meaning; duplicates are ignored by NewPattern.
type Pattern []Offset

// SymmetryCount is the number of variants produced by Symmetries.
const SymmetryCount = 8

// NewPattern builds a pattern from offsets, dropping duplicates.
// Returns an error if the anchor offset (0,0) is missing.
func NewPattern(offsets ...Offset) (Pattern, error) {
	seen := make(map[Offset]bool, len(offsets))
	p := make(Pattern, 0, len(offsets))
	for _, o := range offsets {
		if seen[o] {
			continue
		}
		seen[o] = true
		p = append(p, o)
	}
	if !seen[Zero] {
		return nil, fmt.Errorf("engine: pattern %v lacks the anchor offset (0,0)", offsets)
	}
	return p, nil
}

// MustPattern is like NewPattern but panics on error.
// Intended for presets and tests.
func MustPattern(offsets ...Offset) Pattern {
	p, err := NewPattern(offsets...)
	if err != nil {
		panic(err)
	}
	return p
}

// Contains reports whether the pattern holds the given offset.
func (p Pattern) Contains(o Offset) bool {
	for _, x := range p {
		if x == o {
			return true
		}
	}
	return false
}

// Rotate turns the pattern 90 degrees: (dx, dy) -> (dy, -dx).
func (p Pattern) Rotate() Pattern {
	out := make(Pattern, len(p))
	for i, o := range p {
		out[i] = Offset{DX: o.DY, DY: -o.DX}
	}
	return out
}

// Mirror flips the pattern vertically: (dx, dy) -> (dx, -dy).
func (p Pattern) Mirror() Pattern {
	out := make(Pattern, len(p))
	for i, o := range p {
		out[i] = Offset{DX: o.DX, DY: -o.DY}
	}
	return out
}

// Canonical returns an order-independent key for the pattern.
func (p Pattern) Canonical() string {
	sorted := make(Pattern, len(p))
	copy(sorted, p)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].DX != sorted[j].DX {
			return sorted[i].DX < sorted[j].DX
		}
		return sorted[i].DY < sorted[j].DY
	})
	var b strings.Builder
	for i, o := range sorted {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d,%d", o.DX, o.DY)
	}
	return b.String()
}

// Symmetries derives the eight rotated and mirrored variants of base, in the
// order the scanner tries them: base, three successive rotations, the mirror
// of the third rotation, then three rotations of that mirror.
// Variants are not deduplicated.
func Symmetries(base Pattern) [SymmetryCount]Pattern {
	var out [SymmetryCount]Pattern
	p := base
	out[0] = p
	for i := 1; i < 4; i++ {
		p = p.Rotate()
		out[i] = p
	}
	p = p.Mirror()
	out[4] = p
	for i := 5; i < SymmetryCount; i++ {
		p = p.Rotate()
		out[i] = p
	}
	return out
}
