package game

import (
	"fmt"
	"strings"
)

// Adjacency decides which tile pairs count as neighbours.
type Adjacency int

const (
	// AdjacencyOffset accepts any pair whose index difference is 1, 3, 4 or 5.
	// It does not check for wrapping across a row edge, so 4 and 5 are neighbours.
	AdjacencyOffset Adjacency = iota
	// AdjacencyGrid accepts the eight king moves on the 4x4 grid only.
	AdjacencyGrid
)

// ParseAdjacency maps "offset" / "grid" (case-insensitive) to a rule.
func ParseAdjacency(s string) (Adjacency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "offset":
		return AdjacencyOffset, nil
	case "grid":
		return AdjacencyGrid, nil
	}
	return AdjacencyOffset, fmt.Errorf("unknown adjacency rule %q", s)
}

// UnmarshalText lets config loaders parse the rule directly.
func (a *Adjacency) UnmarshalText(text []byte) error {
	v, err := ParseAdjacency(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a Adjacency) String() string {
	if a == AdjacencyGrid {
		return "grid"
	}
	return "offset"
}

// Neighbors reports whether from and to are adjacent under the rule.
// Both indices must already be in range.
func (a Adjacency) Neighbors(from, to int) bool {
	if a == AdjacencyGrid {
		fr, fc := rowCol(from)
		tr, tc := rowCol(to)
		dr, dc := abs(fr-tr), abs(fc-tc)
		return from != to && dr <= 1 && dc <= 1
	}
	switch abs(to - from) {
	case 1, 3, 4, 5:
		return true
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
