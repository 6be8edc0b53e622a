package game

import (
	"errors"
	"strings"
	"testing"
)

func sixteen(s string) []string { return strings.Split(s, "") }

func TestNewBoard(t *testing.T) {
	b, err := NewBoard(sixteen("abcdEFGHijklMNOp"))
	if err != nil {
		t.Fatalf("new board: %v", err)
	}
	if got := strings.Join(b.Letters(), ""); got != "ABCDEFGHIJKLMNOP" {
		t.Fatalf("expected uppercased board, got %q", got)
	}
	if b.Letter(1) != "A" || b.Letter(16) != "P" {
		t.Fatalf("unexpected corner letters %q %q", b.Letter(1), b.Letter(16))
	}
}

func TestNewBoardInvalid(t *testing.T) {
	tests := map[string][]string{
		"empty":       nil,
		"too few":     sixteen("abcdefghijklmno"),
		"too many":    sixteen("abcdefghijklmnopq"),
		"multi char":  append(sixteen("abcdefghijklmno"), "qu"),
		"empty entry": append(sixteen("abcdefghijklmno"), ""),
	}
	for name, letters := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := NewBoard(letters); !errors.Is(err, ErrInvalidBoard) {
				t.Fatalf("expected invalid board, got %v", err)
			}
		})
	}
}

func TestNewBoardSingleRune(t *testing.T) {
	if _, err := NewBoard(append(sixteen("abcdefghijklmno"), "é")); err != nil {
		t.Fatalf("a single multi-byte character should be accepted: %v", err)
	}
}

func TestDictionary(t *testing.T) {
	d := NewDictionary([]string{"fab", "FAB", "Cat", ""})
	if d.Len() != 3 {
		t.Fatalf("expected 3 distinct words, got %d", d.Len())
	}
	for _, w := range []string{"FAB", "fab", "cAt", ""} {
		if !d.Contains(w) {
			t.Fatalf("expected %q in dictionary", w)
		}
	}
	if d.Contains("DOG") {
		t.Fatal("unexpected DOG in dictionary")
	}
	if NewDictionary(nil).Len() != 0 {
		t.Fatal("expected empty dictionary")
	}
}

func TestAdjacencyOffset(t *testing.T) {
	a := AdjacencyOffset
	for _, p := range [][2]int{{6, 1}, {1, 2}, {1, 5}, {1, 6}, {5, 2}, {12, 15}, {4, 5}, {8, 9}} {
		if !a.Neighbors(p[0], p[1]) || !a.Neighbors(p[1], p[0]) {
			t.Fatalf("expected %v to be neighbours", p)
		}
	}
	for _, p := range [][2]int{{1, 1}, {1, 3}, {1, 7}, {15, 1}, {1, 16}} {
		if a.Neighbors(p[0], p[1]) {
			t.Fatalf("expected %v not to be neighbours", p)
		}
	}
}

func TestAdjacencyGrid(t *testing.T) {
	a := AdjacencyGrid
	for _, p := range [][2]int{{6, 1}, {1, 2}, {1, 5}, {1, 6}, {12, 15}, {11, 16}} {
		if !a.Neighbors(p[0], p[1]) || !a.Neighbors(p[1], p[0]) {
			t.Fatalf("expected %v to be neighbours", p)
		}
	}
	// Row-wrapping offsets are rejected on the true grid.
	for _, p := range [][2]int{{4, 5}, {8, 9}, {4, 9}, {1, 1}, {1, 3}} {
		if a.Neighbors(p[0], p[1]) {
			t.Fatalf("expected %v not to be neighbours", p)
		}
	}
}

func TestParseAdjacency(t *testing.T) {
	for in, want := range map[string]Adjacency{"": AdjacencyOffset, "offset": AdjacencyOffset, "GRID": AdjacencyGrid} {
		got, err := ParseAdjacency(in)
		if err != nil || got != want {
			t.Fatalf("ParseAdjacency(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseAdjacency("hex"); err == nil {
		t.Fatal("expected error for unknown rule")
	}
	var a Adjacency
	if err := a.UnmarshalText([]byte("grid")); err != nil || a != AdjacencyGrid {
		t.Fatalf("UnmarshalText: %v %v", a, err)
	}
}
