package game

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Board is the immutable 4x4 letter grid. Tiles are numbered 1..16 row-major.
type Board [BoardSize]string

// NewBoard validates letters and returns an uppercased board.
// Exactly 16 entries are required and each must be a single character.
func NewBoard(letters []string) (Board, error) {
	var b Board
	if len(letters) != BoardSize {
		return b, fmt.Errorf("%w: want %d letters, got %d", ErrInvalidBoard, BoardSize, len(letters))
	}
	for i, l := range letters {
		if utf8.RuneCountInString(l) != 1 {
			return b, fmt.Errorf("%w: tile %d must be a single character, got %q", ErrInvalidBoard, i+1, l)
		}
		b[i] = strings.ToUpper(l)
	}
	return b, nil
}

// Letter returns the letter at a 1-based tile index.
// Callers must check the index with InRange first.
func (b Board) Letter(tile int) string { return b[tile-1] }

// Letters returns the board as a fresh slice.
func (b Board) Letters() []string {
	out := make([]string, BoardSize)
	copy(out, b[:])
	return out
}

// InRange reports whether tile is a valid 1-based index.
func InRange(tile int) bool { return tile >= 1 && tile <= BoardSize }

// rowCol maps a 1-based tile to its 1-based row and column.
func rowCol(tile int) (int, int) {
	return (tile-1)/BoardCols + 1, (tile-1)%BoardCols + 1
}
