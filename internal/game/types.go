// internal/game/types.go
//
// Core type definitions for the word-grid game engine.
// Defines:
//   - Board:      the 16 letters of one game, laid out on a 4x4 grid.
//   - Dictionary: the set of words a game accepts.
//   - Move:       an accepted path together with the word it spells.
//   - Game:       board + dictionary + move history for a single session.

package game

import "sync"

const (
	// BoardSize is the number of tiles on a board.
	BoardSize = 16
	// BoardCols is the width of the implicit grid.
	BoardCols = 4
	// MinPathLen is the shortest path a move may trace.
	MinPathLen = 3
)

// State is the coarse lifecycle state of a game.
type State string

const (
	StateCreated State = "created" // board set, waiting for a dictionary
	StateReady   State = "ready"   // dictionary attached, accepting moves
)

// Move is an accepted submission.
type Move struct {
	Tiles  []int  `json:"tiles"`  // 1-based tile indices in path order
	Word   string `json:"word"`   // uppercase word spelled by Tiles
	Points int    `json:"points"` // 2^(len(Tiles)-3)
}

// MoveResult is returned to the caller after a move is accepted.
type MoveResult struct {
	MoveID int `json:"moveId"`
	Points int `json:"points"`
}

// Game holds the state of a single session.
// The board never changes after New; the dictionary and moves are guarded by mu.
type Game struct {
	board     Board
	adjacency Adjacency

	mu    sync.Mutex
	dict  *Dictionary
	moves []Move
	used  map[string]struct{} // words already scored
}

// Snapshot is a point-in-time copy of a game, safe to hand to callers.
type Snapshot struct {
	Board          []string `json:"board"`
	State          State    `json:"state"`
	Adjacency      string   `json:"adjacency"`
	DictionarySize int      `json:"dictionarySize"`
	Moves          []Move   `json:"moves"`
	Score          int      `json:"score"`
}
