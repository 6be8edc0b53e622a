// internal/game/engine.go
//
// Move validation and scoring for a single game.
// Responsibilities:
//   - Create games from a validated board.
//   - Attach (or replace) the dictionary.
//   - Validate submitted paths: shape, adjacency, repeats, dictionary membership.
//   - Reject words already scored in this game; score and append the rest.
//
// Checks run in a fixed order and the first failure wins:
//   dictionary missing → malformed → disallowed → duplicate.
package game

import "fmt"

// New constructs a game in the Created state.
func New(b Board, adj Adjacency) *Game {
	return &Game{
		board:     b,
		adjacency: adj,
		moves:     []Move{},
		used:      make(map[string]struct{}),
	}
}

// AttachDictionary sets the dictionary, replacing any previous one.
func (g *Game) AttachDictionary(d Dictionary) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.dict = &d
}

// AttachDictionaryInput parses a JSON dictionary payload and attaches it.
// On a parse failure the current dictionary is left untouched.
func (g *Game) AttachDictionaryInput(data []byte) (Dictionary, error) {
	d, err := ParseDictionaryInput(data)
	if err != nil {
		return Dictionary{}, err
	}
	g.AttachDictionary(d)
	return d, nil
}

// stateLocked reports whether the game is still waiting for a dictionary.
func (g *Game) stateLocked() State {
	if g.dict == nil {
		return StateCreated
	}
	return StateReady
}

// SubmitMove validates tiles and, if accepted, appends the move.
func (g *Game) SubmitMove(tiles []int) (MoveResult, Move, error) {
	return g.submit(tiles, nil)
}

// SubmitMoveInput parses a JSON tile array and submits it. A parse failure
// is reported as ErrMalformedMove, but only after the dictionary check.
func (g *Game) SubmitMoveInput(data []byte) (MoveResult, Move, error) {
	tiles, err := ParseMoveInput(data)
	return g.submit(tiles, err)
}

func (g *Game) submit(tiles []int, parseErr error) (MoveResult, Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.dict == nil {
		return MoveResult{}, Move{}, ErrDictionaryMissing
	}
	if parseErr != nil {
		return MoveResult{}, Move{}, parseErr
	}
	if err := checkShape(tiles); err != nil {
		return MoveResult{}, Move{}, err
	}
	word, err := g.deriveWord(tiles)
	if err != nil {
		return MoveResult{}, Move{}, err
	}
	if _, ok := g.used[word]; ok {
		return MoveResult{}, Move{}, fmt.Errorf("%w: %q already scored", ErrDuplicateMove, word)
	}

	m := Move{
		Tiles:  append([]int(nil), tiles...),
		Word:   word,
		Points: Score(len(tiles)),
	}
	g.moves = append(g.moves, m)
	g.used[word] = struct{}{}
	return MoveResult{MoveID: len(g.moves) - 1, Points: m.Points}, m, nil
}

// checkShape enforces the structural rules: length and index range.
func checkShape(tiles []int) error {
	if len(tiles) < MinPathLen {
		return fmt.Errorf("%w: need at least %d tiles, got %d", ErrMalformedMove, MinPathLen, len(tiles))
	}
	for _, t := range tiles {
		if !InRange(t) {
			return fmt.Errorf("%w: tile %d out of range", ErrMalformedMove, t)
		}
	}
	return nil
}

// deriveWord walks the path, checking adjacency and repeats, and returns the
// uppercase word if the dictionary accepts it.
func (g *Game) deriveWord(tiles []int) (string, error) {
	var seen [BoardSize + 1]bool
	word := make([]byte, 0, len(tiles))
	for i, t := range tiles {
		if seen[t] {
			return "", fmt.Errorf("%w: tile %d repeated", ErrDisallowedMove, t)
		}
		seen[t] = true
		if i > 0 && !g.adjacency.Neighbors(tiles[i-1], t) {
			return "", fmt.Errorf("%w: tiles %d and %d are not adjacent", ErrDisallowedMove, tiles[i-1], t)
		}
		word = append(word, g.board.Letter(t)...)
	}
	w := string(word)
	if !g.dict.Contains(w) {
		return "", fmt.Errorf("%w: %q not in dictionary", ErrDisallowedMove, w)
	}
	return w, nil
}

// Score returns the points for a path of n tiles: 1, 2, 4, 8, ...
func Score(n int) int {
	if n < MinPathLen {
		return 0
	}
	return 1 << (n - MinPathLen)
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Snapshot{
		Board:     g.board.Letters(),
		State:     g.stateLocked(),
		Adjacency: g.adjacency.String(),
		Moves:     make([]Move, len(g.moves)),
	}
	if g.dict != nil {
		s.DictionarySize = g.dict.Len()
	}
	for i, m := range g.moves {
		m.Tiles = append([]int(nil), m.Tiles...)
		s.Moves[i] = m
		s.Score += m.Points
	}
	return s
}
