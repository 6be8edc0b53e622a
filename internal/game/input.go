package game

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// boardInput is the POST /games payload.
type boardInput struct {
	Board []any `json:"board"`
}

// dictionaryInput is the PUT /games/{id}/dict payload. A pointer separates a
// missing or null list from an empty one.
type dictionaryInput struct {
	Words *[]any `json:"words"`
}

// ParseBoardInput decodes {"board": [...]} into a Board.
// Every shape problem is reported as ErrInvalidBoard.
func ParseBoardInput(data []byte) (Board, error) {
	var in boardInput
	if err := json.Unmarshal(data, &in); err != nil {
		return Board{}, fmt.Errorf("%w: %v", ErrInvalidBoard, err)
	}
	letters := make([]string, len(in.Board))
	for i, v := range in.Board {
		s, ok := v.(string)
		if !ok {
			return Board{}, fmt.Errorf("%w: tile %d is not a string", ErrInvalidBoard, i+1)
		}
		letters[i] = s
	}
	return NewBoard(letters)
}

// ParseDictionaryInput decodes {"words": [...]} into a Dictionary.
func ParseDictionaryInput(data []byte) (Dictionary, error) {
	var in dictionaryInput
	if err := json.Unmarshal(data, &in); err != nil {
		return Dictionary{}, fmt.Errorf("%w: %v", ErrInvalidDictionary, err)
	}
	if in.Words == nil {
		return Dictionary{}, fmt.Errorf("%w: missing words", ErrInvalidDictionary)
	}
	words := make([]string, len(*in.Words))
	for i, v := range *in.Words {
		s, ok := v.(string)
		if !ok {
			return Dictionary{}, fmt.Errorf("%w: entry %d is not a string", ErrInvalidDictionary, i)
		}
		words[i] = s
	}
	return NewDictionary(words), nil
}

// ParseMoveInput decodes a JSON array of tile indices. Numbers must be
// integral (1 and 1.0 are both fine) and within 1..16. Path length is left to
// the game.
func ParseMoveInput(data []byte) ([]int, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMove, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected an array of tile indices", ErrMalformedMove)
	}
	tiles := make([]int, len(raw))
	for i, v := range raw {
		n, ok := v.(json.Number)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is not a number", ErrMalformedMove, i)
		}
		f, err := n.Float64()
		if err != nil || f != math.Trunc(f) {
			return nil, fmt.Errorf("%w: element %d is not an integer", ErrMalformedMove, i)
		}
		if f < 1 || f > BoardSize {
			return nil, fmt.Errorf("%w: tile %v out of range", ErrMalformedMove, n)
		}
		tiles[i] = int(f)
	}
	return tiles, nil
}
