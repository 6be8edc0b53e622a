package game

import "errors"

// Error kinds reported by the engine. Callers match them with errors.Is;
// returned errors may wrap them with extra detail.
var (
	ErrInvalidBoard      = errors.New("invalid board")
	ErrInvalidDictionary = errors.New("invalid dictionary")
	ErrDictionaryMissing = errors.New("dictionary missing")
	ErrMalformedMove     = errors.New("malformed move")
	ErrDisallowedMove    = errors.New("disallowed move")
	ErrDuplicateMove     = errors.New("duplicate move")
)
