package game

import "strings"

// Dictionary is a case-insensitive membership set of words.
type Dictionary struct {
	words map[string]struct{}
}

// NewDictionary uppercases words into a set; duplicates collapse.
func NewDictionary(words []string) Dictionary {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToUpper(w)] = struct{}{}
	}
	return Dictionary{words: set}
}

// Contains reports whether word (any case) is in the dictionary.
func (d Dictionary) Contains(word string) bool {
	_, ok := d.words[strings.ToUpper(word)]
	return ok
}

// Len is the number of distinct words.
func (d Dictionary) Len() int { return len(d.words) }
