package lexicon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Static is an in-memory antonym table keyed by lowercase word.
type Static map[string][]string

func (s Static) Antonyms(_ context.Context, word string) ([]string, error) {
	return s[strings.ToLower(word)], nil
}

// LoadStatic reads a JSON object of word to antonym list.
func LoadStatic(r io.Reader) (Static, error) {
	var raw map[string][]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("[Lexicon] failed to decode antonym table: %w", err)
	}

	s := make(Static, len(raw))
	for word, antonyms := range raw {
		s[strings.ToLower(word)] = antonyms
	}
	return s, nil
}
