package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Source is an antonym source that may hold open files.
type Source interface {
	Antonyms(ctx context.Context, word string) ([]string, error)
	Close() error
}

func (Static) Close() error { return nil }

// OpenSource loads the JSON table at lexiconFile when one is given and
// otherwise opens the WordNet dictionary in wordnetDir.
func OpenSource(wordnetDir, lexiconFile string) (Source, error) {
	if lexiconFile != "" {
		f, err := os.Open(lexiconFile)
		if err != nil {
			return nil, fmt.Errorf("[Lexicon] failed to open antonym table: %w", err)
		}
		defer f.Close()

		s, err := LoadStatic(f)
		if err != nil {
			return nil, err
		}
		slog.Info("[Lexicon] Loaded antonym table",
			slog.String("file", lexiconFile),
			slog.Int("words", len(s)))
		return s, nil
	}

	wn, err := Open(wordnetDir)
	if err != nil {
		return nil, err
	}
	return wn, nil
}
