package positivizer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spacesedan/positivizer/internal/models"
)

// KeyCutset is stripped from both ends of a token to build its lookup key.
const KeyCutset = ".,!?"

// AntonymSource returns antonym candidates for a lowercased word, in the
// source's own order. A word with no lexical entry yields no candidates and
// no error.
type AntonymSource interface {
	Antonyms(ctx context.Context, word string) ([]string, error)
}

type Positivizer struct {
	source AntonymSource
}

func New(source AntonymSource) *Positivizer {
	return &Positivizer{source: source}
}

// LookupKey lowercases token and trims the punctuation in KeyCutset.
func LookupKey(token string) string {
	return strings.Trim(strings.ToLower(token), KeyCutset)
}

// Positivize replaces every whitespace-delimited token that has an antonym
// with the first candidate the source returns. Tokens without candidates are
// kept as they were, case and punctuation included.
func (p *Positivizer) Positivize(ctx context.Context, text string) models.RewrittenSentence {
	fields := strings.Fields(text)
	out := models.RewrittenSentence{Tokens: make([]models.RewrittenToken, 0, len(fields))}

	for _, token := range fields {
		rewritten := models.RewrittenToken{Original: token, Text: token}

		if candidate, ok := p.firstAntonym(ctx, LookupKey(token)); ok {
			rewritten.Text = candidate
			rewritten.Replaced = true
		}

		out.Tokens = append(out.Tokens, rewritten)
	}

	return out
}

func (p *Positivizer) firstAntonym(ctx context.Context, key string) (string, bool) {
	if key == "" {
		return "", false
	}

	candidates, err := p.source.Antonyms(ctx, key)
	if err != nil {
		slog.Warn("[Positivizer] Antonym lookup failed, keeping token",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return "", false
	}

	if len(candidates) == 0 {
		return "", false
	}

	return candidates[0], true
}
