package positivizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spacesedan/positivizer/internal/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSource struct {
	fail map[string]bool
	lexicon.Static
}

func (f failingSource) Antonyms(ctx context.Context, word string) ([]string, error) {
	if f.fail[word] {
		return nil, errors.New("lookup failed")
	}
	return f.Static.Antonyms(ctx, word)
}

type recordingSource struct {
	keys []string
}

func (r *recordingSource) Antonyms(_ context.Context, word string) ([]string, error) {
	r.keys = append(r.keys, word)
	return nil, nil
}

func TestPositivize(t *testing.T) {
	p := New(lexicon.Static{
		"sad":  {"happy"},
		"bad":  {"good", "fine"},
		"hate": {"love"},
	})

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"substitutes antonym", "I am sad today", "I am happy today"},
		{"no antonym leaves token untouched", "hello!!!", "hello!!!"},
		{"punctuation stripped from key", "so sad!", "so happy"},
		{"case folded for key", "SAD Bad", "happy good"},
		{"first candidate wins", "bad", "good"},
		{"whitespace collapses", "  I   hate \t mondays \n", "I love mondays"},
		{"leading punctuation stripped from key", "?sad,", "happy"},
		{"inner punctuation kept in key", "sad-ish", "sad-ish"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Positivize(context.Background(), tt.input)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestPositivize_Empty(t *testing.T) {
	p := New(lexicon.Static{"sad": {"happy"}})

	for _, input := range []string{"", "   ", "\n\t"} {
		got := p.Positivize(context.Background(), input)
		assert.Empty(t, got.Tokens)
		assert.Equal(t, "", got.String())
	}
}

func TestPositivize_TokenCountPreserved(t *testing.T) {
	p := New(lexicon.Static{"sad": {"happy"}, "not": {"yes"}, "never": {"always"}})

	inputs := []string{
		"I am sad today",
		"never   ever not sad",
		"!!! ??? ... ,,,",
		"one",
		"sad sad sad sad sad",
		"tabs\tand\nnewlines  too",
	}

	for _, input := range inputs {
		got := p.Positivize(context.Background(), input)
		assert.Len(t, got.Tokens, len(strings.Fields(input)), input)
		assert.Len(t, strings.Fields(got.String()), len(strings.Fields(input)), input)
	}
}

func TestPositivize_UnchangedTokensAreExact(t *testing.T) {
	p := New(lexicon.Static{"sad": {"happy"}})

	got := p.Positivize(context.Background(), "Hello, World! I'm SAD.")
	require.Len(t, got.Tokens, 4)

	assert.Equal(t, "Hello,", got.Tokens[0].Text)
	assert.False(t, got.Tokens[0].Replaced)
	assert.Equal(t, "World!", got.Tokens[1].Text)
	assert.Equal(t, "I'm", got.Tokens[2].Text)

	assert.Equal(t, "SAD.", got.Tokens[3].Original)
	assert.Equal(t, "happy", got.Tokens[3].Text)
	assert.True(t, got.Tokens[3].Replaced)
	assert.Equal(t, 1, got.ReplacedCount())
}

func TestPositivize_NotIdempotent(t *testing.T) {
	p := New(lexicon.Static{
		"sad":   {"happy"},
		"happy": {"unhappy"},
	})

	once := p.Positivize(context.Background(), "I am sad").String()
	twice := p.Positivize(context.Background(), once).String()

	assert.Equal(t, "I am happy", once)
	assert.NotEqual(t, once, twice)
}

func TestPositivize_LookupErrorKeepsToken(t *testing.T) {
	p := New(failingSource{
		fail:   map[string]bool{"sad": true},
		Static: lexicon.Static{"sad": {"happy"}, "bad": {"good"}},
	})

	got := p.Positivize(context.Background(), "sad and bad")
	assert.Equal(t, "sad and good", got.String())
}

func TestPositivize_SkipsEmptyKeys(t *testing.T) {
	src := &recordingSource{}
	p := New(src)

	got := p.Positivize(context.Background(), "Wow !!! ok.")
	assert.Equal(t, "Wow !!! ok.", got.String())
	assert.Equal(t, []string{"wow", "ok"}, src.keys)
}

func TestLookupKey(t *testing.T) {
	tests := map[string]string{
		"Sad.":     "sad",
		"hello!!!": "hello",
		"?Why?":    "why",
		"it's":     "it's",
		",,,":      "",
		"end.,!?":  "end",
		"(paren)":  "(paren)",
	}

	for in, want := range tests {
		assert.Equal(t, want, LookupKey(in), in)
	}
}
