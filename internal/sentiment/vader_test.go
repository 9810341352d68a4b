package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertMarkdownToText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "I am sad today", "I am sad today"},
		{"emphasis", "I am **really** sad", "I am really sad"},
		{"link keeps text", "see [the docs](https://example.com/x) now", "see the docs now"},
		{"bare url dropped", "visit https://example.com today", "visit today"},
		{"contraction survives", "I don't like it", "I don't like it"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertMarkdownToText(tt.input))
		})
	}
}

func TestRemoveLinks(t *testing.T) {
	assert.Equal(t, "read this", RemoveLinks("read [this](http://a.b/c)"))
	assert.Equal(t, "go to", RemoveLinks("go to www.example.com"))
}

func TestVADERScorer_Polarity(t *testing.T) {
	scorer := NewVADERScorer()

	assert.Greater(t, scorer.Polarity("I love this, it is wonderful and great!"), 0.1)
	assert.Less(t, scorer.Polarity("This is terrible, I hate it."), -0.1)
	assert.Zero(t, scorer.Polarity(""))

	for _, text := range []string{"The table is brown.", "AWFUL!!!", "best day ever :)"} {
		p := scorer.Polarity(text)
		assert.GreaterOrEqual(t, p, -1.0, text)
		assert.LessOrEqual(t, p, 1.0, text)
	}
}

func TestScorerFunc(t *testing.T) {
	var s Scorer = ScorerFunc(func(string) float64 { return -0.4 })
	assert.Equal(t, -0.4, s.Polarity("x"))
}
