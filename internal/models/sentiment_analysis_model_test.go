package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewrittenSentence(t *testing.T) {
	s := RewrittenSentence{Tokens: []RewrittenToken{
		{Original: "I", Text: "I"},
		{Original: "feel", Text: "feel"},
		{Original: "sad!", Text: "glad", Replaced: true},
	}}

	assert.Equal(t, []string{"I", "feel", "glad"}, s.Words())
	assert.Equal(t, "I feel glad", s.String())
	assert.Equal(t, 1, s.ReplacedCount())

	var empty RewrittenSentence
	assert.Equal(t, "", empty.String())
	assert.Zero(t, empty.ReplacedCount())
}
