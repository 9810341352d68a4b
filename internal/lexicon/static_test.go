package lexicon

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_Antonyms(t *testing.T) {
	s := Static{"sad": {"happy", "glad"}}

	got, err := s.Antonyms(context.Background(), "SAD")
	require.NoError(t, err)
	assert.Equal(t, []string{"happy", "glad"}, got)

	got, err = s.Antonyms(context.Background(), "hello")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadStatic(t *testing.T) {
	s, err := LoadStatic(strings.NewReader(`{"Sad": ["happy"], "bad": ["good", "fine"]}`))
	require.NoError(t, err)
	assert.Equal(t, Static{"sad": {"happy"}, "bad": {"good", "fine"}}, s)

	_, err = LoadStatic(strings.NewReader(`[1, 2]`))
	assert.Error(t, err)
}
