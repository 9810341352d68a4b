package lexicon

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSource_PrefersLexiconFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "antonyms.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"sad": ["cheerful"]}`), 0o644))

	src, err := OpenSource(writeFixtureDict(t), file)
	require.NoError(t, err)
	defer src.Close()

	got, err := src.Antonyms(context.Background(), "sad")
	require.NoError(t, err)
	assert.Equal(t, []string{"cheerful"}, got)
}

func TestOpenSource_WordNet(t *testing.T) {
	src, err := OpenSource(writeFixtureDict(t), "")
	require.NoError(t, err)
	defer src.Close()

	got, err := src.Antonyms(context.Background(), "sad")
	require.NoError(t, err)
	assert.Equal(t, []string{"glad"}, got)
}

func TestOpenSource_Errors(t *testing.T) {
	_, err := OpenSource(filepath.Join(t.TempDir(), "missing"), "")
	assert.Error(t, err)

	_, err = OpenSource("", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
