package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spacesedan/positivizer/internal/analyzer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLexicon(t *testing.T) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "antonyms.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"sad": ["glad"], "terrible": ["wonderful"]}`), 0o644))
	return file
}

func TestRun_Negative(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-lexicon", writeLexicon(t), "I", "am", "sad"}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "NEGATIVE (")
	assert.Contains(t, out.String(), "Suggested positive version: I am glad")
}

func TestRun_RewriteOnly(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-lexicon", writeLexicon(t), "-rewrite", "a terrible day"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "a wonderful day\n", out.String())
}

func TestRun_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-lexicon", writeLexicon(t), "  "}, &out)
	assert.True(t, errors.Is(err, analyzer.ErrEmptyInput))
}
