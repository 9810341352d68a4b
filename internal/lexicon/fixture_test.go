package lexicon

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const licenseHeader = "  1 This software and database is being provided to you, the LICENSEE, by  \n" +
	"  2 Princeton University under the following license.  \n"

type fixturePointer struct {
	symbol      string
	target      string
	source      int
	targetLemma int
}

type fixtureSynset struct {
	id       string
	pos      POS
	lemmas   []string
	pointers []fixturePointer
	gloss    string
}

// fixtureDict is a tiny dictionary in WordNet's on-disk format.
var fixtureDict = []fixtureSynset{
	{id: "n-good", pos: Noun, lemmas: []string{"good", "goodness"}, gloss: "moral excellence",
		pointers: []fixturePointer{
			{symbol: "@", target: "n-quality"},
			{symbol: "!", target: "n-evil", source: 1, targetLemma: 1},
			{symbol: "!", target: "n-evil", source: 2, targetLemma: 2},
		}},
	{id: "n-evil", pos: Noun, lemmas: []string{"evil", "evilness"}, gloss: "morally objectionable behavior",
		pointers: []fixturePointer{
			{symbol: "!", target: "n-good", source: 1, targetLemma: 1},
			{symbol: "!", target: "n-good", source: 2, targetLemma: 2},
		}},
	{id: "n-quality", pos: Noun, lemmas: []string{"quality"}, gloss: "an essential attribute"},
	{id: "n-today", pos: Noun, lemmas: []string{"today"}, gloss: "the present time"},
	{id: "v-love", pos: Verb, lemmas: []string{"love"}, gloss: "have a great affection",
		pointers: []fixturePointer{{symbol: "!", target: "v-hate", source: 1, targetLemma: 1}}},
	{id: "v-hate", pos: Verb, lemmas: []string{"hate", "detest"}, gloss: "dislike intensely",
		pointers: []fixturePointer{{symbol: "!", target: "v-love", source: 1, targetLemma: 1}}},
	{id: "a-glad", pos: Adj, lemmas: []string{"glad"}, gloss: "showing cheerfulness",
		pointers: []fixturePointer{{symbol: "!", target: "a-sad", source: 1, targetLemma: 1}}},
	{id: "a-sad", pos: Adj, lemmas: []string{"sad"}, gloss: "experiencing sorrow",
		pointers: []fixturePointer{{symbol: "!", target: "a-glad", source: 1, targetLemma: 1}}},
	{id: "a-good", pos: Adj, lemmas: []string{"good"}, gloss: "having desirable qualities",
		pointers: []fixturePointer{{symbol: "!", target: "a-bad", source: 1, targetLemma: 1}}},
	{id: "a-bad", pos: Adj, lemmas: []string{"bad"}, gloss: "having undesirable qualities",
		pointers: []fixturePointer{{symbol: "!", target: "a-good", source: 1, targetLemma: 1}}},
	{id: "a-happy", pos: Adj, lemmas: []string{"happy"}, gloss: "enjoying well-being",
		pointers: []fixturePointer{{symbol: "!", target: "a-unhappy", source: 1, targetLemma: 1}}},
	{id: "a-unhappy", pos: Adj, lemmas: []string{"unhappy"}, gloss: "experiencing unhappiness",
		pointers: []fixturePointer{{symbol: "!", target: "a-happy", source: 1, targetLemma: 1}}},
	{id: "a-large", pos: Adj, lemmas: []string{"large(a)", "big"}, gloss: "above average in size",
		pointers: []fixturePointer{{symbol: "!", target: "a-small", source: 1, targetLemma: 1}}},
	{id: "a-small", pos: Adj, lemmas: []string{"small(a)", "little"}, gloss: "limited in size",
		pointers: []fixturePointer{{symbol: "!", target: "a-large", source: 1, targetLemma: 1}}},
	{id: "s-great", pos: AdjSat, lemmas: []string{"great"}, gloss: "relatively large in size",
		pointers: []fixturePointer{{symbol: "&", target: "a-large"}}},
	{id: "r-well", pos: Adv, lemmas: []string{"well"}, gloss: "in a good manner",
		pointers: []fixturePointer{{symbol: "!", target: "r-badly", source: 1, targetLemma: 1}}},
	{id: "r-badly", pos: Adv, lemmas: []string{"badly"}, gloss: "in a bad manner",
		pointers: []fixturePointer{{symbol: "!", target: "r-well", source: 1, targetLemma: 1}}},
}

var fixtureExceptions = map[POS]string{
	Adj:  "sadder sad\nhappier happy\n",
	Verb: "",
	Noun: "geese goose\n",
	Adv:  "",
}

func renderSynset(ss fixtureSynset, offsets map[string]int64, posOf map[string]POS) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%08d 00 %c %02x ", offsets[ss.id], ss.pos, len(ss.lemmas))
	for _, l := range ss.lemmas {
		fmt.Fprintf(&b, "%s 0 ", l)
	}
	fmt.Fprintf(&b, "%03d ", len(ss.pointers))
	for _, p := range ss.pointers {
		fmt.Fprintf(&b, "%s %08d %c %02x%02x ", p.symbol, offsets[p.target], posOf[p.target], p.source, p.targetLemma)
	}
	fmt.Fprintf(&b, "| %s  \n", ss.gloss)
	return b.String()
}

// writeFixtureDict writes the fixture into a temp dir and returns its path.
// Offsets are fixed-width, so line lengths do not depend on them and a
// single layout pass gives the final byte offsets.
func writeFixtureDict(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	posOf := make(map[string]POS, len(fixtureDict))
	for _, ss := range fixtureDict {
		posOf[ss.id] = ss.pos
	}

	offsets := make(map[string]int64, len(fixtureDict))
	next := map[POS]int64{}
	for _, pos := range searchOrder {
		next[pos] = int64(len(licenseHeader))
	}
	for _, ss := range fixtureDict {
		file := ss.pos.file()
		offsets[ss.id] = next[file]
		next[file] += int64(len(renderSynset(ss, offsets, posOf)))
	}

	for _, pos := range searchOrder {
		var data strings.Builder
		data.WriteString(licenseHeader)

		lemmaOffsets := map[string][]int64{}
		var lemmaOrder []string
		for _, ss := range fixtureDict {
			if ss.pos.file() != pos {
				continue
			}
			data.WriteString(renderSynset(ss, offsets, posOf))
			for _, l := range ss.lemmas {
				key := strings.ToLower(stripMarker(l))
				if _, ok := lemmaOffsets[key]; !ok {
					lemmaOrder = append(lemmaOrder, key)
				}
				lemmaOffsets[key] = append(lemmaOffsets[key], offsets[ss.id])
			}
		}

		var index strings.Builder
		index.WriteString(licenseHeader)
		for _, lemma := range lemmaOrder {
			offs := lemmaOffsets[lemma]
			fmt.Fprintf(&index, "%s %c %d 1 ! %d 0", lemma, pos, len(offs), len(offs))
			for _, o := range offs {
				fmt.Fprintf(&index, " %08d", o)
			}
			index.WriteString("  \n")
		}

		suffix := fileSuffix[pos]
		require.NoError(t, os.WriteFile(filepath.Join(dir, "data."+suffix), []byte(data.String()), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index."+suffix), []byte(index.String()), 0o644))
		if exc := fixtureExceptions[pos]; exc != "" {
			require.NoError(t, os.WriteFile(filepath.Join(dir, suffix+".exc"), []byte(exc), 0o644))
		}
	}

	return dir
}

func openFixture(t *testing.T) *WordNet {
	t.Helper()
	wn, err := Open(writeFixtureDict(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = wn.Close() })
	return wn
}
