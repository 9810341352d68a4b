package lexicon

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type POS byte

const (
	Noun   POS = 'n'
	Verb   POS = 'v'
	Adj    POS = 'a'
	AdjSat POS = 's'
	Adv    POS = 'r'
)

const (
	antonymPointer = "!"
	maxLineLength  = 1 << 20
	scanBufferSize = 64 * 1024
)

// searchOrder is the part-of-speech order used when collecting synsets for a
// word.
var searchOrder = []POS{Noun, Verb, Adj, Adv}

var fileSuffix = map[POS]string{
	Noun: "noun",
	Verb: "verb",
	Adj:  "adj",
	Adv:  "adv",
}

var ErrBadSynset = errors.New("malformed synset line")

func (p POS) String() string {
	if s, ok := fileSuffix[p.file()]; ok {
		return s
	}
	return string(p)
}

// file maps adjective satellites onto the adjective files.
func (p POS) file() POS {
	if p == AdjSat {
		return Adj
	}
	return p
}

type Pointer struct {
	Symbol string
	Offset int64
	POS    POS
	// Source and Target are 1-based lemma numbers; 0 means the pointer
	// relates the whole synset.
	Source int
	Target int
}

type Synset struct {
	Offset   int64
	POS      POS
	Lemmas   []string
	Pointers []Pointer
	Gloss    string
}

// WordNet reads a WordNet 3.x dict directory. Index and exception files are
// loaded on Open; synsets are read on demand from the data files.
type WordNet struct {
	dir        string
	index      map[POS]map[string][]int64
	exceptions map[POS]map[string][]string
	data       map[POS]*os.File
}

func Open(dir string) (*WordNet, error) {
	wn := &WordNet{
		dir:        dir,
		index:      make(map[POS]map[string][]int64, len(fileSuffix)),
		exceptions: make(map[POS]map[string][]string, len(fileSuffix)),
		data:       make(map[POS]*os.File, len(fileSuffix)),
	}

	for _, pos := range searchOrder {
		suffix := fileSuffix[pos]

		idx, err := loadIndex(filepath.Join(dir, "index."+suffix))
		if err != nil {
			wn.Close()
			return nil, fmt.Errorf("[WordNet] failed to load %s index: %w", suffix, err)
		}
		wn.index[pos] = idx

		exc, err := loadExceptions(filepath.Join(dir, suffix+".exc"))
		if err != nil {
			wn.Close()
			return nil, fmt.Errorf("[WordNet] failed to load %s exceptions: %w", suffix, err)
		}
		wn.exceptions[pos] = exc

		f, err := os.Open(filepath.Join(dir, "data."+suffix))
		if err != nil {
			wn.Close()
			return nil, fmt.Errorf("[WordNet] failed to open %s data: %w", suffix, err)
		}
		wn.data[pos] = f
	}

	slog.Info("[WordNet] Dictionary loaded",
		slog.String("dir", dir),
		slog.Int("nouns", len(wn.index[Noun])),
		slog.Int("verbs", len(wn.index[Verb])),
		slog.Int("adjectives", len(wn.index[Adj])),
		slog.Int("adverbs", len(wn.index[Adv])))

	return wn, nil
}

func (wn *WordNet) Close() error {
	var errs []error
	for pos, f := range wn.data {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(wn.data, pos)
	}
	return errors.Join(errs...)
}

// Antonyms walks every synset of word (noun, verb, adjective, adverb; base
// forms in morphological order; synsets in index order) and, for each lemma
// of each synset that has antonyms, collects the name of its first antonym.
func (wn *WordNet) Antonyms(ctx context.Context, word string) ([]string, error) {
	synsets, err := wn.Synsets(ctx, word)
	if err != nil {
		return nil, err
	}

	var antonyms []string
	for _, ss := range synsets {
		for i := range ss.Lemmas {
			ptr, ok := ss.firstLexicalPointer(antonymPointer, i+1)
			if !ok {
				continue
			}

			target, err := wn.Synset(ptr.POS, ptr.Offset)
			if err != nil {
				return nil, err
			}
			if ptr.Target < 1 || ptr.Target > len(target.Lemmas) {
				return nil, fmt.Errorf("[WordNet] antonym target %d out of range at %s %08d: %w",
					ptr.Target, ptr.POS, ptr.Offset, ErrBadSynset)
			}

			antonyms = append(antonyms, strings.ToLower(target.Lemmas[ptr.Target-1]))
		}
	}

	return antonyms, nil
}

// Synsets returns the synsets of word across all parts of speech.
func (wn *WordNet) Synsets(ctx context.Context, word string) ([]*Synset, error) {
	word = normalizeLemma(word)
	if word == "" {
		return nil, nil
	}

	var synsets []*Synset
	for _, pos := range searchOrder {
		for _, form := range wn.Morph(word, pos) {
			for _, offset := range wn.index[pos][form] {
				if err := ctx.Err(); err != nil {
					return nil, err
				}

				ss, err := wn.Synset(pos, offset)
				if err != nil {
					return nil, err
				}
				synsets = append(synsets, ss)
			}
		}
	}

	return synsets, nil
}

// Synset reads and parses the data line at offset.
func (wn *WordNet) Synset(pos POS, offset int64) (*Synset, error) {
	f, ok := wn.data[pos.file()]
	if !ok {
		return nil, fmt.Errorf("[WordNet] no data file for pos %q", string(pos))
	}

	r := bufio.NewReader(io.NewSectionReader(f, offset, maxLineLength))
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return nil, fmt.Errorf("[WordNet] failed to read %s synset %08d: %w", pos, offset, err)
	}

	ss, err := parseSynset(line)
	if err != nil {
		return nil, fmt.Errorf("[WordNet] %s synset %08d: %w", pos, offset, err)
	}
	if ss.Offset != offset {
		return nil, fmt.Errorf("[WordNet] %s synset offset mismatch, want %08d got %08d: %w",
			pos, offset, ss.Offset, ErrBadSynset)
	}

	return ss, nil
}

func (ss *Synset) firstLexicalPointer(symbol string, source int) (Pointer, bool) {
	for _, p := range ss.Pointers {
		if p.Symbol == symbol && p.Source == source {
			return p, true
		}
	}
	return Pointer{}, false
}

func (wn *WordNet) inIndex(form string, pos POS) bool {
	_, ok := wn.index[pos.file()][form]
	return ok
}

// parseSynset parses one data file line:
//
//	offset lex_filenum ss_type w_cnt word lex_id [word lex_id...] p_cnt [ptr...] [frames...] | gloss
func parseSynset(line string) (*Synset, error) {
	body, gloss, _ := strings.Cut(line, "|")
	fields := strings.Fields(body)
	if len(fields) < 4 {
		return nil, ErrBadSynset
	}

	offset, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("offset %q: %w", fields[0], ErrBadSynset)
	}
	if len(fields[2]) != 1 {
		return nil, fmt.Errorf("ss_type %q: %w", fields[2], ErrBadSynset)
	}

	ss := &Synset{
		Offset: offset,
		POS:    POS(fields[2][0]),
		Gloss:  strings.TrimSpace(gloss),
	}

	wordCount, err := strconv.ParseInt(fields[3], 16, 32)
	if err != nil {
		return nil, fmt.Errorf("w_cnt %q: %w", fields[3], ErrBadSynset)
	}

	i := 4
	for n := 0; n < int(wordCount); n++ {
		if i+1 >= len(fields) {
			return nil, fmt.Errorf("truncated lemma list: %w", ErrBadSynset)
		}
		ss.Lemmas = append(ss.Lemmas, stripMarker(fields[i]))
		i += 2
	}

	if i >= len(fields) {
		return nil, fmt.Errorf("missing p_cnt: %w", ErrBadSynset)
	}
	ptrCount, err := strconv.Atoi(fields[i])
	if err != nil {
		return nil, fmt.Errorf("p_cnt %q: %w", fields[i], ErrBadSynset)
	}
	i++

	for n := 0; n < ptrCount; n++ {
		if i+3 >= len(fields) {
			return nil, fmt.Errorf("truncated pointer list: %w", ErrBadSynset)
		}
		ptr, err := parsePointer(fields[i : i+4])
		if err != nil {
			return nil, err
		}
		ss.Pointers = append(ss.Pointers, ptr)
		i += 4
	}

	return ss, nil
}

func parsePointer(f []string) (Pointer, error) {
	offset, err := strconv.ParseInt(f[1], 10, 64)
	if err != nil {
		return Pointer{}, fmt.Errorf("pointer offset %q: %w", f[1], ErrBadSynset)
	}
	if len(f[2]) != 1 || len(f[3]) != 4 {
		return Pointer{}, fmt.Errorf("pointer %v: %w", f, ErrBadSynset)
	}

	source, err := strconv.ParseUint(f[3][:2], 16, 8)
	if err != nil {
		return Pointer{}, fmt.Errorf("pointer source %q: %w", f[3], ErrBadSynset)
	}
	target, err := strconv.ParseUint(f[3][2:], 16, 8)
	if err != nil {
		return Pointer{}, fmt.Errorf("pointer target %q: %w", f[3], ErrBadSynset)
	}

	return Pointer{
		Symbol: f[0],
		Offset: offset,
		POS:    POS(f[2][0]),
		Source: int(source),
		Target: int(target),
	}, nil
}

// stripMarker drops an adjective syntactic marker such as "(a)" or "(ip)".
func stripMarker(word string) string {
	if i := strings.IndexByte(word, '('); i > 0 && strings.HasSuffix(word, ")") {
		return word[:i]
	}
	return word
}

func normalizeLemma(word string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(word)), " ", "_")
}

// loadIndex reads an index file:
//
//	lemma pos synset_cnt p_cnt [ptr_symbol...] sense_cnt tagsense_cnt synset_offset...
func loadIndex(path string) (map[string][]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	index := make(map[string][]int64)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, scanBufferSize), maxLineLength)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || line[0] == ' ' {
			continue // license header
		}

		fields := strings.Fields(line)
		if len(fields) < 6 {
			return nil, fmt.Errorf("line %d: too few fields", lineNo)
		}

		synsetCount, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: synset_cnt: %w", lineNo, err)
		}
		ptrCount, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: p_cnt: %w", lineNo, err)
		}

		start := 4 + ptrCount + 2
		if start+synsetCount > len(fields) {
			return nil, fmt.Errorf("line %d: expected %d offsets", lineNo, synsetCount)
		}

		offsets := make([]int64, 0, synsetCount)
		for _, raw := range fields[start : start+synsetCount] {
			off, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: offset %q: %w", lineNo, raw, err)
			}
			offsets = append(offsets, off)
		}
		index[fields[0]] = offsets
	}

	return index, scanner.Err()
}

// loadExceptions reads an exception list (inflected form followed by one or
// more base forms). A missing file is treated as empty.
func loadExceptions(path string) (map[string][]string, error) {
	exc := make(map[string][]string)

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return exc, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, scanBufferSize), maxLineLength)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		exc[fields[0]] = append(exc[fields[0]], fields[1:]...)
	}

	return exc, scanner.Err()
}
