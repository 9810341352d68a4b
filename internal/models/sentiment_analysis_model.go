package models

import "strings"

type Label string

const (
	LabelPositive Label = "POSITIVE"
	LabelNegative Label = "NEGATIVE"
	LabelNeutral  Label = "NEUTRAL"
)

// AnalysisResult is the classifier output. Confidence is a percentage in
// [0, 100] and is always 0 for NEUTRAL.
type AnalysisResult struct {
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
}

type RewrittenToken struct {
	Original string `json:"original"`
	Text     string `json:"text"`
	Replaced bool   `json:"replaced"`
}

// RewrittenSentence holds one token per whitespace-delimited token of the
// input, in input order.
type RewrittenSentence struct {
	Tokens []RewrittenToken `json:"tokens"`
}

func (r RewrittenSentence) Words() []string {
	words := make([]string, len(r.Tokens))
	for i, t := range r.Tokens {
		words[i] = t.Text
	}
	return words
}

// String joins the tokens with a single space. Runs of whitespace in the
// original input are not preserved.
func (r RewrittenSentence) String() string {
	return strings.Join(r.Words(), " ")
}

func (r RewrittenSentence) ReplacedCount() int {
	n := 0
	for _, t := range r.Tokens {
		if t.Replaced {
			n++
		}
	}
	return n
}
