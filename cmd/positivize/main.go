package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spacesedan/positivizer/internal/analyzer"
	"github.com/spacesedan/positivizer/internal/lexicon"
	"github.com/spacesedan/positivizer/internal/logging"
	"github.com/spacesedan/positivizer/internal/models"
	"github.com/spacesedan/positivizer/internal/positivizer"
	"github.com/spacesedan/positivizer/internal/sentiment"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	wordnetDir := os.Getenv("WORDNET_DIR")
	if wordnetDir == "" {
		wordnetDir = "./data/wordnet/dict"
	}

	fs := flag.NewFlagSet("positivize", flag.ContinueOnError)
	fs.StringVar(&wordnetDir, "wordnet", wordnetDir, "WordNet dict directory")
	lexiconFile := fs.String("lexicon", os.Getenv("LEXICON_FILE"), "JSON antonym table used instead of WordNet")
	showPolarity := fs.Bool("polarity", false, "print the raw compound polarity")
	rewriteOnly := fs.Bool("rewrite", false, "rewrite the sentence without classifying it")
	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: positivize [flags] sentence...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	slog.SetDefault(logging.NewLogger(os.Stderr, *logLevel))

	text := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(text) == "" {
		fs.Usage()
		return analyzer.ErrEmptyInput
	}

	source, err := lexicon.OpenSource(wordnetDir, *lexiconFile)
	if err != nil {
		return err
	}
	defer source.Close()
	rewriter := positivizer.New(source)

	if *rewriteOnly {
		fmt.Fprintln(out, rewriter.Positivize(ctx, text).String())
		return nil
	}

	polarity := sentiment.NewVADERScorer().Polarity(text)
	result := sentiment.Classify(text, polarity)

	switch result.Label {
	case models.LabelNeutral:
		fmt.Fprintln(out, result.Label)
	default:
		fmt.Fprintf(out, "%s (%.2f%%)\n", result.Label, result.Confidence)
	}
	if *showPolarity {
		fmt.Fprintf(out, "polarity: %.4f\n", polarity)
	}
	if result.Label == models.LabelNegative {
		fmt.Fprintf(out, "Suggested positive version: %s\n", rewriter.Positivize(ctx, text).String())
	}
	return nil
}
