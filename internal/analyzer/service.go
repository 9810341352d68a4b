package analyzer

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spacesedan/positivizer/config"
	"github.com/spacesedan/positivizer/internal/metrics"
	"github.com/spacesedan/positivizer/internal/models"
	"github.com/spacesedan/positivizer/internal/sentiment"
)

var ErrEmptyInput = errors.New("please enter some text first")

const (
	EmptyInputMessage = "Please enter some text first!"

	PositiveMessage   = "Great! Your sentence is positive!"
	NegativeMessage   = "Oop's! Your sentence is negative!"
	NeutralMessage    = "Your sentence is neutral."
	SuggestionMessage = "Your Suggested Positive Version: "
)

type Rewriter interface {
	Positivize(ctx context.Context, text string) models.RewrittenSentence
}

type Narrator interface {
	Narrate(ctx context.Context, message string) models.Narration
}

// Sink receives an event for every completed analysis.
type Sink interface {
	Publish(ctx context.Context, event models.AnalysisEvent) error
}

type Service struct {
	scorer   sentiment.Scorer
	rewriter Rewriter
	narrator Narrator
	sink     Sink
	metrics  *metrics.Metrics
	now      func() time.Time
}

type Option func(*Service)

func WithSink(sink Sink) Option {
	return func(s *Service) { s.sink = sink }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(scorer sentiment.Scorer, rewriter Rewriter, narrator Narrator, opts ...Option) *Service {
	s := &Service{
		scorer:   scorer,
		rewriter: rewriter,
		narrator: narrator,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze scores and classifies text, then builds the feedback the page
// shows for that label under settings.
func (s *Service) Analyze(ctx context.Context, text string, settings config.Settings) (*models.AnalysisResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	polarity := s.scorer.Polarity(text)
	result := sentiment.Classify(text, polarity)

	resp := &models.AnalysisResponse{
		ID:         uuid.NewString(),
		Text:       text,
		Polarity:   polarity,
		Label:      result.Label,
		Confidence: result.Confidence,
		Settings:   settings,
		AnalyzedAt: s.now().UTC(),
	}

	var messages []string
	switch result.Label {
	case models.LabelPositive:
		messages = append(messages, PositiveMessage)
		resp.Animation = models.AnimationBalloons

	case models.LabelNegative:
		if settings.ShowSuggestions {
			messages = append(messages, NegativeMessage)
			rewrite := s.rewrite(ctx, text)
			resp.Suggestion = &rewrite
			resp.Positive = rewrite.String()
			messages = append(messages, SuggestionMessage+resp.Positive)
		}
		resp.Animation = models.AnimationSnow

	default:
		messages = append(messages, NeutralMessage)
	}

	if !settings.EnableAnimations {
		resp.Animation = models.AnimationNone
	}

	if settings.EnableAudio {
		for _, msg := range messages {
			resp.Narrations = append(resp.Narrations, s.narrator.Narrate(ctx, msg))
		}
	}

	if s.metrics != nil {
		s.metrics.AnalysesTotal.WithLabelValues(string(result.Label)).Inc()
	}

	slog.Debug("[Analyzer] Analysis complete",
		slog.String("id", resp.ID),
		slog.String("label", string(resp.Label)),
		slog.Float64("confidence", resp.Confidence))

	s.publish(ctx, resp)
	return resp, nil
}

// Positivize rewrites text without classifying it.
func (s *Service) Positivize(ctx context.Context, text string) models.RewrittenSentence {
	return s.rewrite(ctx, text)
}

func (s *Service) rewrite(ctx context.Context, text string) models.RewrittenSentence {
	rewrite := s.rewriter.Positivize(ctx, text)
	if s.metrics != nil {
		s.metrics.RewritesTotal.Inc()
		s.metrics.ReplacedTokensTotal.Add(float64(rewrite.ReplacedCount()))
	}
	return rewrite
}

func (s *Service) publish(ctx context.Context, resp *models.AnalysisResponse) {
	if s.sink == nil {
		return
	}

	event := models.AnalysisEvent{
		ID:         resp.ID,
		Text:       resp.Text,
		Polarity:   resp.Polarity,
		Label:      resp.Label,
		Confidence: resp.Confidence,
		Positive:   resp.Positive,
		AnalyzedAt: resp.AnalyzedAt,
	}
	if resp.Suggestion != nil {
		event.Replaced = resp.Suggestion.ReplacedCount()
	}

	if err := s.sink.Publish(ctx, event); err != nil {
		slog.Warn("[Analyzer] Failed to publish analysis event",
			slog.String("id", resp.ID),
			slog.String("error", err.Error()))
	}
}
