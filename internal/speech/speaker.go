package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/sony/gobreaker"
)

var ErrUnavailable = errors.New("speech unavailable")

// Speaker renders text as MP3 audio.
type Speaker interface {
	Speak(ctx context.Context, text string) ([]byte, error)
}

// Disabled is used when no speech backend is configured.
type Disabled struct{}

func (Disabled) Speak(context.Context, string) ([]byte, error) {
	return nil, ErrUnavailable
}

// SpeechAPI is the subset of the OpenAI audio speech service used here.
type SpeechAPI interface {
	New(ctx context.Context, body openai.AudioSpeechNewParams, opts ...option.RequestOption) (*http.Response, error)
}

type OpenAISpeaker struct {
	api   SpeechAPI
	model string
	voice string
}

func NewOpenAISpeaker(api SpeechAPI, model, voice string) *OpenAISpeaker {
	return &OpenAISpeaker{api: api, model: model, voice: voice}
}

func (s *OpenAISpeaker) Speak(ctx context.Context, text string) ([]byte, error) {
	start := time.Now()

	res, err := s.api.New(ctx, openai.AudioSpeechNewParams{
		Input:          openai.F(text),
		Model:          openai.F(openai.SpeechModel(s.model)),
		Voice:          openai.F(openai.AudioSpeechNewParamsVoice(s.voice)),
		ResponseFormat: openai.F(openai.AudioSpeechNewParamsResponseFormatMP3),
	})
	if err != nil {
		return nil, fmt.Errorf("[OpenAISpeaker] speech request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("[OpenAISpeaker] unexpected status code %d", res.StatusCode)
	}

	audio, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("[OpenAISpeaker] failed to read audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("[OpenAISpeaker] empty audio response: %w", ErrUnavailable)
	}

	slog.Debug("[OpenAISpeaker] Speech rendered",
		slog.Int("bytes", len(audio)),
		slog.Duration("elapsed", time.Since(start)))

	return audio, nil
}

type BreakerSettings struct {
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
}

func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{ConsecutiveFailures: 3, OpenTimeout: 30 * time.Second}
}

// BreakerSpeaker stops calling a failing Speaker for a while after
// ConsecutiveFailures errors in a row.
type BreakerSpeaker struct {
	next Speaker
	cb   *gobreaker.CircuitBreaker
}

func NewBreakerSpeaker(next Speaker, settings BreakerSettings) *BreakerSpeaker {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "speech",
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.ConsecutiveFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("[BreakerSpeaker] Circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})

	return &BreakerSpeaker{next: next, cb: cb}
}

func (b *BreakerSpeaker) Speak(ctx context.Context, text string) ([]byte, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Speak(ctx, text)
	})
	if err != nil {
		return nil, err
	}
	return out.([]byte), nil
}

func (b *BreakerSpeaker) State() gobreaker.State {
	return b.cb.State()
}

// Probe reports an error while the breaker is open. It never calls the
// backend.
func (b *BreakerSpeaker) Probe(context.Context) error {
	if b.cb.State() == gobreaker.StateOpen {
		return gobreaker.ErrOpenState
	}
	return nil
}
