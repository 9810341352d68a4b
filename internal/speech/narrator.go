package speech

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/spacesedan/positivizer/internal/metrics"
	"github.com/spacesedan/positivizer/internal/models"
)

const UnavailableNotice = "Audio feedback not available in this environment."

// Narrator turns messages into narrations. It never fails: when speech
// cannot be produced the narration carries UnavailableNotice instead of
// audio.
type Narrator struct {
	speaker Speaker
	healthy *atomic.Bool
	metrics *metrics.Metrics
}

// NewNarrator builds a Narrator. healthy may be nil; when set and false,
// the speaker is not called at all.
func NewNarrator(speaker Speaker, healthy *atomic.Bool, m *metrics.Metrics) *Narrator {
	return &Narrator{speaker: speaker, healthy: healthy, metrics: m}
}

func (n *Narrator) Narrate(ctx context.Context, message string) (narration models.Narration) {
	narration = models.Narration{Message: message}

	if n.healthy != nil && !n.healthy.Load() {
		n.count("skipped")
		narration.Notice = UnavailableNotice
		return narration
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("[Narrator] Speaker panicked, continuing without audio",
				slog.Any("panic", r))
			n.count("failed")
			narration = models.Narration{Message: message, Notice: UnavailableNotice}
		}
	}()

	audio, err := n.speaker.Speak(ctx, message)
	if err != nil {
		slog.Warn("[Narrator] Speech unavailable, continuing without audio",
			slog.String("error", err.Error()))
		n.count("failed")
		narration.Notice = UnavailableNotice
		return narration
	}

	n.count("ok")
	narration.Audio = audio
	return narration
}

func (n *Narrator) count(outcome string) {
	if n.metrics != nil {
		n.metrics.SpeechTotal.WithLabelValues(outcome).Inc()
	}
}
