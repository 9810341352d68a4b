package models

import (
	"time"

	"github.com/spacesedan/positivizer/config"
)

type Animation string

const (
	AnimationNone     Animation = ""
	AnimationBalloons Animation = "balloons"
	AnimationSnow     Animation = "snow"
)

// Narration is one spoken message. Audio is MP3 data and is empty when
// speech was unavailable, in which case Notice explains why.
type Narration struct {
	Message string `json:"message"`
	Audio   []byte `json:"audio,omitempty"`
	Notice  string `json:"notice,omitempty"`
}

type AnalysisResponse struct {
	ID         string             `json:"id"`
	Text       string             `json:"text"`
	Polarity   float64            `json:"polarity"`
	Label      Label              `json:"label"`
	Confidence float64            `json:"confidence"`
	Suggestion *RewrittenSentence `json:"suggestion,omitempty"`
	Positive   string             `json:"positive_version,omitempty"`
	Narrations []Narration        `json:"narrations,omitempty"`
	Animation  Animation          `json:"animation,omitempty"`
	Settings   config.Settings    `json:"settings"`
	AnalyzedAt time.Time          `json:"analyzed_at"`
}

// AnalysisEvent is what gets published to the result sink after every
// analysis. Narration audio is not included.
type AnalysisEvent struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	Polarity   float64   `json:"polarity"`
	Label      Label     `json:"label"`
	Confidence float64   `json:"confidence"`
	Positive   string    `json:"positive_version,omitempty"`
	Replaced   int       `json:"replaced_tokens"`
	AnalyzedAt time.Time `json:"analyzed_at"`
}
