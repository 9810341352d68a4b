package sentiment

import (
	"math"

	"github.com/spacesedan/positivizer/internal/models"
)

const (
	PositiveThreshold = 0.1
	NegativeThreshold = -0.1
)

// Classify maps a polarity score in [-1, 1] to a label. Scores exactly on a
// threshold are NEUTRAL. text is not inspected.
func Classify(_ string, polarity float64) models.AnalysisResult {
	switch {
	case polarity > PositiveThreshold:
		return models.AnalysisResult{Label: models.LabelPositive, Confidence: toPercent(polarity)}
	case polarity < NegativeThreshold:
		return models.AnalysisResult{Label: models.LabelNegative, Confidence: toPercent(math.Abs(polarity))}
	default:
		return models.AnalysisResult{Label: models.LabelNeutral, Confidence: 0}
	}
}

// toPercent scales to a percentage rounded to two decimal places.
func toPercent(v float64) float64 {
	return math.Round(v*100*100) / 100
}
