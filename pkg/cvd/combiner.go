package cvd

import "github.com/vitalsense/platform/pkg/common/models"

// Method weights for the consensus score.
const (
	weightTraditional     = 0.3
	weightEpidemiological = 0.4
	weightModelBased      = 0.3

	defaultPercentage = 10.0
	defaultConfidence = 0.8
)

// Combine reconciles the three component scores into one consensus level,
// percentage, and confidence.
func Combine(scores models.ComponentScores) (models.RiskLevel, float64, float64) {
	weighted := weightTraditional*scores.Traditional.Level.Ordinal() +
		weightEpidemiological*scores.Epidemiological.Level.Ordinal() +
		weightModelBased*scores.ModelBased.Level.Ordinal()

	var level models.RiskLevel
	switch {
	case weighted >= 3.5:
		level = models.RiskVeryHigh
	case weighted >= 2.5:
		level = models.RiskHigh
	case weighted >= 1.5:
		level = models.RiskModerate
	default:
		level = models.RiskLow
	}

	// The traditional method contributes no percentage.
	var sum float64
	var count int
	for _, p := range []*float64{scores.Epidemiological.Percentage, scores.ModelBased.Percentage} {
		if p != nil {
			sum += *p
			count++
		}
	}
	percentage := defaultPercentage
	if count > 0 {
		percentage = sum / float64(count)
	}

	confidence := defaultConfidence
	if scores.ModelBased.Confidence > 0 {
		confidence = scores.ModelBased.Confidence
	}

	return level, percentage, confidence
}
