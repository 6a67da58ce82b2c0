package cvd

import (
	"time"

	"github.com/vitalsense/platform/pkg/common/models"
	"github.com/vitalsense/platform/pkg/prediction/classifier"
)

// Assessor runs the three scoring methods, combines them, and attaches risk
// factors and recommendations.
type Assessor struct {
	ensemble classifier.Classifier
}

// NewAssessor wires the assessor. ensemble may be nil; the model-based scorer
// then falls back to its pattern heuristic.
func NewAssessor(ensemble classifier.Classifier) *Assessor {
	return &Assessor{ensemble: ensemble}
}

// Assess produces the full cardiovascular risk assessment for one snapshot.
func (a *Assessor) Assess(v models.VitalSigns) models.CVDAssessment {
	start := time.Now()

	scores := models.ComponentScores{
		Traditional:     ScoreTraditional(v),
		Epidemiological: ScoreEpidemiological(v),
		ModelBased:      ScoreModelBased(v, a.ensemble),
	}

	level, percentage, confidence := Combine(scores)
	factors := IdentifyRiskFactors(v)

	return models.CVDAssessment{
		RiskLevel:        level,
		RiskPercentage:   percentage,
		ConfidenceScore:  confidence,
		RiskFactors:      factors,
		Recommendations:  Recommendations(level, factors),
		ComponentScores:  scores,
		ProcessingTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
	}
}
