package cvd

import (
	"math"

	"github.com/vitalsense/platform/pkg/common/models"
	"github.com/vitalsense/platform/pkg/prediction/classifier"
	"github.com/vitalsense/platform/pkg/vitals"
)

const heuristicConfidence = 0.75

// classRiskMapping reuses the 3-class health classifier output as a CVD
// proxy; no dedicated CVD model exists.
var classRiskMapping = map[int]struct {
	percentage float64
	level      models.RiskLevel
}{
	0: {5, models.RiskLow},       // Normal
	1: {15, models.RiskModerate}, // Warning
	2: {25, models.RiskHigh},     // Critical
}

// ScoreModelBased estimates risk from the ensemble classifier when it is
// available, and otherwise from a deterministic pattern heuristic.
func ScoreModelBased(v models.VitalSigns, ensemble classifier.Classifier) models.CVDScore {
	if ensemble != nil {
		class, confidence, err := ensemble.Predict(vitals.FeatureVector(v))
		if err == nil {
			if mapping, ok := classRiskMapping[class]; ok {
				percentage := mapping.percentage
				return models.CVDScore{
					Level:      mapping.level,
					Percentage: &percentage,
					Confidence: confidence,
				}
			}
		}
	}

	return patternHeuristic(v)
}

func patternHeuristic(v models.VitalSigns) models.CVDScore {
	var points float64

	elevatedBP := v.BloodPressureSystolic >= 130
	elevatedChol := v.Cholesterol >= 200

	if elevatedBP && elevatedChol {
		points += 4
	}

	if v.Age >= 50 {
		count := 0
		for _, present := range []bool{elevatedBP, elevatedChol, v.HeartRate > 80, v.SpO2 < 96} {
			if present {
				count++
			}
		}
		points += 1.5 * float64(count)
	}

	if v.HeartRate > 90 && v.SpO2 < 95 {
		points += 3
	}

	percentage := math.Min(epiMaxPercentage, points*3.5)

	return models.CVDScore{
		Level:      levelForPercentage(percentage),
		Percentage: &percentage,
		Confidence: heuristicConfidence,
	}
}
