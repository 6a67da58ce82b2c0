package cvd

import (
	"math"

	"github.com/vitalsense/platform/pkg/common/models"
)

// Coefficients of the simplified Framingham-style ten-year risk formula. The
// formula fixes HDL at 50 and omits smoking status and sex; this is a known
// approximation inherited from the source scoring method, preserved verbatim
// for compatibility.
const (
	epiAgeCoeff      = 0.0483
	epiCholCoeff     = 0.6545
	epiSystolicCoeff = 0.0221
	epiHDLCoeff      = 0.8396
	epiIntercept     = 3.0618
	epiBaselineSurv  = 0.88936
	epiFixedHDL      = 50.0
	epiMinPercentage = 1.0
	epiMaxPercentage = 30.0
)

// ScoreEpidemiological computes the ten-year risk percentage. A malformed
// intermediate (NaN or Inf) cannot occur for range-validated input, but if it
// does the score degrades to Low with zero confidence instead of propagating.
func ScoreEpidemiological(v models.VitalSigns) models.CVDScore {
	sum := epiAgeCoeff*float64(v.Age) +
		epiCholCoeff*math.Log(v.Cholesterol) +
		epiSystolicCoeff*math.Log(v.BloodPressureSystolic) -
		epiHDLCoeff*math.Log(epiFixedHDL) -
		epiIntercept

	percentage := 100 * (1 - math.Pow(epiBaselineSurv, math.Exp(sum)))
	if math.IsNaN(percentage) || math.IsInf(percentage, 0) {
		return models.CVDScore{Level: models.RiskLow}
	}

	percentage = clamp(percentage, epiMinPercentage, epiMaxPercentage)

	return models.CVDScore{
		Level:      levelForPercentage(percentage),
		Percentage: &percentage,
	}
}

func levelForPercentage(percentage float64) models.RiskLevel {
	switch {
	case percentage >= 20:
		return models.RiskHigh
	case percentage >= 10:
		return models.RiskModerate
	default:
		return models.RiskLow
	}
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
