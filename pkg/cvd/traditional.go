package cvd

import "github.com/vitalsense/platform/pkg/common/models"

// TraditionalPoints accumulates integer risk points from the classic
// cardiovascular risk factors.
func TraditionalPoints(v models.VitalSigns) int {
	points := 0

	switch {
	case v.Age >= 65:
		points += 3
	case v.Age >= 55:
		points += 2
	case v.Age >= 45:
		points += 1
	}

	switch {
	case v.BloodPressureSystolic >= 140 || v.BloodPressureDiastolic >= 90:
		points += 3
	case v.BloodPressureSystolic >= 130 || v.BloodPressureDiastolic >= 85:
		points += 2
	}

	switch {
	case v.Cholesterol >= 240:
		points += 3
	case v.Cholesterol >= 200:
		points += 2
	}

	if v.HeartRate > 100 {
		points += 2
	}
	if v.SpO2 < 95 {
		points += 2
	}

	return points
}

// ScoreTraditional maps accumulated points onto a risk level. The method
// contributes no percentage and no confidence of its own.
func ScoreTraditional(v models.VitalSigns) models.CVDScore {
	points := TraditionalPoints(v)

	var level models.RiskLevel
	switch {
	case points >= 10:
		level = models.RiskVeryHigh
	case points >= 7:
		level = models.RiskHigh
	case points >= 4:
		level = models.RiskModerate
	default:
		level = models.RiskLow
	}

	return models.CVDScore{Level: level}
}
