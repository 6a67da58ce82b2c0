package cvd

import (
	"fmt"

	"github.com/vitalsense/platform/pkg/common/models"
)

// Risk factor names. The recommendation generator keys off these.
const (
	FactorHypertension    = "Hypertension"
	FactorHighCholesterol = "High Cholesterol"
	FactorAdvancedAge     = "Advanced Age"
	FactorElevatedHR      = "Elevated Resting Heart Rate"
	FactorLowSpO2         = "Low Oxygen Saturation"
)

// IdentifyRiskFactors inspects the raw vitals and emits the named factors,
// ordered Major before Minor with detection order preserved within each tier.
func IdentifyRiskFactors(v models.VitalSigns) []models.RiskFactor {
	var factors []models.RiskFactor

	if v.BloodPressureSystolic >= 140 || v.BloodPressureDiastolic >= 90 {
		factors = append(factors, models.RiskFactor{
			Name:          FactorHypertension,
			Severity:      models.SeverityMajor,
			ObservedValue: fmt.Sprintf("%.0f/%.0f mmHg", v.BloodPressureSystolic, v.BloodPressureDiastolic),
			TargetValue:   "below 120/80 mmHg",
			Modifiable:    true,
		})
	}

	if v.Cholesterol >= 240 {
		factors = append(factors, models.RiskFactor{
			Name:          FactorHighCholesterol,
			Severity:      models.SeverityMajor,
			ObservedValue: fmt.Sprintf("%.0f mg/dL", v.Cholesterol),
			TargetValue:   "below 200 mg/dL",
			Modifiable:    true,
		})
	}

	if v.Age >= 65 {
		factors = append(factors, models.RiskFactor{
			Name:          FactorAdvancedAge,
			Severity:      models.SeverityMajor,
			ObservedValue: fmt.Sprintf("%d years", v.Age),
			TargetValue:   "n/a",
			Modifiable:    false,
		})
	}

	if v.HeartRate > 80 {
		factors = append(factors, models.RiskFactor{
			Name:          FactorElevatedHR,
			Severity:      models.SeverityMinor,
			ObservedValue: fmt.Sprintf("%.0f bpm", v.HeartRate),
			TargetValue:   "60-80 bpm",
			Modifiable:    true,
		})
	}

	if v.SpO2 < 95 {
		factors = append(factors, models.RiskFactor{
			Name:          FactorLowSpO2,
			Severity:      models.SeverityMinor,
			ObservedValue: fmt.Sprintf("%.0f%%", v.SpO2),
			TargetValue:   "95% or above",
			Modifiable:    true,
		})
	}

	// Majors are detected before minors, so the list is already ordered
	// Major-first with detection order intact.
	return factors
}
