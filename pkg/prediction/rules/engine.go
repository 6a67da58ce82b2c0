package rules

import (
	"fmt"
	"strings"

	"github.com/vitalsense/platform/pkg/common/models"
)

// Engine is the deterministic threshold classifier. It is the terminal
// fallback tier: pure, total, always available.
type Engine struct {
	t Thresholds
}

func NewEngine(t Thresholds) *Engine {
	return &Engine{t: t}
}

// Band returns the age-adjusted normal heart-rate band.
func (e *Engine) Band(age int) Band {
	switch {
	case age < e.t.HeartRate.ChildMaxAge:
		return e.t.HeartRate.ChildBand
	case age > e.t.HeartRate.SeniorMinAge:
		return e.t.HeartRate.SeniorBand
	default:
		return e.t.HeartRate.AdultBand
	}
}

// Evaluate classifies a vitals snapshot. The returned result reports
// model_used as rule_based; elapsed time is filled in by the caller.
func (e *Engine) Evaluate(v models.VitalSigns) models.PredictionResult {
	var critical, warning []string

	band := e.Band(v.Age)
	hr := e.t.HeartRate
	if v.HeartRate < band.Low-hr.CriticalLowMargin || v.HeartRate > band.High+hr.CriticalHighMargin {
		critical = append(critical, "heart rate")
	} else if v.HeartRate < band.Low || v.HeartRate > band.High {
		warning = append(warning, "heart rate")
	}

	temp := e.t.Temperature
	if v.Temperature < temp.CriticalLow || v.Temperature > temp.CriticalHigh {
		critical = append(critical, "temperature")
	} else if v.Temperature < temp.WarningLow || v.Temperature > temp.WarningHigh {
		warning = append(warning, "temperature")
	}

	if v.SpO2 < e.t.SpO2.Critical {
		critical = append(critical, "oxygen level")
	} else if v.SpO2 < e.t.SpO2.Warning {
		warning = append(warning, "oxygen level")
	}

	bp := e.t.BloodPressure
	if v.BloodPressureSystolic >= bp.CriticalSystolic || v.BloodPressureDiastolic >= bp.CriticalDiastolic {
		critical = append(critical, "blood pressure")
	} else if v.BloodPressureSystolic >= bp.WarningSystolic || v.BloodPressureDiastolic >= bp.WarningDiastolic {
		warning = append(warning, "blood pressure")
	}

	if v.Cholesterol >= e.t.Cholesterol.Critical {
		critical = append(critical, "cholesterol")
	} else if v.Cholesterol >= e.t.Cholesterol.Warning {
		warning = append(warning, "cholesterol")
	}

	var status models.HealthStatus
	var confidence float64
	var action string
	switch {
	case len(critical) > 0:
		status = models.StatusCritical
		confidence = e.t.CriticalConfidence
		action = fmt.Sprintf("Seek immediate medical attention. Critical: %s", strings.Join(critical, ", "))
	case len(warning) >= e.t.MinWarningFactors:
		status = models.StatusWarning
		confidence = e.t.WarningConfidence
		action = fmt.Sprintf("Monitor closely and consult a doctor. Concerns: %s", strings.Join(warning, ", "))
	default:
		status = models.StatusNormal
		confidence = e.t.NormalConfidence
		action = "Normal – no immediate action needed. Continue regular check-ups."
	}

	return models.PredictionResult{
		HealthStatus:    status,
		ConfidenceScore: confidence,
		SuggestedAction: action,
		ModelUsed:       models.ModelRuleBased,
		TriggeredFactors: models.TriggeredFactors{
			Critical: critical,
			Warning:  warning,
		},
	}
}
