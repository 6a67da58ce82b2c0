package vitals

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vitalsense/platform/pkg/common/models"
)

var errOutOfRange = errors.New("value out of range")

// ValidationError reports one or more vitals outside their declared ranges.
type ValidationError struct {
	Problems []string
}

func (e ValidationError) Error() string {
	return "invalid vital signs: " + strings.Join(e.Problems, "; ")
}

func (e ValidationError) Unwrap() error {
	return errOutOfRange
}

func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// Validate checks every field against its declared range. All violations are
// collected before returning so callers can report them at once.
func Validate(v models.VitalSigns) error {
	var problems []string

	if v.HeartRate < 30 || v.HeartRate > 200 {
		problems = append(problems, fmt.Sprintf("heart rate %.1f BPM outside 30-200", v.HeartRate))
	}
	if v.Temperature < 35.0 || v.Temperature > 42.0 {
		problems = append(problems, fmt.Sprintf("temperature %.1f°C outside 35.0-42.0", v.Temperature))
	}
	if v.SpO2 < 70 || v.SpO2 > 100 {
		problems = append(problems, fmt.Sprintf("SpO2 %.1f%% outside 70-100", v.SpO2))
	}
	if v.Age < 1 || v.Age > 120 {
		problems = append(problems, fmt.Sprintf("age %d outside 1-120", v.Age))
	}
	if v.BloodPressureSystolic < 70 || v.BloodPressureSystolic > 250 {
		problems = append(problems, fmt.Sprintf("systolic BP %.1f mmHg outside 70-250", v.BloodPressureSystolic))
	}
	if v.BloodPressureDiastolic < 40 || v.BloodPressureDiastolic > 150 {
		problems = append(problems, fmt.Sprintf("diastolic BP %.1f mmHg outside 40-150", v.BloodPressureDiastolic))
	}
	if v.Cholesterol < 100 || v.Cholesterol > 400 {
		problems = append(problems, fmt.Sprintf("cholesterol %.1f mg/dL outside 100-400", v.Cholesterol))
	}

	if len(problems) > 0 {
		return ValidationError{Problems: problems}
	}
	return nil
}

// ClinicalWarnings flags concerning combinations of vitals that each pass
// individual range checks. Advisory only; never blocks an evaluation.
func ClinicalWarnings(v models.VitalSigns) []string {
	var warnings []string

	if v.HeartRate > 120 && v.SpO2 < 95 {
		warnings = append(warnings, "high heart rate combined with low SpO2 may indicate respiratory distress")
	}
	if v.Temperature > 38.0 && v.HeartRate > 100 {
		warnings = append(warnings, "high temperature combined with elevated heart rate may indicate fever or infection")
	}
	if v.SpO2 < 92 && v.HeartRate >= 60 && v.HeartRate <= 100 {
		warnings = append(warnings, "low SpO2 with normal heart rate may indicate chronic respiratory condition")
	}
	if v.Temperature < 36.0 && v.HeartRate < 60 {
		warnings = append(warnings, "low temperature combined with low heart rate may indicate hypothermia")
	}

	return warnings
}
