package vitals

import (
	"testing"

	"github.com/vitalsense/platform/pkg/common/models"
)

func validVitals() models.VitalSigns {
	return models.VitalSigns{
		HeartRate:              75,
		Temperature:            36.8,
		SpO2:                   98,
		Age:                    30,
		BloodPressureSystolic:  115,
		BloodPressureDiastolic: 75,
		Cholesterol:            180,
	}
}

func TestValidateAcceptsHealthyVitals(t *testing.T) {
	if err := Validate(validVitals()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	v := validVitals()
	v.HeartRate = 250
	v.SpO2 = 60
	v.Age = 0

	err := Validate(v)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !IsValidationError(err) {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	ve := err.(ValidationError)
	if len(ve.Problems) != 3 {
		t.Fatalf("expected 3 problems, got %d: %v", len(ve.Problems), ve.Problems)
	}
}

func TestValidateBoundaryValues(t *testing.T) {
	v := validVitals()
	v.HeartRate = 30
	v.Temperature = 42.0
	v.SpO2 = 70
	v.Age = 120
	v.BloodPressureSystolic = 250
	v.BloodPressureDiastolic = 40
	v.Cholesterol = 400

	if err := Validate(v); err != nil {
		t.Fatalf("boundary values should be accepted: %v", err)
	}
}

func TestClinicalWarningsFlagsRespiratoryDistress(t *testing.T) {
	v := validVitals()
	v.HeartRate = 130
	v.SpO2 = 92

	warnings := ClinicalWarnings(v)
	if len(warnings) == 0 {
		t.Fatal("expected at least one clinical warning")
	}
}

func TestClinicalWarningsQuietForHealthyVitals(t *testing.T) {
	if warnings := ClinicalWarnings(validVitals()); len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
}
