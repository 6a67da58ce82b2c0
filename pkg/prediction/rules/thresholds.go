package rules

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Band is an inclusive value range.
type Band struct {
	Low  float64 `yaml:"low" json:"low"`
	High float64 `yaml:"high" json:"high"`
}

// HeartRateThresholds hold the age-adjusted normal bands plus the margins
// beyond a band that escalate to critical.
type HeartRateThresholds struct {
	ChildBand          Band    `yaml:"child_band" json:"child_band"`   // age < ChildMaxAge
	AdultBand          Band    `yaml:"adult_band" json:"adult_band"`   // everyone else
	SeniorBand         Band    `yaml:"senior_band" json:"senior_band"` // age > SeniorMinAge
	ChildMaxAge        int     `yaml:"child_max_age" json:"child_max_age"`
	SeniorMinAge       int     `yaml:"senior_min_age" json:"senior_min_age"`
	CriticalLowMargin  float64 `yaml:"critical_low_margin" json:"critical_low_margin"`
	CriticalHighMargin float64 `yaml:"critical_high_margin" json:"critical_high_margin"`
}

type TemperatureThresholds struct {
	CriticalLow  float64 `yaml:"critical_low" json:"critical_low"`
	CriticalHigh float64 `yaml:"critical_high" json:"critical_high"`
	WarningLow   float64 `yaml:"warning_low" json:"warning_low"`
	WarningHigh  float64 `yaml:"warning_high" json:"warning_high"`
}

type SpO2Thresholds struct {
	Critical float64 `yaml:"critical" json:"critical"` // below is critical
	Warning  float64 `yaml:"warning" json:"warning"`   // below is warning
}

type BloodPressureThresholds struct {
	CriticalSystolic  float64 `yaml:"critical_systolic" json:"critical_systolic"`
	CriticalDiastolic float64 `yaml:"critical_diastolic" json:"critical_diastolic"`
	WarningSystolic   float64 `yaml:"warning_systolic" json:"warning_systolic"`
	WarningDiastolic  float64 `yaml:"warning_diastolic" json:"warning_diastolic"`
}

type CholesterolThresholds struct {
	Critical float64 `yaml:"critical" json:"critical"` // at or above is critical
	Warning  float64 `yaml:"warning" json:"warning"`   // at or above is warning
}

// Thresholds is the full rule-engine configuration.
type Thresholds struct {
	HeartRate     HeartRateThresholds     `yaml:"heart_rate" json:"heart_rate"`
	Temperature   TemperatureThresholds   `yaml:"temperature" json:"temperature"`
	SpO2          SpO2Thresholds          `yaml:"spo2" json:"spo2"`
	BloodPressure BloodPressureThresholds `yaml:"blood_pressure" json:"blood_pressure"`
	Cholesterol   CholesterolThresholds   `yaml:"cholesterol" json:"cholesterol"`

	CriticalConfidence float64 `yaml:"critical_confidence" json:"critical_confidence"`
	WarningConfidence  float64 `yaml:"warning_confidence" json:"warning_confidence"`
	NormalConfidence   float64 `yaml:"normal_confidence" json:"normal_confidence"`
	MinWarningFactors  int     `yaml:"min_warning_factors" json:"min_warning_factors"`
}

// LoadThresholds reads a thresholds override file, or returns the compiled-in
// defaults when no path is given.
func LoadThresholds(path string) (Thresholds, error) {
	if path == "" {
		return DefaultThresholds(), nil
	}
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return DefaultThresholds(), err
	}

	var t Thresholds
	if err := yaml.Unmarshal(content, &t); err != nil {
		return Thresholds{}, err
	}
	if t.MinWarningFactors <= 0 {
		return Thresholds{}, errors.New("thresholds file missing min_warning_factors")
	}
	return t, nil
}

// DefaultThresholds returns the clinically sourced defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HeartRate: HeartRateThresholds{
			ChildBand:          Band{Low: 70, High: 110},
			AdultBand:          Band{Low: 60, High: 100},
			SeniorBand:         Band{Low: 60, High: 90},
			ChildMaxAge:        18,
			SeniorMinAge:       65,
			CriticalLowMargin:  20,
			CriticalHighMargin: 40,
		},
		Temperature: TemperatureThresholds{
			CriticalLow:  35.0,
			CriticalHigh: 38.0,
			WarningLow:   36.1,
			WarningHigh:  37.2,
		},
		SpO2: SpO2Thresholds{
			Critical: 90,
			Warning:  95,
		},
		BloodPressure: BloodPressureThresholds{
			CriticalSystolic:  140,
			CriticalDiastolic: 90,
			WarningSystolic:   120,
			WarningDiastolic:  80,
		},
		Cholesterol: CholesterolThresholds{
			Critical: 240,
			Warning:  200,
		},
		CriticalConfidence: 0.90,
		WarningConfidence:  0.85,
		NormalConfidence:   0.95,
		MinWarningFactors:  2,
	}
}
