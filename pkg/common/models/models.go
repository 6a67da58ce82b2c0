package models

import "time"

// HealthStatus is the three-level classification produced by the status
// prediction pipeline.
type HealthStatus string

const (
	StatusNormal   HealthStatus = "Normal"
	StatusWarning  HealthStatus = "Warning"
	StatusCritical HealthStatus = "Critical"
)

// Rank orders statuses by severity: Normal < Warning < Critical.
func (s HealthStatus) Rank() int {
	switch s {
	case StatusWarning:
		return 1
	case StatusCritical:
		return 2
	default:
		return 0
	}
}

// Model identifiers reported in PredictionResult.ModelUsed.
const (
	ModelRandomForest  = "random_forest"
	ModelNeuralNetwork = "neural_network"
	ModelRuleBased     = "rule_based"
)

// VitalSigns is a single patient snapshot. All seven fields are always
// present; the value is range-validated before it reaches any scorer and is
// never mutated afterwards.
type VitalSigns struct {
	HeartRate              float64 `json:"heart_rate"`
	Temperature            float64 `json:"temperature"`
	SpO2                   float64 `json:"spo2"`
	Age                    int     `json:"age"`
	BloodPressureSystolic  float64 `json:"blood_pressure_systolic"`
	BloodPressureDiastolic float64 `json:"blood_pressure_diastolic"`
	Cholesterol            float64 `json:"cholesterol"`
}

// TriggeredFactors lists the vital names that pushed a rule-based prediction
// toward Warning or Critical.
type TriggeredFactors struct {
	Critical []string `json:"critical"`
	Warning  []string `json:"warning"`
}

// PredictionResult is the outcome of one status prediction. Built fresh per
// evaluation and never mutated after creation.
type PredictionResult struct {
	HealthStatus     HealthStatus     `json:"health_status"`
	ConfidenceScore  float64          `json:"confidence_score"`
	SuggestedAction  string           `json:"suggested_action"`
	ModelUsed        string           `json:"model_used"`
	ElapsedTimeMs    float64          `json:"elapsed_time_ms"`
	TriggeredFactors TriggeredFactors `json:"triggered_factors"`
}

// RiskLevel is the four-level CVD risk classification.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
	RiskVeryHigh RiskLevel = "Very High"
)

// Ordinal maps a risk level onto the 1..4 scale used by the risk combiner.
func (l RiskLevel) Ordinal() float64 {
	switch l {
	case RiskModerate:
		return 2
	case RiskHigh:
		return 3
	case RiskVeryHigh:
		return 4
	default:
		return 1
	}
}

// Severity classifies a risk factor as Major or Minor.
type Severity string

const (
	SeverityMajor Severity = "Major"
	SeverityMinor Severity = "Minor"
)

// RiskFactor is one named cardiovascular risk factor identified from the raw
// vitals. Exposed lists are ordered Major before Minor.
type RiskFactor struct {
	Name          string   `json:"name"`
	Severity      Severity `json:"severity"`
	ObservedValue string   `json:"observed_value"`
	TargetValue   string   `json:"target_value"`
	Modifiable    bool     `json:"modifiable"`
}

// CVDScore is the output of one scoring method. Percentage and Confidence are
// optional: the traditional factor-count method carries neither.
type CVDScore struct {
	Level      RiskLevel `json:"level"`
	Percentage *float64  `json:"percentage,omitempty"`
	Confidence float64   `json:"confidence,omitempty"`
}

// ComponentScores is the per-method breakdown behind a combined assessment.
type ComponentScores struct {
	Traditional     CVDScore `json:"traditional"`
	Epidemiological CVDScore `json:"epidemiological"`
	ModelBased      CVDScore `json:"model_based"`
}

// CVDAssessment is the combined cardiovascular risk judgment.
type CVDAssessment struct {
	RiskLevel        RiskLevel       `json:"risk_level"`
	RiskPercentage   float64         `json:"risk_percentage"`
	ConfidenceScore  float64         `json:"confidence_score"`
	RiskFactors      []RiskFactor    `json:"risk_factors"`
	Recommendations  []string        `json:"recommendations"`
	ComponentScores  ComponentScores `json:"component_scores"`
	ProcessingTimeMs float64         `json:"processing_time_ms"`
}

// ModelStatus reports which prediction tiers are currently available.
type ModelStatus struct {
	ModelsLoaded           bool `json:"models_loaded"`
	RandomForestAvailable  bool `json:"random_forest_available"`
	NeuralNetworkAvailable bool `json:"neural_network_available"`
	FallbackAvailable      bool `json:"fallback_available"`
}

// CompleteAssessment bundles the general status prediction with the detailed
// CVD assessment for the unified endpoint.
type CompleteAssessment struct {
	General PredictionResult `json:"general_health_assessment"`
	CVD     CVDAssessment    `json:"comprehensive_cvd_assessment"`
	Meta    AssessmentMeta   `json:"combined_meta"`
}

// AssessmentMeta carries processing metadata for a complete assessment.
type AssessmentMeta struct {
	APIVersion            string    `json:"api_version"`
	TotalProcessingTimeMs float64   `json:"total_processing_time_ms"`
	AssessmentTimestamp   time.Time `json:"assessment_timestamp"`
	GeneralModelUsed      string    `json:"general_model_used"`
	CVDMethod             string    `json:"cvd_method"`
}

// Event Bus models
type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"` // assessment.completed, assessment.critical
	Source    string                 `json:"source"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]string      `json:"metadata,omitempty"`
}

// APIResponse is the standard response envelope.
type APIResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	ErrorCode string      `json:"error_code,omitempty"`
}
