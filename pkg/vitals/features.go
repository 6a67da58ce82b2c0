package vitals

import "github.com/vitalsense/platform/pkg/common/models"

// FeatureCount is the width of the classifier input vector.
const FeatureCount = 7

// FeatureNames lists the vector slots in training order. The classifiers were
// trained against exactly this ordering; changing it silently breaks every
// model prediction, so it is a contract, not an implementation detail.
var FeatureNames = []string{
	"heart_rate",
	"temperature",
	"spo2",
	"age",
	"bp_systolic",
	"bp_diastolic",
	"cholesterol",
}

// FeatureVector encodes a vitals snapshot as the fixed-order numeric vector
// consumed by the classifiers.
func FeatureVector(v models.VitalSigns) []float64 {
	return []float64{
		v.HeartRate,
		v.Temperature,
		v.SpO2,
		float64(v.Age),
		v.BloodPressureSystolic,
		v.BloodPressureDiastolic,
		v.Cholesterol,
	}
}
