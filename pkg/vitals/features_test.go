package vitals

import (
	"testing"

	"github.com/vitalsense/platform/pkg/common/models"
)

func TestFeatureVectorOrdering(t *testing.T) {
	v := models.VitalSigns{
		HeartRate:              75,
		Temperature:            36.8,
		SpO2:                   98,
		Age:                    30,
		BloodPressureSystolic:  115,
		BloodPressureDiastolic: 75,
		Cholesterol:            180,
	}

	features := FeatureVector(v)
	if len(features) != FeatureCount {
		t.Fatalf("expected %d features, got %d", FeatureCount, len(features))
	}

	expected := []float64{75, 36.8, 98, 30, 115, 75, 180}
	for i, want := range expected {
		if features[i] != want {
			t.Fatalf("feature %s: expected %v, got %v", FeatureNames[i], want, features[i])
		}
	}
}

func TestFeatureNamesMatchVectorWidth(t *testing.T) {
	if len(FeatureNames) != FeatureCount {
		t.Fatalf("expected %d feature names, got %d", FeatureCount, len(FeatureNames))
	}
}
