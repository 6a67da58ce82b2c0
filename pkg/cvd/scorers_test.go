package cvd

import (
	"errors"
	"testing"

	"github.com/vitalsense/platform/pkg/common/models"
)

func midrangeVitals() models.VitalSigns {
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

func highRiskVitals() models.VitalSigns {
	return models.VitalSigns{
		HeartRate:              110,
		Temperature:            36.8,
		SpO2:                   92,
		Age:                    70,
		BloodPressureSystolic:  160,
		BloodPressureDiastolic: 95,
		Cholesterol:            280,
	}
}

func TestTraditionalPointsAccumulation(t *testing.T) {
	// age 70 (+3), hypertension (+3), cholesterol 280 (+3), HR 110 (+2),
	// SpO2 92 (+2).
	if points := TraditionalPoints(highRiskVitals()); points != 13 {
		t.Fatalf("expected 13 points, got %d", points)
	}
	if points := TraditionalPoints(midrangeVitals()); points != 0 {
		t.Fatalf("expected 0 points, got %d", points)
	}
}

func TestTraditionalLevels(t *testing.T) {
	if score := ScoreTraditional(highRiskVitals()); score.Level != models.RiskVeryHigh {
		t.Fatalf("expected Very High, got %s", score.Level)
	}
	if score := ScoreTraditional(midrangeVitals()); score.Level != models.RiskLow {
		t.Fatalf("expected Low, got %s", score.Level)
	}

	v := midrangeVitals()
	v.Age = 50                    // +1
	v.BloodPressureSystolic = 132 // +2
	v.Cholesterol = 210           // +2
	if score := ScoreTraditional(v); score.Level != models.RiskModerate {
		t.Fatalf("expected Moderate at 5 points, got %s", score.Level)
	}
}

func TestTraditionalCarriesNoPercentage(t *testing.T) {
	if score := ScoreTraditional(highRiskVitals()); score.Percentage != nil {
		t.Fatal("traditional score must not carry a percentage")
	}
}

func TestTraditionalMonotonicInSystolicBP(t *testing.T) {
	v := midrangeVitals()
	var previous int
	for _, systolic := range []float64{115, 145, 165} {
		v.BloodPressureSystolic = systolic
		points := TraditionalPoints(v)
		if points < previous {
			t.Fatalf("points decreased from %d to %d at systolic %v", previous, points, systolic)
		}
		previous = points
	}
}

func TestEpidemiologicalClampAndLevels(t *testing.T) {
	low := ScoreEpidemiological(midrangeVitals())
	if low.Percentage == nil {
		t.Fatal("expected a percentage")
	}
	if *low.Percentage < 1 || *low.Percentage > 30 {
		t.Fatalf("percentage %v outside clamp [1,30]", *low.Percentage)
	}
	if low.Level != models.RiskLow {
		t.Fatalf("expected Low for midrange vitals, got %s", low.Level)
	}

	high := ScoreEpidemiological(highRiskVitals())
	if *high.Percentage < 20 {
		t.Fatalf("expected at least 20%% for high-risk vitals, got %v", *high.Percentage)
	}
	if high.Level != models.RiskHigh {
		t.Fatalf("expected High, got %s", high.Level)
	}
}

func TestEpidemiologicalYoungHealthyFloorsAtOne(t *testing.T) {
	v := midrangeVitals()
	v.Age = 1
	v.Cholesterol = 100
	v.BloodPressureSystolic = 90

	score := ScoreEpidemiological(v)
	if *score.Percentage != 1.0 {
		t.Fatalf("expected floor of 1.0, got %v", *score.Percentage)
	}
}

type fixedClassifier struct {
	class      int
	confidence float64
	err        error
}

func (f *fixedClassifier) Name() string { return "fixed" }

func (f *fixedClassifier) Predict(features []float64) (int, float64, error) {
	if f.err != nil {
		return 0, 0, f.err
	}
	return f.class, f.confidence, nil
}

func TestModelBasedUsesClassifierMapping(t *testing.T) {
	cases := []struct {
		class      int
		percentage float64
		level      models.RiskLevel
	}{
		{0, 5, models.RiskLow},
		{1, 15, models.RiskModerate},
		{2, 25, models.RiskHigh},
	}

	for _, tc := range cases {
		score := ScoreModelBased(midrangeVitals(), &fixedClassifier{class: tc.class, confidence: 0.9})
		if score.Level != tc.level {
			t.Fatalf("class %d: expected %s, got %s", tc.class, tc.level, score.Level)
		}
		if score.Percentage == nil || *score.Percentage != tc.percentage {
			t.Fatalf("class %d: expected %v%%, got %v", tc.class, tc.percentage, score.Percentage)
		}
		if score.Confidence != 0.9 {
			t.Fatalf("expected classifier confidence, got %v", score.Confidence)
		}
	}
}

func TestModelBasedHeuristicWhenUnavailable(t *testing.T) {
	score := ScoreModelBased(highRiskVitals(), nil)
	// BP+cholesterol pattern (+4), age>=50 with four markers (+6), tachycardia
	// with low SpO2 (+3): 13 points, capped at 30%.
	if score.Percentage == nil || *score.Percentage != 30 {
		t.Fatalf("expected capped 30%%, got %v", score.Percentage)
	}
	if score.Level != models.RiskHigh {
		t.Fatalf("expected High, got %s", score.Level)
	}
	if score.Confidence != 0.75 {
		t.Fatalf("expected heuristic confidence 0.75, got %v", score.Confidence)
	}
}

func TestModelBasedHeuristicOnClassifierError(t *testing.T) {
	failing := &fixedClassifier{err: errors.New("inference failed")}
	score := ScoreModelBased(midrangeVitals(), failing)
	if score.Confidence != 0.75 {
		t.Fatalf("expected heuristic fallback, got confidence %v", score.Confidence)
	}
}

func TestModelBasedHeuristicLowForHealthyVitals(t *testing.T) {
	score := ScoreModelBased(midrangeVitals(), nil)
	if score.Level != models.RiskLow {
		t.Fatalf("expected Low, got %s", score.Level)
	}
	if *score.Percentage != 0 {
		t.Fatalf("expected 0%%, got %v", *score.Percentage)
	}
}
