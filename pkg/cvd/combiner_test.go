package cvd

import (
	"testing"

	"github.com/vitalsense/platform/pkg/common/models"
)

func pct(v float64) *float64 { return &v }

func TestCombineWeightedLevels(t *testing.T) {
	cases := []struct {
		name     string
		scores   models.ComponentScores
		expected models.RiskLevel
	}{
		{
			name: "all low",
			scores: models.ComponentScores{
				Traditional:     models.CVDScore{Level: models.RiskLow},
				Epidemiological: models.CVDScore{Level: models.RiskLow},
				ModelBased:      models.CVDScore{Level: models.RiskLow},
			},
			expected: models.RiskLow,
		},
		{
			name: "epidemiological dominates",
			scores: models.ComponentScores{
				Traditional:     models.CVDScore{Level: models.RiskLow},
				Epidemiological: models.CVDScore{Level: models.RiskHigh},
				ModelBased:      models.CVDScore{Level: models.RiskLow},
			},
			// 0.3*1 + 0.4*3 + 0.3*1 = 1.8 -> Moderate
			expected: models.RiskModerate,
		},
		{
			name: "very high and high mix",
			scores: models.ComponentScores{
				Traditional:     models.CVDScore{Level: models.RiskVeryHigh},
				Epidemiological: models.CVDScore{Level: models.RiskHigh},
				ModelBased:      models.CVDScore{Level: models.RiskHigh},
			},
			// 0.3*4 + 0.4*3 + 0.3*3 = 3.3 -> High
			expected: models.RiskHigh,
		},
		{
			name: "all very high",
			scores: models.ComponentScores{
				Traditional:     models.CVDScore{Level: models.RiskVeryHigh},
				Epidemiological: models.CVDScore{Level: models.RiskVeryHigh},
				ModelBased:      models.CVDScore{Level: models.RiskVeryHigh},
			},
			expected: models.RiskVeryHigh,
		},
	}

	for _, tc := range cases {
		level, _, _ := Combine(tc.scores)
		if level != tc.expected {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.expected, level)
		}
	}
}

func TestCombinePercentageAveragesAvailableMethods(t *testing.T) {
	scores := models.ComponentScores{
		Traditional:     models.CVDScore{Level: models.RiskModerate},
		Epidemiological: models.CVDScore{Level: models.RiskModerate, Percentage: pct(20)},
		ModelBased:      models.CVDScore{Level: models.RiskModerate, Percentage: pct(10)},
	}
	_, percentage, _ := Combine(scores)
	if percentage != 15 {
		t.Fatalf("expected 15, got %v", percentage)
	}
}

func TestCombinePercentageDefaultsWhenNonePresent(t *testing.T) {
	scores := models.ComponentScores{
		Traditional:     models.CVDScore{Level: models.RiskLow},
		Epidemiological: models.CVDScore{Level: models.RiskLow},
		ModelBased:      models.CVDScore{Level: models.RiskLow},
	}
	_, percentage, _ := Combine(scores)
	if percentage != 10.0 {
		t.Fatalf("expected default 10.0, got %v", percentage)
	}
}

func TestCombineConfidence(t *testing.T) {
	scores := models.ComponentScores{
		ModelBased: models.CVDScore{Level: models.RiskLow, Confidence: 0.9},
	}
	if _, _, confidence := Combine(scores); confidence != 0.9 {
		t.Fatalf("expected model-based confidence 0.9, got %v", confidence)
	}

	scores.ModelBased.Confidence = 0
	if _, _, confidence := Combine(scores); confidence != 0.8 {
		t.Fatalf("expected default confidence 0.8, got %v", confidence)
	}
}
