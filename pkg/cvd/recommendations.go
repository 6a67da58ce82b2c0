package cvd

import "github.com/vitalsense/platform/pkg/common/models"

const maxRecommendations = 6

var factorRecommendations = map[string][]string{
	FactorHypertension: {
		"Monitor blood pressure daily and keep a log for your care team",
		"Reduce sodium intake to under 2,300 mg per day",
		"Review blood pressure medication options with your doctor",
	},
	FactorHighCholesterol: {
		"Adopt a heart-healthy diet low in saturated fat",
		"Increase aerobic exercise to at least 150 minutes per week",
		"Discuss statin therapy with your doctor",
	},
	FactorElevatedHR: {
		"Practice stress reduction techniques such as meditation or breathing exercises",
		"Limit caffeine and other stimulants",
	},
}

var generalRecommendations = []string{
	"Avoid smoking and limit alcohol consumption",
	"Maintain a healthy weight",
	"Get 7-9 hours of quality sleep nightly",
}

// Recommendations produces the ordered, capped recommendation list:
// tier-conditioned entries first, then factor-specific, then general
// lifestyle advice for any non-Low level. Generation order is significant;
// truncation keeps the first six entries.
func Recommendations(level models.RiskLevel, factors []models.RiskFactor) []string {
	var recs []string

	switch level {
	case models.RiskHigh, models.RiskVeryHigh:
		recs = append(recs,
			"Schedule an urgent consultation with a cardiologist",
			"Begin comprehensive cardiovascular risk reduction under medical supervision",
		)
	case models.RiskModerate:
		recs = append(recs, "Discuss your cardiovascular risk with your primary care physician")
	}

	for _, factor := range factors {
		recs = append(recs, factorRecommendations[factor.Name]...)
	}

	if level != models.RiskLow {
		recs = append(recs, generalRecommendations...)
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
