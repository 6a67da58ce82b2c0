package prediction

import (
	"errors"
	"time"

	"github.com/vitalsense/platform/pkg/common/logger"
	"github.com/vitalsense/platform/pkg/common/models"
	"github.com/vitalsense/platform/pkg/prediction/classifier"
	"github.com/vitalsense/platform/pkg/prediction/rules"
	"github.com/vitalsense/platform/pkg/vitals"
)

var statusByClass = map[int]models.HealthStatus{
	0: models.StatusNormal,
	1: models.StatusWarning,
	2: models.StatusCritical,
}

var actionByStatus = map[models.HealthStatus]string{
	models.StatusNormal:   "Normal – no action needed",
	models.StatusWarning:  "Monitor closely and consider consulting a doctor if symptoms persist",
	models.StatusCritical: "Seek immediate medical attention",
}

// Orchestrator selects among the prediction tiers: ensemble first, then the
// compact neural classifier, then the rule engine. Every evaluation produces
// a result; classifier-tier failures are absorbed, never propagated.
type Orchestrator struct {
	ensemble      classifier.Classifier
	neural        classifier.Classifier
	rules         *rules.Engine
	latencyBudget time.Duration
}

// NewOrchestrator wires the tiers. ensemble and neural may be nil when their
// artifacts are not loaded; engine must not be nil.
func NewOrchestrator(ensemble, neural classifier.Classifier, engine *rules.Engine, latencyBudget time.Duration) *Orchestrator {
	if latencyBudget <= 0 {
		latencyBudget = 500 * time.Millisecond
	}
	return &Orchestrator{
		ensemble:      ensemble,
		neural:        neural,
		rules:         engine,
		latencyBudget: latencyBudget,
	}
}

// PredictStatus classifies a vitals snapshot. ModelUsed names the tier that
// actually produced the answer.
func (o *Orchestrator) PredictStatus(v models.VitalSigns) models.PredictionResult {
	start := time.Now()
	features := vitals.FeatureVector(v)

	result, ok := o.tryClassifier(o.ensemble, models.ModelRandomForest, features)
	if !ok {
		result, ok = o.tryClassifier(o.neural, models.ModelNeuralNetwork, features)
	}
	if !ok {
		result = o.rules.Evaluate(v)
	}

	elapsed := time.Since(start)
	result.ElapsedTimeMs = float64(elapsed.Microseconds()) / 1000.0

	if elapsed > o.latencyBudget {
		logger.Log.WithFields(map[string]interface{}{
			"elapsed_ms": result.ElapsedTimeMs,
			"budget_ms":  o.latencyBudget.Milliseconds(),
			"model_used": result.ModelUsed,
		}).Warn("Prediction exceeded latency budget")
	}

	return result
}

func (o *Orchestrator) tryClassifier(c classifier.Classifier, modelName string, features []float64) (models.PredictionResult, bool) {
	if c == nil {
		return models.PredictionResult{}, false
	}

	class, confidence, err := c.Predict(features)
	if err != nil {
		if !errors.Is(err, classifier.ErrNotLoaded) {
			logger.Log.WithError(err).WithField("model", modelName).Warn("Classifier failed, advancing to next tier")
		}
		return models.PredictionResult{}, false
	}

	status, known := statusByClass[class]
	if !known {
		status = models.StatusNormal
	}

	return models.PredictionResult{
		HealthStatus:    status,
		ConfidenceScore: confidence,
		SuggestedAction: actionByStatus[status],
		ModelUsed:       modelName,
	}, true
}

// ComparePredictions runs every available tier against the same snapshot and
// returns the per-tier results. The rule-based entry is always present.
func (o *Orchestrator) ComparePredictions(v models.VitalSigns) map[string]models.PredictionResult {
	features := vitals.FeatureVector(v)
	results := make(map[string]models.PredictionResult)

	start := time.Now()
	ruleResult := o.rules.Evaluate(v)
	ruleResult.ElapsedTimeMs = float64(time.Since(start).Microseconds()) / 1000.0
	results[models.ModelRuleBased] = ruleResult

	for _, tier := range []struct {
		c    classifier.Classifier
		name string
	}{
		{o.ensemble, models.ModelRandomForest},
		{o.neural, models.ModelNeuralNetwork},
	} {
		start := time.Now()
		result, ok := o.tryClassifier(tier.c, tier.name, features)
		if !ok {
			continue
		}
		result.ElapsedTimeMs = float64(time.Since(start).Microseconds()) / 1000.0
		results[tier.name] = result
	}

	return results
}

// ModelStatus reports tier availability. The rule-based fallback is always
// available.
func (o *Orchestrator) ModelStatus() models.ModelStatus {
	return models.ModelStatus{
		ModelsLoaded:           o.ensemble != nil || o.neural != nil,
		RandomForestAvailable:  o.ensemble != nil,
		NeuralNetworkAvailable: o.neural != nil,
		FallbackAvailable:      true,
	}
}

// Ensemble exposes the loaded ensemble classifier for the model-based CVD
// scorer, which reuses the general health classifier as its risk proxy.
func (o *Orchestrator) Ensemble() classifier.Classifier {
	return o.ensemble
}
