package assessment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vitalsense/platform/pkg/common/logger"
	"github.com/vitalsense/platform/pkg/common/models"
	"github.com/vitalsense/platform/pkg/cvd"
	"github.com/vitalsense/platform/pkg/prediction"
)

const apiVersion = "1.0.0"

const (
	EventAssessmentCompleted = "assessment.completed"
	EventAssessmentCritical  = "assessment.critical"
)

// ErrHistoryDisabled is returned when the assessment log is not wired.
var ErrHistoryDisabled = errors.New("assessment history is not enabled")

// EventPublisher pushes assessment events to the event bus.
type EventPublisher interface {
	PublishEvent(ctx context.Context, eventType string, source string, data map[string]interface{}) error
}

// AssessmentStore persists served assessments and answers history queries.
type AssessmentStore interface {
	Record(ctx context.Context, v models.VitalSigns, complete models.CompleteAssessment) error
	Recent(ctx context.Context, limit int) ([]AssessmentLog, error)
}

// Service evaluates vitals snapshots. The cache, assessment log, and event
// publisher are optional collaborators; leaving any of them nil disables that
// concern without affecting the computed result.
type Service struct {
	orchestrator *prediction.Orchestrator
	assessor     *cvd.Assessor

	cache    *redis.Client
	cacheTTL time.Duration
	repo     AssessmentStore
	events   EventPublisher
}

func NewService(orchestrator *prediction.Orchestrator, assessor *cvd.Assessor) *Service {
	return &Service{
		orchestrator: orchestrator,
		assessor:     assessor,
	}
}

// WithCache enables Redis caching of complete assessments.
func (s *Service) WithCache(client *redis.Client, ttl time.Duration) *Service {
	s.cache = client
	s.cacheTTL = ttl
	return s
}

// WithRepository enables the Postgres assessment log.
func (s *Service) WithRepository(repo AssessmentStore) *Service {
	s.repo = repo
	return s
}

// WithEvents enables event publication.
func (s *Service) WithEvents(publisher EventPublisher) *Service {
	s.events = publisher
	return s
}

// PredictStatus runs the tiered status prediction.
func (s *Service) PredictStatus(v models.VitalSigns) models.PredictionResult {
	return s.orchestrator.PredictStatus(v)
}

// AssessCVD runs the multi-method cardiovascular risk assessment.
func (s *Service) AssessCVD(v models.VitalSigns) models.CVDAssessment {
	return s.assessor.Assess(v)
}

// ComparePredictions runs every available prediction tier.
func (s *Service) ComparePredictions(v models.VitalSigns) map[string]models.PredictionResult {
	return s.orchestrator.ComparePredictions(v)
}

// ModelStatus reports prediction tier availability.
func (s *Service) ModelStatus() models.ModelStatus {
	return s.orchestrator.ModelStatus()
}

// RecentAssessments returns the latest logged assessments, newest first.
func (s *Service) RecentAssessments(ctx context.Context, limit int) ([]AssessmentLog, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	return s.repo.Recent(ctx, limit)
}

// CompleteAssessment combines the status prediction and the CVD assessment
// into the unified result, consulting the cache first when one is wired.
func (s *Service) CompleteAssessment(ctx context.Context, v models.VitalSigns) models.CompleteAssessment {
	start := time.Now()
	key := cacheKey(v)

	if cached, ok := s.cachedAssessment(ctx, key); ok {
		return cached
	}

	general := s.orchestrator.PredictStatus(v)
	assessment := s.assessor.Assess(v)

	complete := models.CompleteAssessment{
		General: general,
		CVD:     assessment,
		Meta: models.AssessmentMeta{
			APIVersion:            apiVersion,
			TotalProcessingTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
			AssessmentTimestamp:   time.Now().UTC(),
			GeneralModelUsed:      general.ModelUsed,
			CVDMethod:             "multi_method_combined",
		},
	}

	s.storeAssessment(ctx, key, complete)
	s.recordAssessment(ctx, v, complete)
	s.publishAssessment(ctx, v, complete)

	return complete
}

func cacheKey(v models.VitalSigns) string {
	payload := fmt.Sprintf("%.2f|%.2f|%.2f|%d|%.2f|%.2f|%.2f",
		v.HeartRate, v.Temperature, v.SpO2, v.Age,
		v.BloodPressureSystolic, v.BloodPressureDiastolic, v.Cholesterol)
	sum := sha256.Sum256([]byte(payload))
	return "assessment:" + hex.EncodeToString(sum[:16])
}

func (s *Service) cachedAssessment(ctx context.Context, key string) (models.CompleteAssessment, bool) {
	if s.cache == nil {
		return models.CompleteAssessment{}, false
	}

	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.WithError(err).Warn("Assessment cache read failed")
		}
		return models.CompleteAssessment{}, false
	}

	var cached models.CompleteAssessment
	if err := json.Unmarshal(raw, &cached); err != nil {
		logger.Log.WithError(err).Warn("Discarding undecodable cached assessment")
		return models.CompleteAssessment{}, false
	}
	return cached, true
}

func (s *Service) storeAssessment(ctx context.Context, key string, complete models.CompleteAssessment) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(complete)
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to marshal assessment for cache")
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
		logger.Log.WithError(err).Warn("Assessment cache write failed")
	}
}

func (s *Service) recordAssessment(ctx context.Context, v models.VitalSigns, complete models.CompleteAssessment) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Record(ctx, v, complete); err != nil {
		logger.Log.WithError(err).Error("Failed to record assessment")
	}
}

func (s *Service) publishAssessment(ctx context.Context, v models.VitalSigns, complete models.CompleteAssessment) {
	if s.events == nil {
		return
	}

	eventType := EventAssessmentCompleted
	if complete.General.HealthStatus.Rank() >= models.StatusCritical.Rank() {
		eventType = EventAssessmentCritical
	}

	data := map[string]interface{}{
		"health_status":    complete.General.HealthStatus,
		"confidence_score": complete.General.ConfidenceScore,
		"model_used":       complete.General.ModelUsed,
		"risk_level":       complete.CVD.RiskLevel,
		"risk_percentage":  complete.CVD.RiskPercentage,
		"age":              v.Age,
	}
	if err := s.events.PublishEvent(ctx, eventType, "monitor-service", data); err != nil {
		logger.Log.WithError(err).Warn("Failed to publish assessment event")
	}
}
