package assessment

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/vitalsense/platform/pkg/common/logger"
	"github.com/vitalsense/platform/pkg/common/models"
	"github.com/vitalsense/platform/pkg/cvd"
	"github.com/vitalsense/platform/pkg/prediction"
	"github.com/vitalsense/platform/pkg/prediction/rules"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTestService() *Service {
	engine := rules.NewEngine(rules.DefaultThresholds())
	orchestrator := prediction.NewOrchestrator(nil, nil, engine, 500*time.Millisecond)
	return NewService(orchestrator, cvd.NewAssessor(nil))
}

func testVitals() models.VitalSigns {
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

type recordingPublisher struct {
	types []string
}

func (p *recordingPublisher) PublishEvent(ctx context.Context, eventType string, source string, data map[string]interface{}) error {
	p.types = append(p.types, eventType)
	return nil
}

func TestCompleteAssessmentWithoutCollaborators(t *testing.T) {
	complete := newTestService().CompleteAssessment(context.Background(), testVitals())

	if complete.General.HealthStatus != models.StatusNormal {
		t.Fatalf("expected Normal, got %s", complete.General.HealthStatus)
	}
	if complete.General.ModelUsed != models.ModelRuleBased {
		t.Fatalf("expected rule_based, got %s", complete.General.ModelUsed)
	}
	if complete.CVD.RiskLevel != models.RiskLow {
		t.Fatalf("expected Low risk, got %s", complete.CVD.RiskLevel)
	}
	if complete.Meta.APIVersion != apiVersion {
		t.Fatalf("expected api version %s, got %s", apiVersion, complete.Meta.APIVersion)
	}
	if complete.Meta.GeneralModelUsed != models.ModelRuleBased {
		t.Fatalf("expected rule_based in meta, got %s", complete.Meta.GeneralModelUsed)
	}
}

func TestCompleteAssessmentIsDeterministic(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	first := service.CompleteAssessment(ctx, testVitals())
	second := service.CompleteAssessment(ctx, testVitals())

	if first.General.HealthStatus != second.General.HealthStatus ||
		first.CVD.RiskLevel != second.CVD.RiskLevel ||
		first.CVD.RiskPercentage != second.CVD.RiskPercentage {
		t.Fatal("expected identical assessments for identical input")
	}
}

func TestCompleteAssessmentPublishesCriticalEvent(t *testing.T) {
	service := newTestService()
	publisher := &recordingPublisher{}
	service.WithEvents(publisher)

	v := testVitals()
	v.SpO2 = 85 // critical

	service.CompleteAssessment(context.Background(), v)
	if len(publisher.types) != 1 {
		t.Fatalf("expected one event, got %d", len(publisher.types))
	}
	if publisher.types[0] != EventAssessmentCritical {
		t.Fatalf("expected %s, got %s", EventAssessmentCritical, publisher.types[0])
	}

	service.CompleteAssessment(context.Background(), testVitals())
	if publisher.types[1] != EventAssessmentCompleted {
		t.Fatalf("expected %s, got %s", EventAssessmentCompleted, publisher.types[1])
	}
}

func TestCacheKeyStableAndDistinct(t *testing.T) {
	a := cacheKey(testVitals())
	if a != cacheKey(testVitals()) {
		t.Fatal("expected stable cache key")
	}

	v := testVitals()
	v.Cholesterol = 181
	if a == cacheKey(v) {
		t.Fatal("expected distinct cache key for different vitals")
	}
}
