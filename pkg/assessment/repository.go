package assessment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vitalsense/platform/pkg/common/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AssessmentLog is the persistence model for served assessments.
type AssessmentLog struct {
	ID             uuid.UUID         `gorm:"primaryKey;column:id"`
	Vitals         datatypes.JSONMap `gorm:"column:vitals"`
	HealthStatus   string            `gorm:"column:health_status"`
	ModelUsed      string            `gorm:"column:model_used"`
	RiskLevel      string            `gorm:"column:risk_level"`
	RiskPercentage float64           `gorm:"column:risk_percentage"`
	Confidence     float64           `gorm:"column:confidence"`
	ProcessingMs   float64           `gorm:"column:processing_ms"`
	CreatedAt      time.Time         `gorm:"column:created_at"`
}

// TableName overrides gorm naming.
func (AssessmentLog) TableName() string {
	return "assessment_logs"
}

// Repository handles assessment log persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(&AssessmentLog{})
}

func (r *Repository) Record(ctx context.Context, v models.VitalSigns, complete models.CompleteAssessment) error {
	log := AssessmentLog{
		ID: uuid.New(),
		Vitals: datatypes.JSONMap{
			"heart_rate":               v.HeartRate,
			"temperature":              v.Temperature,
			"spo2":                     v.SpO2,
			"age":                      v.Age,
			"blood_pressure_systolic":  v.BloodPressureSystolic,
			"blood_pressure_diastolic": v.BloodPressureDiastolic,
			"cholesterol":              v.Cholesterol,
		},
		HealthStatus:   string(complete.General.HealthStatus),
		ModelUsed:      complete.General.ModelUsed,
		RiskLevel:      string(complete.CVD.RiskLevel),
		RiskPercentage: complete.CVD.RiskPercentage,
		Confidence:     complete.General.ConfidenceScore,
		ProcessingMs:   complete.Meta.TotalProcessingTimeMs,
		CreatedAt:      time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(&log).Error
}

// Recent returns the most recent assessment logs up to limit.
func (r *Repository) Recent(ctx context.Context, limit int) ([]AssessmentLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var logs []AssessmentLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
