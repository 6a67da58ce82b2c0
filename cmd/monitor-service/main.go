package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/vitalsense/platform/pkg/assessment"
	"github.com/vitalsense/platform/pkg/common/config"
	"github.com/vitalsense/platform/pkg/common/database"
	"github.com/vitalsense/platform/pkg/common/kafka"
	"github.com/vitalsense/platform/pkg/common/logger"
	"github.com/vitalsense/platform/pkg/cvd"
	"github.com/vitalsense/platform/pkg/prediction"
	"github.com/vitalsense/platform/pkg/prediction/classifier"
	"github.com/vitalsense/platform/pkg/prediction/rules"
)

func main() {
	logger.Init()
	cfg := config.Load()

	ensemble := loadEnsemble(cfg)
	neural := loadNeural(cfg)

	thresholds, err := rules.LoadThresholds(cfg.RuleThresholds)
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to load rule thresholds, using defaults")
		thresholds = rules.DefaultThresholds()
	}
	engine := rules.NewEngine(thresholds)

	orchestrator := prediction.NewOrchestrator(ensemble, neural, engine, cfg.LatencyBudget)
	assessor := cvd.NewAssessor(orchestrator.Ensemble())

	service := assessment.NewService(orchestrator, assessor)

	if cfg.CacheEnabled {
		service.WithCache(database.GetRedis(), cfg.CacheTTL)
	}

	if cfg.AssessmentLogEnabled {
		db, err := database.GetPostgres()
		if err != nil {
			logger.Log.WithError(err).Fatal("Failed to connect to database")
		}
		repo := assessment.NewRepository(db)
		if err := repo.AutoMigrate(); err != nil {
			logger.Log.WithError(err).Fatal("Failed to migrate assessment log tables")
		}
		service.WithRepository(repo)
	}

	var producer *kafka.Producer
	if cfg.KafkaEnabled {
		producer = kafka.NewProducer(cfg.AssessmentsTopic)
		service.WithEvents(producer)
	}

	handler := assessment.NewHTTPHandler(service, cfg.MaxRequestBody)

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()
	handler.Register(api)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Log.WithFields(map[string]interface{}{
			"host": cfg.ServerHost,
			"port": cfg.ServerPort,
		}).Info("Monitor Service started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down Monitor Service...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Error("Server forced to shutdown")
	}
	if producer != nil {
		producer.Close()
	}

	logger.Log.Info("Monitor Service stopped")
}

// loadEnsemble returns nil when the artifact is absent; the orchestrator
// falls back to the next tier.
func loadEnsemble(cfg *config.Config) classifier.Classifier {
	path := filepath.Join(cfg.ModelDir, cfg.EnsembleModelFile)
	ensemble, err := classifier.LoadEnsemble(path)
	if err != nil {
		logger.Log.WithError(err).WithField("path", path).Warn("Ensemble model unavailable")
		return nil
	}
	logger.Log.WithField("path", path).Info("Ensemble model loaded")
	return ensemble
}

func loadNeural(cfg *config.Config) classifier.Classifier {
	path := filepath.Join(cfg.ModelDir, cfg.NeuralModelFile)
	neural, err := classifier.LoadNeuralCompact(path)
	if err != nil {
		logger.Log.WithError(err).WithField("path", path).Warn("Neural compact model unavailable")
		return nil
	}
	logger.Log.WithField("path", path).Info("Neural compact model loaded")
	return neural
}
