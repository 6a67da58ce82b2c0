package assessment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/vitalsense/platform/pkg/common/logger"
	"github.com/vitalsense/platform/pkg/common/models"
	"github.com/vitalsense/platform/pkg/vitals"
)

type HTTPHandler struct {
	service *Service
	maxBody int64
}

func NewHTTPHandler(service *Service, maxBody int64) *HTTPHandler {
	return &HTTPHandler{service: service, maxBody: maxBody}
}

func (h *HTTPHandler) Register(router *mux.Router) {
	router.HandleFunc("/predict-health", h.handlePredictHealth).Methods(http.MethodPost)
	router.HandleFunc("/predict-heart-disease", h.handlePredictHeartDisease).Methods(http.MethodPost)
	router.HandleFunc("/predict-complete-health", h.handleCompleteHealth).Methods(http.MethodPost)
	router.HandleFunc("/compare-models", h.handleCompareModels).Methods(http.MethodPost)
	router.HandleFunc("/validate-input", h.handleValidateInput).Methods(http.MethodPost)
	router.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/model-info", h.handleModelInfo).Methods(http.MethodGet)
	router.HandleFunc("/assessments", h.handleRecentAssessments).Methods(http.MethodGet)
}

func (h *HTTPHandler) decodeVitals(w http.ResponseWriter, r *http.Request) (models.VitalSigns, bool) {
	if h.maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	}

	var v models.VitalSigns
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		logger.Log.WithError(err).Warn("invalid vitals payload")
		writeResponse(w, http.StatusBadRequest, models.APIResponse{
			Success:   false,
			Message:   "invalid request body",
			ErrorCode: "INVALID_REQUEST",
		})
		return models.VitalSigns{}, false
	}

	if err := vitals.Validate(v); err != nil {
		writeResponse(w, http.StatusBadRequest, models.APIResponse{
			Success:   false,
			Message:   err.Error(),
			ErrorCode: "VALIDATION_ERROR",
		})
		return models.VitalSigns{}, false
	}

	return v, true
}

func (h *HTTPHandler) handlePredictHealth(w http.ResponseWriter, r *http.Request) {
	v, ok := h.decodeVitals(w, r)
	if !ok {
		return
	}

	prediction := h.service.PredictStatus(v)
	cvdAssessment := h.service.AssessCVD(v)

	var majorFactors []string
	for _, factor := range cvdAssessment.RiskFactors {
		if factor.Severity == models.SeverityMajor {
			majorFactors = append(majorFactors, factor.Name)
		}
		if len(majorFactors) == 3 {
			break
		}
	}

	var primaryRecommendation string
	if len(cvdAssessment.Recommendations) > 0 {
		primaryRecommendation = cvdAssessment.Recommendations[0]
	}

	writeResponse(w, http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Health prediction completed successfully",
		Data: map[string]interface{}{
			"prediction": prediction,
			"heart_disease_assessment": map[string]interface{}{
				"risk_level":             cvdAssessment.RiskLevel,
				"risk_percentage":        cvdAssessment.RiskPercentage,
				"major_risk_factors":     majorFactors,
				"primary_recommendation": primaryRecommendation,
			},
		},
	})
}

func (h *HTTPHandler) handlePredictHeartDisease(w http.ResponseWriter, r *http.Request) {
	v, ok := h.decodeVitals(w, r)
	if !ok {
		return
	}

	writeResponse(w, http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Heart disease risk assessment completed",
		Data:    h.service.AssessCVD(v),
	})
}

func (h *HTTPHandler) handleCompleteHealth(w http.ResponseWriter, r *http.Request) {
	v, ok := h.decodeVitals(w, r)
	if !ok {
		return
	}

	writeResponse(w, http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Complete health assessment completed successfully",
		Data:    h.service.CompleteAssessment(r.Context(), v),
	})
}

func (h *HTTPHandler) handleCompareModels(w http.ResponseWriter, r *http.Request) {
	v, ok := h.decodeVitals(w, r)
	if !ok {
		return
	}

	writeResponse(w, http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Model comparison completed successfully",
		Data: map[string]interface{}{
			"input_data":        v,
			"model_predictions": h.service.ComparePredictions(v),
		},
	})
}

func (h *HTTPHandler) handleValidateInput(w http.ResponseWriter, r *http.Request) {
	if h.maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	}

	var v models.VitalSigns
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeResponse(w, http.StatusBadRequest, models.APIResponse{
			Success:   false,
			Message:   "invalid request body",
			ErrorCode: "INVALID_REQUEST",
		})
		return
	}

	var problems []string
	valid := true
	if err := vitals.Validate(v); err != nil {
		valid = false
		if ve, ok := err.(vitals.ValidationError); ok {
			problems = ve.Problems
		} else {
			problems = []string{err.Error()}
		}
	}

	writeResponse(w, http.StatusOK, models.APIResponse{
		Success: valid,
		Message: "Input validation completed",
		Data: map[string]interface{}{
			"is_valid":   valid,
			"errors":     problems,
			"warnings":   vitals.ClinicalWarnings(v),
			"input_data": v,
		},
	})
}

func (h *HTTPHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, http.StatusOK, models.APIResponse{
		Success: true,
		Message: "API is healthy and running",
		Data: map[string]interface{}{
			"api_status":   "healthy",
			"model_status": h.service.ModelStatus(),
			"timestamp":    time.Now().UTC(),
		},
	})
}

func (h *HTTPHandler) handleModelInfo(w http.ResponseWriter, r *http.Request) {
	status := h.service.ModelStatus()

	available := []map[string]interface{}{}
	if status.RandomForestAvailable {
		available = append(available, map[string]interface{}{
			"name":     "Ensemble",
			"type":     "decision_forest",
			"best_for": "real-time predictions with good accuracy",
		})
	}
	if status.NeuralNetworkAvailable {
		available = append(available, map[string]interface{}{
			"name":     "NeuralCompact",
			"type":     "dense_network",
			"best_for": "complex patterns and edge deployment",
		})
	}
	available = append(available, map[string]interface{}{
		"name":     "Rule-based",
		"type":     "fallback",
		"best_for": "guaranteed answers when no model artifact is loaded",
	})

	writeResponse(w, http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Model information retrieved successfully",
		Data: map[string]interface{}{
			"models_loaded":    status.ModelsLoaded,
			"available_models": available,
		},
	})
}

func (h *HTTPHandler) handleRecentAssessments(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeResponse(w, http.StatusBadRequest, models.APIResponse{
				Success:   false,
				Message:   "limit must be a non-negative integer",
				ErrorCode: "INVALID_REQUEST",
			})
			return
		}
		limit = n
	}

	logs, err := h.service.RecentAssessments(r.Context(), limit)
	if errors.Is(err, ErrHistoryDisabled) {
		writeResponse(w, http.StatusServiceUnavailable, models.APIResponse{
			Success:   false,
			Message:   "assessment history is not enabled",
			ErrorCode: "HISTORY_DISABLED",
		})
		return
	}
	if err != nil {
		logger.Log.WithError(err).Error("Failed to query assessment history")
		writeResponse(w, http.StatusInternalServerError, models.APIResponse{
			Success:   false,
			Message:   "failed to query assessment history",
			ErrorCode: "INTERNAL_ERROR",
		})
		return
	}

	writeResponse(w, http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Recent assessments retrieved successfully",
		Data: map[string]interface{}{
			"count":       len(logs),
			"assessments": logs,
		},
	})
}

func writeResponse(w http.ResponseWriter, status int, resp models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
