package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"cardioscreen/artifact"
	"cardioscreen/db"
	"cardioscreen/logger"
	"cardioscreen/predict"
	"cardioscreen/schema"
)

// RiskPredictor dispatches an encoded feature vector to a loaded model.
type RiskPredictor interface {
	Predict(features []float64, tag string) (int, float64, error)
}

var (
	riskPredictor    RiskPredictor
	availableTags    = func() []string { return nil }
	modelDescription = func(tag string) (string, bool) { return "", false }
	saveAssessment   = db.SaveAssessment
	queryAssessments = db.QueryAssessments
)

func SetPredictor(p RiskPredictor) {
	riskPredictor = p
}

func SetRegistry(registry *artifact.Registry) {
	availableTags = registry.Tags
	modelDescription = registry.Description
}

func RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", handleHealth)
	mux.HandleFunc("GET /api/fields", handleFields)
	mux.HandleFunc("GET /api/models", handleModels)
	mux.HandleFunc("GET /api/models/{tag}/info", handleModelInfo)
	mux.HandleFunc("POST /api/predict", handlePredict)
	mux.HandleFunc("GET /api/assessments", handleAssessments)
	mux.HandleFunc("GET /api/assessments/recent", handleRecentAssessments)
	mux.HandleFunc("GET /api/ws/assessments", handleAssessmentSocket)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleFields(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"fields": schema.Fields(),
	})
}

func handleModels(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"models": availableTags(),
	})
}

func handleModelInfo(w http.ResponseWriter, r *http.Request) {
	tag := r.PathValue("tag")
	description, ok := modelDescription(tag)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown model: "+tag)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"model":       tag,
		"description": description,
	})
}

type predictRequest struct {
	Model  string            `json:"model"`
	Inputs map[string]string `json:"inputs"`
}

type predictResponse struct {
	AssessmentID string `json:"assessment_id"`
	Model        string `json:"model"`
	Label        int    `json:"label"`
	Risk         string `json:"risk"`
	Message      string `json:"message"`
}

const (
	highRiskMessage = "High risk of heart disease detected. This preliminary analysis suggests increased risk; please consult a cardiologist for comprehensive evaluation."
	lowRiskMessage  = "Low risk of heart disease detected. No significant indicators found in this analysis; regular checkups are still recommended for preventive care."
)

func handlePredict(w http.ResponseWriter, r *http.Request) {
	var request predictRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if request.Model == "" {
		respondError(w, http.StatusBadRequest, "model is required")
		return
	}

	features, err := schema.Encode(request.Inputs)
	if err != nil {
		var validationErr *schema.ValidationError
		if errors.As(err, &validationErr) {
			respondJSON(w, http.StatusBadRequest, map[string]string{
				"error":  validationErr.Error(),
				"field":  validationErr.Field,
				"reason": validationErr.Reason,
			})
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if riskPredictor == nil {
		respondError(w, http.StatusServiceUnavailable, "predictor not initialized")
		return
	}

	label, margin, err := riskPredictor.Predict(features, request.Model)
	if err != nil {
		var predictionErr *predict.PredictionError
		if errors.As(err, &predictionErr) && predictionErr.Kind == predict.UnknownModel {
			respondError(w, http.StatusNotFound, "unknown model: "+request.Model)
			return
		}
		logger.S().Errorw("prediction failed", "model", request.Model, "error", err)
		respondError(w, http.StatusBadGateway, "prediction failed: "+err.Error())
		return
	}

	assessment := db.Assessment{
		ID:        uuid.NewString(),
		ModelTag:  request.Model,
		Inputs:    request.Inputs,
		Label:     label,
		Margin:    margin,
		CreatedAt: time.Now().UTC(),
	}
	if err := saveAssessment(assessment); err != nil {
		logger.S().Warnw("failed to persist assessment", "id", assessment.ID, "error", err)
	}
	recordRecent(assessment)
	broadcastAssessment(assessment)

	risk, message := "low", lowRiskMessage
	if label == 1 {
		risk, message = "high", highRiskMessage
	}

	respondJSON(w, http.StatusOK, predictResponse{
		AssessmentID: assessment.ID,
		Model:        request.Model,
		Label:        label,
		Risk:         risk,
		Message:      message,
	})
}

func handleAssessments(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	assessments, err := queryAssessments(limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"assessments": assessments,
		"count":       len(assessments),
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.S().Warnw("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
