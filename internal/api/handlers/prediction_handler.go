package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hearlab/hearing-loss-be/internal/models"
	"github.com/hearlab/hearing-loss-be/internal/services"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// PredictionHandler handles HTTP requests for hearing-loss predictions.
type PredictionHandler struct {
	service services.PredictionServiceProvider
}

// NewPredictionHandler creates a new PredictionHandler.
func NewPredictionHandler(service services.PredictionServiceProvider) *PredictionHandler {
	return &PredictionHandler{service: service}
}

// Predict forwards a clinical measurement to the prediction service and
// relays the outcome. Why an upstream call failed is deliberately not
// disclosed to the caller; the response is a bare 500.
func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var measurement models.ClinicalMeasurement
	if err := json.NewDecoder(r.Body).Decode(&measurement); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Omitted optional fields have already defaulted to zero on decode
	if err := validate.Struct(measurement); err != nil {
		log.Warn().Err(err).Msg("Rejected out-of-range measurement")
		http.Error(w, "Invalid measurement values", http.StatusBadRequest)
		return
	}

	outcome, err := h.service.GetPrediction(r.Context(), measurement)
	if err != nil {
		log.Error().Err(err).Msg("Prediction request failed")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(outcome)
}
