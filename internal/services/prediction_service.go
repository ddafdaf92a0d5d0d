package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/hearlab/hearing-loss-be/internal/models"
	"github.com/rs/zerolog/log"
)

// ErrUpstreamPrediction covers every failure mode of the prediction call:
// transport errors, non-2xx statuses and undecodable bodies. The cause is
// logged but never surfaced to the caller.
var ErrUpstreamPrediction = errors.New("upstream prediction service failure")

// PredictionServiceProvider defines the interface for prediction services.
type PredictionServiceProvider interface {
	GetPrediction(ctx context.Context, m models.ClinicalMeasurement) (models.PredictionOutcome, error)
}

// PredictionService forwards clinical measurements to the external ML model
// endpoint and relays its response.
type PredictionService struct {
	client   *http.Client
	modelURL string
}

// NewPredictionService creates a new PredictionService. A nil client falls
// back to http.DefaultClient.
func NewPredictionService(client *http.Client, modelURL string) *PredictionService {
	if client == nil {
		client = http.DefaultClient
	}
	return &PredictionService{client: client, modelURL: modelURL}
}

// GetPrediction POSTs the measurement to the model endpoint and parses the
// outcome. The serialized payload always carries the optional advanced
// fields, zeroed when the client omitted them.
func (s *PredictionService) GetPrediction(ctx context.Context, m models.ClinicalMeasurement) (models.PredictionOutcome, error) {
	body, err := json.Marshal(m)
	if err != nil {
		return models.PredictionOutcome{}, fmt.Errorf("failed to encode measurement: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.modelURL, bytes.NewReader(body))
	if err != nil {
		return models.PredictionOutcome{}, fmt.Errorf("failed to build prediction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", s.modelURL).Msg("Prediction service unreachable")
		return models.PredictionOutcome{}, ErrUpstreamPrediction
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Int("status", resp.StatusCode).Str("url", s.modelURL).Msg("Prediction service returned an error status")
		return models.PredictionOutcome{}, ErrUpstreamPrediction
	}

	var outcome models.PredictionOutcome
	if err := json.NewDecoder(resp.Body).Decode(&outcome); err != nil {
		log.Error().Err(err).Str("url", s.modelURL).Msg("Failed to decode prediction response")
		return models.PredictionOutcome{}, ErrUpstreamPrediction
	}
	return outcome, nil
}
