package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hearlab/hearing-loss-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A measurement as the frontend submits it, with all optional advanced
// fields omitted.
const measurementWithoutAdvancedFields = `{
	"age": 54, "sex": 1,
	"genetic_history": 0, "noise_exposure_history": 1,
	"tinnitus": 1, "vertigo_dizziness": 0, "hearing_difficulty_in_noise": 1,
	"ac_l_250": 20, "ac_l_500": 25, "ac_l_1000": 30, "ac_l_2000": 40, "ac_l_4000": 55, "ac_l_8000": 60,
	"bc_l_500": 20, "bc_l_1000": 25, "bc_l_2000": 35, "bc_l_4000": 50,
	"srt_l": 30, "wrs_l": 88, "tymp_type_l": "A",
	"ac_r_250": 15, "ac_r_500": 20, "ac_r_1000": 25, "ac_r_2000": 30, "ac_r_4000": 45, "ac_r_8000": 50,
	"bc_r_500": 15, "bc_r_1000": 20, "bc_r_2000": 25, "bc_r_4000": 40,
	"srt_r": 25, "wrs_r": 92, "tymp_type_r": "A"
}`

func sampleOutcome() models.PredictionOutcome {
	return models.PredictionOutcome{
		HearingLoss:         "Yes",
		HearingLossType:     "Sensorineural",
		HearingLossSeverity: "Moderate",
		ConfidenceScores: models.ConfidenceScores{
			HearingLoss:         0.97,
			HearingLossType:     0.91,
			HearingLossSeverity: 0.84,
		},
		ClinicalSummary: models.ClinicalSummary{
			PTALeft:         37.5,
			PTARight:        30.0,
			Asymmetry:       7.5,
			AirBoneGapLeft:  5.0,
			AirBoneGapRight: 5.0,
			ClinicalNotes:   []string{"High-frequency loss pattern", "Recommend ABR follow-up"},
		},
	}
}

func decodeMeasurement(t *testing.T, raw string) models.ClinicalMeasurement {
	t.Helper()
	var m models.ClinicalMeasurement
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestGetPredictionRoundTrip(t *testing.T) {
	var received map[string]interface{}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sampleOutcome())
	}))
	defer upstream.Close()

	svc := NewPredictionService(upstream.Client(), upstream.URL)
	outcome, err := svc.GetPrediction(context.Background(), decodeMeasurement(t, measurementWithoutAdvancedFields))
	require.NoError(t, err)

	assert.Equal(t, sampleOutcome(), outcome)
	assert.Equal(t, float64(54), received["age"])
	assert.Equal(t, float64(20), received["ac_l_250"])
	assert.Equal(t, "A", received["tymp_type_r"])
}

func TestGetPredictionForwardsDefaultsForOmittedFields(t *testing.T) {
	var received map[string]interface{}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(sampleOutcome())
	}))
	defer upstream.Close()

	svc := NewPredictionService(upstream.Client(), upstream.URL)
	_, err := svc.GetPrediction(context.Background(), decodeMeasurement(t, measurementWithoutAdvancedFields))
	require.NoError(t, err)

	// The omitted advanced fields must still be on the wire, zeroed
	for _, field := range []string{
		"oae_500_present", "oae_1000_present", "oae_4000_present",
		"abr_wave_i_latency", "abr_wave_iii_latency", "abr_wave_v_latency",
		"abr_wave_v_absent",
	} {
		value, present := received[field]
		require.True(t, present, "field %s missing from forwarded payload", field)
		assert.Equal(t, float64(0), value, "field %s", field)
	}
}

func TestGetPredictionUpstreamErrorStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "validation failed", http.StatusUnprocessableEntity)
	}))
	defer upstream.Close()

	svc := NewPredictionService(upstream.Client(), upstream.URL)
	_, err := svc.GetPrediction(context.Background(), decodeMeasurement(t, measurementWithoutAdvancedFields))
	assert.ErrorIs(t, err, ErrUpstreamPrediction)
}

func TestGetPredictionMalformedResponse(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer upstream.Close()

	svc := NewPredictionService(upstream.Client(), upstream.URL)
	_, err := svc.GetPrediction(context.Background(), decodeMeasurement(t, measurementWithoutAdvancedFields))
	assert.ErrorIs(t, err, ErrUpstreamPrediction)
}

func TestGetPredictionUpstreamUnreachable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := upstream.URL
	upstream.Close()

	svc := NewPredictionService(nil, url)
	_, err := svc.GetPrediction(context.Background(), decodeMeasurement(t, measurementWithoutAdvancedFields))
	assert.ErrorIs(t, err, ErrUpstreamPrediction)
}
