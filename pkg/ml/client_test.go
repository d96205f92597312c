package ml

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "github.com/stevedicko99-pixel/Aircraft-PMP/pkg/testing"
)

func TestPredict(t *testing.T) {
	days := 9
	verdict := Verdict{
		AircraftID:     "AC-ML-1",
		ComponentType:  "engine",
		Prediction:     "failure",
		Confidence:     81,
		AlertLevel:     "high",
		DaysToFailure:  &days,
		HealthScore:    40,
		RiskScore:      70,
		TopRiskFactors: []string{"temperature trend"},
		Recommendation: "Schedule borescope inspection",
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/predict", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req AnalysisRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "AC-ML-1", req.AircraftID)

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    verdict,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	got, err := client.Predict(&AnalysisRequest{
		AircraftID:    "AC-ML-1",
		ComponentType: "engine",
		HealthScore:   40,
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "failure", got.Prediction)
	assert.Equal(t, "high", got.AlertLevel)
	require.NotNil(t, got.DaysToFailure)
	assert.Equal(t, 9, *got.DaysToFailure)
}

func TestPredictServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "model not loaded",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	got, err := client.Predict(&AnalysisRequest{AircraftID: "AC-ML-2"})
	require.Error(t, err)
	assert.Nil(t, got)

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestPredictMalformedVerdict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// missing prediction and alert_level
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"aircraft_id":    "AC-ML-3",
				"component_type": "engine",
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Predict(&AnalysisRequest{AircraftID: "AC-ML-3"})
	require.Error(t, err)

	var upstreamErr *UpstreamError
	assert.True(t, errors.As(err, &upstreamErr))
}

func TestPredictMissingDataEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Predict(&AnalysisRequest{AircraftID: "AC-ML-4"})
	require.Error(t, err)

	var upstreamErr *UpstreamError
	assert.True(t, errors.As(err, &upstreamErr))
}

func TestPredictUnreachableService(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")
	_, err := client.Predict(&AnalysisRequest{AircraftID: "AC-ML-5"})
	require.Error(t, err)

	var upstreamErr *UpstreamError
	assert.True(t, errors.As(err, &upstreamErr))
}

func TestPredictOutOfRangeScoresPassThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"aircraft_id":    "AC-ML-6",
				"component_type": "engine",
				"prediction":     "failure",
				"confidence":     150,
				"alert_level":    "critical",
				"risk_score":     -10,
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	got, err := client.Predict(&AnalysisRequest{AircraftID: "AC-ML-6"})
	require.NoError(t, err)

	// scores are forwarded untouched, range enforcement happens downstream
	assert.Equal(t, 150.0, got.Confidence)
	assert.Equal(t, -10.0, got.RiskScore)
}
