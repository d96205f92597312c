package fleet

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/common"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/ml"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/models"
	_ "github.com/stevedicko99-pixel/Aircraft-PMP/pkg/testing"
)

func failureVerdict(aircraftID string) *ml.Verdict {
	days := 5
	return &ml.Verdict{
		AircraftID:     aircraftID,
		ComponentType:  "engine",
		Prediction:     "failure",
		Confidence:     92,
		AlertLevel:     "critical",
		DaysToFailure:  &days,
		HealthScore:    22,
		RiskScore:      88,
		TopRiskFactors: []string{"high vibration", "oil degradation"},
		Recommendation: "Inspect engine immediately",
	}
}

func noFailureVerdict(aircraftID string) *ml.Verdict {
	return &ml.Verdict{
		AircraftID:    aircraftID,
		ComponentType: "hydraulic_system",
		Prediction:    "no_failure",
		Confidence:    97,
		AlertLevel:    "none",
		HealthScore:   91,
		RiskScore:     6,
	}
}

func TestAnalyzeFailureVerdictCreatesAlert(t *testing.T) {
	ctrl, fleet, mockPredictor, mockPublisher := GetMockFleetWithMemorySqliteDialector(t)
	defer ctrl.Finish()

	seedAircraft(t, fleet, "AC-ANALYZE-1")

	req := &ml.AnalysisRequest{AircraftID: "AC-ANALYZE-1", ComponentType: "engine"}
	mockPredictor.EXPECT().Predict(req).Return(failureVerdict("AC-ANALYZE-1"), nil)
	mockPublisher.EXPECT().
		PublishToAircraft("AC-ANALYZE-1", EventAlertNew, gomock.Any()).
		Return(nil)
	mockPublisher.EXPECT().
		PublishAll(EventPredictionUpdate, gomock.Any()).
		Return(nil)

	result, err := fleet.Prediction.Analyze(req)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotZero(t, result.Prediction.ID)
	assert.Equal(t, "AC-ANALYZE-1", result.Prediction.AircraftID)
	assert.Equal(t, models.PredictionFailure, result.Prediction.Prediction)
	assert.Equal(t, 92.0, result.Prediction.Confidence)

	require.NotNil(t, result.Alert)
	assert.Equal(t, "CRITICAL: Potential engine failure", result.Alert.Title)
	assert.Equal(t, "Predicted failure within 5 days with 92% confidence", result.Alert.Message)
	assert.Equal(t, 1, result.Alert.Priority)
	assert.Equal(t, models.AlertStatusActive, result.Alert.Status)
	require.NotNil(t, result.Alert.PredictionID)
	assert.Equal(t, result.Prediction.ID, *result.Alert.PredictionID)

	var count int64
	err = fleet.Db.Conn.Model(&models.Alert{}).
		Where("aircraft_id = ?", "AC-ANALYZE-1").
		Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAnalyzeNoFailureVerdictSkipsAlert(t *testing.T) {
	ctrl, fleet, mockPredictor, mockPublisher := GetMockFleetWithMemorySqliteDialector(t)
	defer ctrl.Finish()

	seedAircraft(t, fleet, "AC-ANALYZE-2")

	req := &ml.AnalysisRequest{AircraftID: "AC-ANALYZE-2", ComponentType: "hydraulic_system"}
	mockPredictor.EXPECT().Predict(req).Return(noFailureVerdict("AC-ANALYZE-2"), nil)
	// prediction:update still goes out; alert:new must not.
	mockPublisher.EXPECT().
		PublishAll(EventPredictionUpdate, gomock.Any()).
		Return(nil)

	result, err := fleet.Prediction.Analyze(req)
	require.NoError(t, err)
	assert.Nil(t, result.Alert)

	var alertCount int64
	err = fleet.Db.Conn.Model(&models.Alert{}).
		Where("aircraft_id = ?", "AC-ANALYZE-2").
		Count(&alertCount).Error
	require.NoError(t, err)
	assert.Equal(t, int64(0), alertCount)

	var predictionCount int64
	err = fleet.Db.Conn.Model(&models.Prediction{}).
		Where("aircraft_id = ?", "AC-ANALYZE-2").
		Count(&predictionCount).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), predictionCount)
}

func TestAnalyzeAppendsAuditTrail(t *testing.T) {
	ctrl, fleet, mockPredictor, mockPublisher := GetMockFleetWithMemorySqliteDialector(t)
	defer ctrl.Finish()

	seedAircraft(t, fleet, "AC-ANALYZE-3")

	req := &ml.AnalysisRequest{AircraftID: "AC-ANALYZE-3", ComponentType: "engine"}
	mockPredictor.EXPECT().Predict(req).Return(noFailureVerdict("AC-ANALYZE-3"), nil).Times(2)
	mockPublisher.EXPECT().PublishAll(EventPredictionUpdate, gomock.Any()).Return(nil).Times(2)

	first, err := fleet.Prediction.Analyze(req)
	require.NoError(t, err)
	second, err := fleet.Prediction.Analyze(req)
	require.NoError(t, err)

	assert.NotEqual(t, first.Prediction.ID, second.Prediction.ID)
}

func TestAnalyzeUpstreamError(t *testing.T) {
	ctrl, fleet, mockPredictor, _ := GetMockFleetWithMemorySqliteDialector(t)
	defer ctrl.Finish()

	seedAircraft(t, fleet, "AC-ANALYZE-4")

	req := &ml.AnalysisRequest{AircraftID: "AC-ANALYZE-4", ComponentType: "engine"}
	mockPredictor.EXPECT().
		Predict(req).
		Return(nil, &ml.UpstreamError{Err: errors.New("connection refused")})

	result, err := fleet.Prediction.Analyze(req)
	require.Error(t, err)
	assert.Nil(t, result)

	var upstreamErr *ml.UpstreamError
	assert.True(t, errors.As(err, &upstreamErr))

	var count int64
	err = fleet.Db.Conn.Model(&models.Prediction{}).
		Where("aircraft_id = ?", "AC-ANALYZE-4").
		Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestAnalyzeOutOfRangeConfidenceFailsInsert(t *testing.T) {
	ctrl, fleet, mockPredictor, _ := GetMockFleetWithMemorySqliteDialector(t)
	defer ctrl.Finish()

	seedAircraft(t, fleet, "AC-ANALYZE-5")

	verdict := failureVerdict("AC-ANALYZE-5")
	verdict.Confidence = 150 // violates the score range constraint, must not be clamped

	req := &ml.AnalysisRequest{AircraftID: "AC-ANALYZE-5", ComponentType: "engine"}
	mockPredictor.EXPECT().Predict(req).Return(verdict, nil)

	result, err := fleet.Prediction.Analyze(req)
	require.Error(t, err)
	assert.Nil(t, result)

	var persistenceErr *PersistenceError
	require.True(t, errors.As(err, &persistenceErr))
	assert.Equal(t, "insert prediction", persistenceErr.Op)

	var count int64
	err = fleet.Db.Conn.Model(&models.Prediction{}).
		Where("aircraft_id = ?", "AC-ANALYZE-5").
		Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestAnalyzeUnknownAircraftFailsInsert(t *testing.T) {
	ctrl, fleet, mockPredictor, _ := GetMockFleetWithMemorySqliteDialector(t)
	defer ctrl.Finish()

	req := &ml.AnalysisRequest{AircraftID: "AC-NO-SUCH", ComponentType: "engine"}
	mockPredictor.EXPECT().Predict(req).Return(noFailureVerdict("AC-NO-SUCH"), nil)

	_, err := fleet.Prediction.Analyze(req)
	require.Error(t, err)

	var persistenceErr *PersistenceError
	assert.True(t, errors.As(err, &persistenceErr))
}

func TestAnalyzeAlertPriorityByLevel(t *testing.T) {
	ctrl, fleet, mockPredictor, mockPublisher := GetMockFleetWithMemorySqliteDialector(t)
	defer ctrl.Finish()

	cases := []struct {
		level    string
		priority int
	}{
		{"critical", 1},
		{"high", 2},
		{"medium", 3},
	}

	for i, c := range cases {
		aircraftID := fmt.Sprintf("AC-PRIO-%d", i)
		seedAircraft(t, fleet, aircraftID)

		verdict := failureVerdict(aircraftID)
		verdict.AlertLevel = c.level

		req := &ml.AnalysisRequest{AircraftID: aircraftID, ComponentType: "engine"}
		mockPredictor.EXPECT().Predict(req).Return(verdict, nil)
		mockPublisher.EXPECT().PublishToAircraft(aircraftID, EventAlertNew, gomock.Any()).Return(nil)
		mockPublisher.EXPECT().PublishAll(EventPredictionUpdate, gomock.Any()).Return(nil)

		result, err := fleet.Prediction.Analyze(req)
		require.NoError(t, err)
		require.NotNil(t, result.Alert)
		assert.Equal(t, c.priority, result.Alert.Priority)
	}
}

func TestAnalyzeFanOutFailureDoesNotFailPipeline(t *testing.T) {
	ctrl, fleet, mockPredictor, mockPublisher := GetMockFleetWithMemorySqliteDialector(t)
	defer ctrl.Finish()

	var logBuf bytes.Buffer
	common.SetTestCaptureLogger(&logBuf, zapcore.WarnLevel)

	seedAircraft(t, fleet, "AC-ANALYZE-6")

	req := &ml.AnalysisRequest{AircraftID: "AC-ANALYZE-6", ComponentType: "engine"}
	mockPredictor.EXPECT().Predict(req).Return(failureVerdict("AC-ANALYZE-6"), nil)
	mockPublisher.EXPECT().
		PublishToAircraft("AC-ANALYZE-6", EventAlertNew, gomock.Any()).
		Return(errors.New("socket closed"))
	mockPublisher.EXPECT().
		PublishAll(EventPredictionUpdate, gomock.Any()).
		Return(errors.New("socket closed"))

	result, err := fleet.Prediction.Analyze(req)
	require.NoError(t, err)
	require.NotNil(t, result.Alert)

	// both publish failures are logged, neither surfaces to the caller
	logs := ParseLogs(&logBuf)
	assert.Len(t, logs, 2)
}

func TestStatsSummary(t *testing.T) {
	ctrl, fleet, mockPredictor, mockPublisher := GetMockFleetWithMemorySqliteDialector(t)
	defer ctrl.Finish()

	seedAircraft(t, fleet, "AC-STATS-1")

	req := &ml.AnalysisRequest{AircraftID: "AC-STATS-1", ComponentType: "engine"}
	mockPredictor.EXPECT().Predict(req).Return(failureVerdict("AC-STATS-1"), nil)
	mockPublisher.EXPECT().PublishToAircraft("AC-STATS-1", EventAlertNew, gomock.Any()).Return(nil)
	mockPublisher.EXPECT().PublishAll(EventPredictionUpdate, gomock.Any()).Return(nil)

	_, err := fleet.Prediction.Analyze(req)
	require.NoError(t, err)

	stats, err := fleet.Prediction.StatsSummary()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.TotalPredictions, int64(1))
	assert.GreaterOrEqual(t, stats.FailurePredictions, int64(1))
	assert.GreaterOrEqual(t, stats.CriticalAlerts, int64(1))
	assert.Greater(t, stats.AverageConfidence, 0.0)
}

func TestListPredictionsFilters(t *testing.T) {
	ctrl, fleet, mockPredictor, mockPublisher := GetMockFleetWithMemorySqliteDialector(t)
	defer ctrl.Finish()

	seedAircraft(t, fleet, "AC-LIST-1")

	req := &ml.AnalysisRequest{AircraftID: "AC-LIST-1", ComponentType: "engine"}
	mockPredictor.EXPECT().Predict(req).Return(noFailureVerdict("AC-LIST-1"), nil).Times(3)
	mockPublisher.EXPECT().PublishAll(EventPredictionUpdate, gomock.Any()).Return(nil).Times(3)

	for i := 0; i < 3; i++ {
		_, err := fleet.Prediction.Analyze(req)
		require.NoError(t, err)
	}

	predictions, err := fleet.Prediction.ListPredictions(PredictionFilter{AircraftID: "AC-LIST-1", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, predictions, 2)

	all, err := fleet.Prediction.GetAircraftPredictions("AC-LIST-1", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
