package fleet

import (
	"time"

	"go.uber.org/zap"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/common"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/ml"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/models"
)

type AnalysisResult struct {
	Prediction models.Prediction `json:"prediction"`
	MLAnalysis *ml.Verdict       `json:"ml_analysis"`
	Alert      *models.Alert     `json:"alert,omitempty"`
}

type PredictionFilter struct {
	AircraftID string
	AlertLevel string
	Limit      int
}

type PredictionStats struct {
	TotalPredictions     int64   `json:"total_predictions"`
	FailurePredictions   int64   `json:"failure_predictions"`
	CriticalAlerts       int64   `json:"critical_alerts"`
	HighAlerts           int64   `json:"high_alerts"`
	RecentPredictions24h int64   `json:"recent_predictions_24h"`
	AverageConfidence    float64 `json:"average_confidence"`
}

// analyze runs the pipeline: inference call, prediction insert, alert
// derivation, fan-out.
func (f *Fleet) analyze(req *ml.AnalysisRequest) (*AnalysisResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetPrediction),
	)

	verdict, err := f.Predictor.Predict(req)
	if err != nil {
		return nil, err
	}

	prediction := models.Prediction{
		AircraftID:     verdict.AircraftID,
		ComponentType:  models.ComponentType(verdict.ComponentType),
		Prediction:     models.PredictionLabel(verdict.Prediction),
		Confidence:     verdict.Confidence,
		AlertLevel:     models.AlertLevel(verdict.AlertLevel),
		DaysToFailure:  verdict.DaysToFailure,
		HealthScore:    verdict.HealthScore,
		RiskScore:      verdict.RiskScore,
		RiskFactors:    verdict.TopRiskFactors,
		Recommendation: verdict.Recommendation,
		SensorDataID:   req.SensorDataID,
		Timestamp:      time.Now(),
	}

	if err := f.Db.Conn.Create(&prediction).Error; err != nil {
		return nil, &PersistenceError{Op: "insert prediction", Err: err}
	}

	logger.Info("Prediction saved", zap.Reflect("prediction", prediction))

	// The two inserts are not wrapped in a transaction: a failing alert
	// insert leaves the prediction row behind and surfaces the error.
	var alert *models.Alert
	if verdict.Prediction == string(models.PredictionFailure) &&
		verdict.AlertLevel != string(models.AlertLevelNone) {
		alert = DeriveAlert(verdict, prediction.ID)

		if err := f.Db.Conn.Create(alert).Error; err != nil {
			return nil, &PersistenceError{Op: "insert alert", Err: err}
		}

		logger.Info("Alert saved", zap.Reflect("alert", alert))

		f.emitToAircraft(verdict.AircraftID, EventAlertNew, alert)
	}

	f.emitAll(EventPredictionUpdate, map[string]any{
		"aircraft_id": verdict.AircraftID,
		"prediction":  verdict,
	})

	return &AnalysisResult{
		Prediction: prediction,
		MLAnalysis: verdict,
		Alert:      alert,
	}, nil
}

func (f *Fleet) listPredictions(filter PredictionFilter) ([]models.Prediction, error) {
	query := f.Db.Conn.Order("timestamp desc")
	if filter.AircraftID != "" {
		query = query.Where("aircraft_id = ?", filter.AircraftID)
	}
	if filter.AlertLevel != "" {
		query = query.Where("alert_level = ?", filter.AlertLevel)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	var predictions []models.Prediction
	err := query.Limit(limit).Find(&predictions).Error
	return predictions, err
}

func (f *Fleet) getAircraftPredictions(aircraftID string, limit int) ([]models.Prediction, error) {
	if limit <= 0 {
		limit = 20
	}
	var predictions []models.Prediction
	err := f.Db.Conn.
		Where("aircraft_id = ?", aircraftID).
		Order("timestamp desc").
		Limit(limit).
		Find(&predictions).Error
	return predictions, err
}

func (f *Fleet) statsSummary() (*PredictionStats, error) {
	stats := PredictionStats{}
	conn := f.Db.Conn

	if err := conn.Model(&models.Prediction{}).Count(&stats.TotalPredictions).Error; err != nil {
		return nil, err
	}
	if err := conn.Model(&models.Prediction{}).
		Where("prediction = ?", models.PredictionFailure).
		Count(&stats.FailurePredictions).Error; err != nil {
		return nil, err
	}
	if err := conn.Model(&models.Prediction{}).
		Where("alert_level = ?", models.AlertLevelCritical).
		Count(&stats.CriticalAlerts).Error; err != nil {
		return nil, err
	}
	if err := conn.Model(&models.Prediction{}).
		Where("alert_level = ?", models.AlertLevelHigh).
		Count(&stats.HighAlerts).Error; err != nil {
		return nil, err
	}
	if err := conn.Model(&models.Prediction{}).
		Where("timestamp >= ?", time.Now().Add(-24*time.Hour)).
		Count(&stats.RecentPredictions24h).Error; err != nil {
		return nil, err
	}

	var avg *float64
	if err := conn.Model(&models.Prediction{}).
		Select("AVG(confidence)").
		Scan(&avg).Error; err != nil {
		return nil, err
	}
	if avg != nil {
		stats.AverageConfidence = *avg
	}

	return &stats, nil
}

type IPredictionImpl struct {
	fleet *Fleet
}

func (ip *IPredictionImpl) Analyze(req *ml.AnalysisRequest) (*AnalysisResult, error) {
	return ip.fleet.analyze(req)
}

func (ip *IPredictionImpl) ListPredictions(filter PredictionFilter) ([]models.Prediction, error) {
	return ip.fleet.listPredictions(filter)
}

func (ip *IPredictionImpl) GetAircraftPredictions(aircraftID string, limit int) ([]models.Prediction, error) {
	return ip.fleet.getAircraftPredictions(aircraftID, limit)
}

func (ip *IPredictionImpl) StatsSummary() (*PredictionStats, error) {
	return ip.fleet.statsSummary()
}

func (f *Fleet) GetIPrediction() IPrediction {
	return &IPredictionImpl{fleet: f}
}
