package fleet

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/common"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/ml"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/models"
)

type AlertFilter struct {
	Status     string
	AlertLevel string
	Limit      int
}

func alertPriority(level string) int {
	switch models.AlertLevel(level) {
	case models.AlertLevelCritical:
		return 1
	case models.AlertLevelHigh:
		return 2
	default:
		return 3
	}
}

// DeriveAlert builds the one alert a failure verdict produces. Callers
// must only invoke it when the verdict is "failure" with an alert level
// above "none".
func DeriveAlert(verdict *ml.Verdict, predictionID uint) *models.Alert {
	days := 0
	if verdict.DaysToFailure != nil {
		days = *verdict.DaysToFailure
	}

	return &models.Alert{
		AircraftID:     verdict.AircraftID,
		PredictionID:   &predictionID,
		ComponentType:  models.ComponentType(verdict.ComponentType),
		AlertLevel:     models.AlertLevel(verdict.AlertLevel),
		Title:          fmt.Sprintf("%s: Potential %s failure", strings.ToUpper(verdict.AlertLevel), verdict.ComponentType),
		Message:        fmt.Sprintf("Predicted failure within %d days with %g%% confidence", days, verdict.Confidence),
		Recommendation: verdict.Recommendation,
		DaysToFailure:  verdict.DaysToFailure,
		Confidence:     verdict.Confidence,
		Status:         models.AlertStatusActive,
		Priority:       alertPriority(verdict.AlertLevel),
	}
}

func (f *Fleet) listAlerts(filter AlertFilter) ([]models.Alert, error) {
	query := f.Db.Conn.Order("priority asc").Order("created_at desc")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.AlertLevel != "" {
		query = query.Where("alert_level = ?", filter.AlertLevel)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	var alerts []models.Alert
	err := query.Limit(limit).Find(&alerts).Error
	return alerts, err
}

func (f *Fleet) getCriticalAlerts() ([]models.Alert, error) {
	var alerts []models.Alert
	err := f.Db.Conn.
		Where("alert_level = ? AND status = ?", models.AlertLevelCritical, models.AlertStatusActive).
		Order("created_at desc").
		Find(&alerts).Error
	return alerts, err
}

func (f *Fleet) acknowledgeAlert(id uint, acknowledgedBy string) (*models.Alert, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetAlert),
	)

	now := time.Now()
	result := f.Db.Conn.Model(&models.Alert{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":          models.AlertStatusAcknowledged,
			"acknowledged_by": acknowledgedBy,
			"acknowledged_at": now,
		})
	if result.Error != nil {
		return nil, &PersistenceError{Op: "acknowledge alert", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var alert models.Alert
	if err := f.Db.Conn.First(&alert, id).Error; err != nil {
		return nil, &PersistenceError{Op: "load alert", Err: err}
	}

	logger.Info("Alert acknowledged", zap.Uint("id", alert.ID), zap.String("by", acknowledgedBy))

	f.emitAll(EventAlertAcknowledged, &alert)

	return &alert, nil
}

func (f *Fleet) resolveAlert(id uint) (*models.Alert, error) {
	now := time.Now()
	result := f.Db.Conn.Model(&models.Alert{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      models.AlertStatusResolved,
			"resolved_at": now,
		})
	if result.Error != nil {
		return nil, &PersistenceError{Op: "resolve alert", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var alert models.Alert
	if err := f.Db.Conn.First(&alert, id).Error; err != nil {
		return nil, &PersistenceError{Op: "load alert", Err: err}
	}
	return &alert, nil
}

type IAlertImpl struct {
	fleet *Fleet
}

func (ia *IAlertImpl) ListAlerts(filter AlertFilter) ([]models.Alert, error) {
	return ia.fleet.listAlerts(filter)
}

func (ia *IAlertImpl) GetCriticalAlerts() ([]models.Alert, error) {
	return ia.fleet.getCriticalAlerts()
}

func (ia *IAlertImpl) AcknowledgeAlert(id uint, acknowledgedBy string) (*models.Alert, error) {
	return ia.fleet.acknowledgeAlert(id, acknowledgedBy)
}

func (ia *IAlertImpl) ResolveAlert(id uint) (*models.Alert, error) {
	return ia.fleet.resolveAlert(id)
}

func (f *Fleet) GetIAlert() IAlert {
	return &IAlertImpl{fleet: f}
}
