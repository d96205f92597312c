package fleet

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/common"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/models"
)

type ReadingFilter struct {
	ComponentType string
	StartDate     *time.Time
	EndDate       *time.Time
	Limit         int
}

func (f *Fleet) recordReading(input *models.SensorReading) (*models.SensorReading, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetSensor),
	)

	reading := *input
	if reading.Timestamp.IsZero() {
		reading.Timestamp = time.Now()
	}

	logger.Info("Received reading for aircraft", zap.Reflect("reading", reading))

	if err := f.Db.Conn.Create(&reading).Error; err != nil {
		return nil, &PersistenceError{Op: "insert sensor reading", Err: err}
	}

	// Every new reading overwrites the aircraft's rolling health score.
	if err := f.Db.Conn.Model(&models.Aircraft{}).
		Where("aircraft_id = ?", reading.AircraftID).
		Update("health_score", reading.HealthScore).Error; err != nil {
		return nil, &PersistenceError{Op: "update aircraft health", Err: err}
	}

	logger.Info("Stored reading for aircraft", zap.Reflect("reading", reading))

	f.emitToAircraft(reading.AircraftID, EventSensorUpdate, reading)

	return &reading, nil
}

func (f *Fleet) getReadings(aircraftID string, filter ReadingFilter) ([]models.SensorReading, error) {
	query := f.Db.Conn.Where("aircraft_id = ?", aircraftID).Order("timestamp desc")
	if filter.ComponentType != "" {
		query = query.Where("component_type = ?", filter.ComponentType)
	}
	if filter.StartDate != nil {
		query = query.Where("timestamp >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("timestamp <= ?", *filter.EndDate)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	var readings []models.SensorReading
	err := query.Limit(limit).Find(&readings).Error
	return readings, err
}

func (f *Fleet) getLatestReadings(aircraftID string) ([]models.SensorReading, error) {
	components := []models.ComponentType{
		models.ComponentEngine,
		models.ComponentLandingGear,
		models.ComponentHydraulicSystem,
	}

	latest := make([]models.SensorReading, 0, len(components))
	for _, component := range components {
		var reading models.SensorReading
		err := f.Db.Conn.
			Where("aircraft_id = ? AND component_type = ?", aircraftID, component).
			Order("timestamp desc").
			First(&reading).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		latest = append(latest, reading)
	}
	return latest, nil
}

type ISensorImpl struct {
	fleet *Fleet
}

func (is *ISensorImpl) RecordReading(input *models.SensorReading) (*models.SensorReading, error) {
	return is.fleet.recordReading(input)
}

func (is *ISensorImpl) GetReadings(aircraftID string, filter ReadingFilter) ([]models.SensorReading, error) {
	return is.fleet.getReadings(aircraftID, filter)
}

func (is *ISensorImpl) GetLatestReadings(aircraftID string) ([]models.SensorReading, error) {
	return is.fleet.getLatestReadings(aircraftID)
}

func (f *Fleet) GetISensor() ISensor {
	return &ISensorImpl{fleet: f}
}
