package fleet

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/common"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/models"
)

type AircraftFilter struct {
	Status string
	Limit  int
}

type AircraftHealth struct {
	AircraftID  string                 `json:"aircraft_id"`
	HealthScore float64                `json:"health_score"`
	Status      models.AircraftStatus  `json:"status"`
	Components  []models.SensorReading `json:"components"`
}

func (f *Fleet) listAircraft(filter AircraftFilter) ([]models.Aircraft, error) {
	// Worst health first, same ordering the fleet dashboard expects.
	query := f.Db.Conn.Order("health_score asc")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	var aircraft []models.Aircraft
	err := query.Limit(limit).Find(&aircraft).Error
	return aircraft, err
}

func (f *Fleet) getAircraft(aircraftID string) (*models.Aircraft, error) {
	var aircraft models.Aircraft
	err := f.Db.Conn.First(&aircraft, "aircraft_id = ?", aircraftID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := f.Db.Conn.
		Where("aircraft_id = ?", aircraftID).
		Order("timestamp desc").
		Limit(10).
		Find(&aircraft.SensorData).Error; err != nil {
		return nil, err
	}

	if err := f.Db.Conn.
		Where("aircraft_id = ?", aircraftID).
		Order("timestamp desc").
		Limit(5).
		Find(&aircraft.Predictions).Error; err != nil {
		return nil, err
	}

	if err := f.Db.Conn.
		Where("aircraft_id = ? AND status = ?", aircraftID, models.AlertStatusActive).
		Find(&aircraft.Alerts).Error; err != nil {
		return nil, err
	}

	return &aircraft, nil
}

func (f *Fleet) getAircraftHealth(aircraftID string) (*AircraftHealth, error) {
	aircraft := models.Aircraft{}
	err := f.Db.Conn.First(&aircraft, "aircraft_id = ?", aircraftID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	latest, err := f.getLatestReadings(aircraftID)
	if err != nil {
		return nil, err
	}

	return &AircraftHealth{
		AircraftID:  aircraft.AircraftID,
		HealthScore: aircraft.HealthScore,
		Status:      aircraft.Status,
		Components:  latest,
	}, nil
}

func (f *Fleet) createAircraft(input *models.Aircraft) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetAircraft),
	)

	if err := f.Db.Conn.Create(input).Error; err != nil {
		return &PersistenceError{Op: "insert aircraft", Err: err}
	}

	logger.Info("Aircraft registered", zap.String("aircraft_id", input.AircraftID))
	return nil
}

func (f *Fleet) updateAircraft(aircraftID string, updates map[string]any) (*models.Aircraft, error) {
	result := f.Db.Conn.Model(&models.Aircraft{}).
		Where("aircraft_id = ?", aircraftID).
		Updates(updates)
	if result.Error != nil {
		return nil, &PersistenceError{Op: "update aircraft", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var aircraft models.Aircraft
	if err := f.Db.Conn.First(&aircraft, "aircraft_id = ?", aircraftID).Error; err != nil {
		return nil, &PersistenceError{Op: "load aircraft", Err: err}
	}
	return &aircraft, nil
}

type IAircraftImpl struct {
	fleet *Fleet
}

func (ia *IAircraftImpl) ListAircraft(filter AircraftFilter) ([]models.Aircraft, error) {
	return ia.fleet.listAircraft(filter)
}

func (ia *IAircraftImpl) GetAircraft(aircraftID string) (*models.Aircraft, error) {
	return ia.fleet.getAircraft(aircraftID)
}

func (ia *IAircraftImpl) GetAircraftHealth(aircraftID string) (*AircraftHealth, error) {
	return ia.fleet.getAircraftHealth(aircraftID)
}

func (ia *IAircraftImpl) CreateAircraft(input *models.Aircraft) error {
	return ia.fleet.createAircraft(input)
}

func (ia *IAircraftImpl) UpdateAircraft(aircraftID string, updates map[string]any) (*models.Aircraft, error) {
	return ia.fleet.updateAircraft(aircraftID, updates)
}

func (f *Fleet) GetIAircraft() IAircraft {
	return &IAircraftImpl{fleet: f}
}
