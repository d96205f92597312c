package fleet

import (
	"go.uber.org/zap"
	"github.com/google/uuid"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/common"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/models"
)

type MaintenanceFilter struct {
	AircraftID string
	Status     string
	Limit      int
}

func (f *Fleet) listRecords(filter MaintenanceFilter) ([]models.MaintenanceRecord, error) {
	query := f.Db.Conn.Order("maintenance_date desc")
	if filter.AircraftID != "" {
		query = query.Where("aircraft_id = ?", filter.AircraftID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	var records []models.MaintenanceRecord
	err := query.Limit(limit).Find(&records).Error
	return records, err
}

func (f *Fleet) createRecord(input *models.MaintenanceRecord) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetMaint),
	)

	if input.MaintenanceID == "" {
		input.MaintenanceID = "MX-" + uuid.NewString()
	}

	if err := f.Db.Conn.Create(input).Error; err != nil {
		return &PersistenceError{Op: "insert maintenance record", Err: err}
	}

	logger.Info("Maintenance record created",
		zap.String("maintenance_id", input.MaintenanceID),
		zap.String("aircraft_id", input.AircraftID))
	return nil
}

func (f *Fleet) updateRecord(id uint, updates map[string]any) (*models.MaintenanceRecord, error) {
	result := f.Db.Conn.Model(&models.MaintenanceRecord{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, &PersistenceError{Op: "update maintenance record", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var record models.MaintenanceRecord
	if err := f.Db.Conn.First(&record, id).Error; err != nil {
		return nil, &PersistenceError{Op: "load maintenance record", Err: err}
	}
	return &record, nil
}

type IMaintenanceImpl struct {
	fleet *Fleet
}

func (im *IMaintenanceImpl) ListRecords(filter MaintenanceFilter) ([]models.MaintenanceRecord, error) {
	return im.fleet.listRecords(filter)
}

func (im *IMaintenanceImpl) CreateRecord(input *models.MaintenanceRecord) error {
	return im.fleet.createRecord(input)
}

func (im *IMaintenanceImpl) UpdateRecord(id uint, updates map[string]any) (*models.MaintenanceRecord, error) {
	return im.fleet.updateRecord(id, updates)
}

func (f *Fleet) GetIMaintenance() IMaintenance {
	return &IMaintenanceImpl{fleet: f}
}
