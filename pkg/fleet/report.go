package fleet

import (
	"math"
	"time"

	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/common"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/models"
)

// downtimeCostPerHour and avoidedFailureSaving feed the economic-impact
// estimates; both are the fleet-ops planning figures, not measurements.
const (
	downtimeCostPerHour  = 25000.0
	avoidedFailureSaving = 150000.0
)

type ReportSummary struct {
	TotalPredictions     int     `json:"total_predictions"`
	FailurePredictions   int     `json:"failure_predictions"`
	CriticalAlerts       int     `json:"critical_alerts"`
	TotalMaintenance     int     `json:"total_maintenance"`
	TotalMaintenanceCost float64 `json:"total_maintenance_cost"`
}

type AircraftSnapshot struct {
	AircraftID       string                `json:"aircraft_id"`
	Model            string                `json:"model"`
	Manufacturer     string                `json:"manufacturer"`
	Status           models.AircraftStatus `json:"status"`
	HealthScore      float64               `json:"health_score"`
	TotalFlightHours float64               `json:"total_flight_hours"`
}

type FleetReport struct {
	GeneratedAt        time.Time                  `json:"generated_at"`
	Aircraft           AircraftSnapshot           `json:"aircraft"`
	Summary            ReportSummary              `json:"summary"`
	Predictions        []models.Prediction        `json:"predictions"`
	Alerts             []models.Alert             `json:"alerts"`
	MaintenanceHistory []models.MaintenanceRecord `json:"maintenance_history"`
}

type EconomicImpact struct {
	Period                   string  `json:"period"`
	ProactiveMaintenanceCost float64 `json:"proactive_maintenance_cost"`
	ReactiveMaintenanceCost  float64 `json:"reactive_maintenance_cost"`
	PotentialSavings         float64 `json:"potential_savings"`
	ActualSavings            float64 `json:"actual_savings"`
}

func capWindow[T any](items []T, max int) []T {
	if len(items) > max {
		return items[:max]
	}
	return items
}

func (f *Fleet) export(aircraftID string, start, end *time.Time) (*FleetReport, error) {
	var aircraft models.Aircraft
	if err := f.Db.Conn.First(&aircraft, "aircraft_id = ?", aircraftID).Error; err != nil {
		return nil, err
	}

	predQuery := f.Db.Conn.Where("aircraft_id = ?", aircraftID).Order("timestamp desc")
	if start != nil {
		predQuery = predQuery.Where("timestamp >= ?", *start)
	}
	if end != nil {
		predQuery = predQuery.Where("timestamp <= ?", *end)
	}
	var predictions []models.Prediction
	if err := predQuery.Find(&predictions).Error; err != nil {
		return nil, err
	}

	alertQuery := f.Db.Conn.Where("aircraft_id = ?", aircraftID).Order("created_at desc")
	if start != nil {
		alertQuery = alertQuery.Where("created_at >= ?", *start)
	}
	if end != nil {
		alertQuery = alertQuery.Where("created_at <= ?", *end)
	}
	var alerts []models.Alert
	if err := alertQuery.Find(&alerts).Error; err != nil {
		return nil, err
	}

	maintQuery := f.Db.Conn.Where("aircraft_id = ?", aircraftID).Order("maintenance_date desc")
	if start != nil {
		maintQuery = maintQuery.Where("maintenance_date >= ?", *start)
	}
	if end != nil {
		maintQuery = maintQuery.Where("maintenance_date <= ?", *end)
	}
	var maintenance []models.MaintenanceRecord
	if err := maintQuery.Find(&maintenance).Error; err != nil {
		return nil, err
	}

	failureCount := len(common.Filter(predictions, func(p models.Prediction) bool {
		return p.Prediction == models.PredictionFailure
	}))
	criticalCount := len(common.Filter(alerts, func(a models.Alert) bool {
		return a.AlertLevel == models.AlertLevelCritical
	}))
	maintenanceCost := common.Reducer(maintenance, func(sum float64, m models.MaintenanceRecord) float64 {
		return sum + m.CostUSD
	}, 0.0)

	return &FleetReport{
		GeneratedAt: time.Now(),
		Aircraft: AircraftSnapshot{
			AircraftID:       aircraft.AircraftID,
			Model:            aircraft.Model,
			Manufacturer:     aircraft.Manufacturer,
			Status:           aircraft.Status,
			HealthScore:      aircraft.HealthScore,
			TotalFlightHours: aircraft.TotalFlightHours,
		},
		Summary: ReportSummary{
			TotalPredictions:     len(predictions),
			FailurePredictions:   failureCount,
			CriticalAlerts:       criticalCount,
			TotalMaintenance:     len(maintenance),
			TotalMaintenanceCost: maintenanceCost,
		},
		Predictions:        capWindow(predictions, 20),
		Alerts:             capWindow(alerts, 20),
		MaintenanceHistory: capWindow(maintenance, 10),
	}, nil
}

func (f *Fleet) economicImpact(aircraftID string) (*EconomicImpact, error) {
	since := time.Now().Add(-30 * 24 * time.Hour)

	predQuery := f.Db.Conn.
		Where("prediction = ? AND timestamp >= ?", models.PredictionFailure, since)
	if aircraftID != "" {
		predQuery = predQuery.Where("aircraft_id = ?", aircraftID)
	}
	var predictions []models.Prediction
	if err := predQuery.Find(&predictions).Error; err != nil {
		return nil, err
	}

	maintQuery := f.Db.Conn.Where("maintenance_date >= ?", since)
	if aircraftID != "" {
		maintQuery = maintQuery.Where("aircraft_id = ?", aircraftID)
	}
	var maintenance []models.MaintenanceRecord
	if err := maintQuery.Find(&maintenance).Error; err != nil {
		return nil, err
	}

	fullCost := func(m models.MaintenanceRecord) float64 {
		return m.CostUSD + m.DowntimeHours*downtimeCostPerHour
	}

	proactive := common.Reducer(
		common.Filter(maintenance, func(m models.MaintenanceRecord) bool {
			return m.MaintenanceType == models.MaintenancePreventive
		}),
		func(sum float64, m models.MaintenanceRecord) float64 { return sum + fullCost(m) },
		0.0,
	)
	reactive := common.Reducer(
		common.Filter(maintenance, func(m models.MaintenanceRecord) bool {
			return m.MaintenanceType != models.MaintenancePreventive
		}),
		func(sum float64, m models.MaintenanceRecord) float64 { return sum + fullCost(m) },
		0.0,
	)

	actual := 0.0
	if reactive > 0 {
		actual = reactive - proactive
	}

	return &EconomicImpact{
		Period:                   "Last 30 days",
		ProactiveMaintenanceCost: math.Round(proactive),
		ReactiveMaintenanceCost:  math.Round(reactive),
		PotentialSavings:         float64(len(predictions)) * avoidedFailureSaving,
		ActualSavings:            math.Round(actual),
	}, nil
}

type IReportImpl struct {
	fleet *Fleet
}

func (ir *IReportImpl) Export(aircraftID string, start, end *time.Time) (*FleetReport, error) {
	return ir.fleet.export(aircraftID, start, end)
}

func (ir *IReportImpl) EconomicImpact(aircraftID string) (*EconomicImpact, error) {
	return ir.fleet.economicImpact(aircraftID)
}

func (f *Fleet) GetIReport() IReport {
	return &IReportImpl{fleet: f}
}
