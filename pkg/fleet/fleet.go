package fleet

import (
	"time"

	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/db"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/ml"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/models"
)

type IAircraft interface {
	ListAircraft(filter AircraftFilter) ([]models.Aircraft, error)
	GetAircraft(aircraftID string) (*models.Aircraft, error)
	GetAircraftHealth(aircraftID string) (*AircraftHealth, error)
	CreateAircraft(input *models.Aircraft) error
	UpdateAircraft(aircraftID string, updates map[string]any) (*models.Aircraft, error)
}

type ISensor interface {
	RecordReading(input *models.SensorReading) (*models.SensorReading, error)
	GetReadings(aircraftID string, filter ReadingFilter) ([]models.SensorReading, error)
	GetLatestReadings(aircraftID string) ([]models.SensorReading, error)
}

type IPrediction interface {
	Analyze(req *ml.AnalysisRequest) (*AnalysisResult, error)
	ListPredictions(filter PredictionFilter) ([]models.Prediction, error)
	GetAircraftPredictions(aircraftID string, limit int) ([]models.Prediction, error)
	StatsSummary() (*PredictionStats, error)
}

type IAlert interface {
	ListAlerts(filter AlertFilter) ([]models.Alert, error)
	GetCriticalAlerts() ([]models.Alert, error)
	AcknowledgeAlert(id uint, acknowledgedBy string) (*models.Alert, error)
	ResolveAlert(id uint) (*models.Alert, error)
}

type IMaintenance interface {
	ListRecords(filter MaintenanceFilter) ([]models.MaintenanceRecord, error)
	CreateRecord(input *models.MaintenanceRecord) error
	UpdateRecord(id uint, updates map[string]any) (*models.MaintenanceRecord, error)
}

type IReport interface {
	Export(aircraftID string, start, end *time.Time) (*FleetReport, error)
	EconomicImpact(aircraftID string) (*EconomicImpact, error)
}

type Fleet struct {
	Db        db.DB
	Predictor ml.Predictor
	Publisher Publisher

	Aircraft    IAircraft
	Sensor      ISensor
	Prediction  IPrediction
	Alert       IAlert
	Maintenance IMaintenance
	Report      IReport
}

type ServiceOpts struct {
	Aircraft    IAircraft
	Sensor      ISensor
	Prediction  IPrediction
	Alert       IAlert
	Maintenance IMaintenance
	Report      IReport
}

func (f *Fleet) WithServices(opts ServiceOpts) *Fleet {
	if opts.Aircraft != nil {
		f.Aircraft = opts.Aircraft
	}
	if opts.Sensor != nil {
		f.Sensor = opts.Sensor
	}
	if opts.Prediction != nil {
		f.Prediction = opts.Prediction
	}
	if opts.Alert != nil {
		f.Alert = opts.Alert
	}
	if opts.Maintenance != nil {
		f.Maintenance = opts.Maintenance
	}
	if opts.Report != nil {
		f.Report = opts.Report
	}
	return f
}
