package models

import "time"

type ComponentType string

const (
	ComponentEngine          ComponentType = "engine"
	ComponentLandingGear     ComponentType = "landing_gear"
	ComponentHydraulicSystem ComponentType = "hydraulic_system"
)

type AircraftStatus string

const (
	AircraftStatusActive      AircraftStatus = "active"
	AircraftStatusMaintenance AircraftStatus = "maintenance"
	AircraftStatusGrounded    AircraftStatus = "grounded"
	AircraftStatusRetired     AircraftStatus = "retired"
)

type PredictionLabel string

const (
	PredictionFailure   PredictionLabel = "failure"
	PredictionNoFailure PredictionLabel = "no_failure"
)

type AlertLevel string

const (
	AlertLevelNone     AlertLevel = "none"
	AlertLevelMedium   AlertLevel = "medium"
	AlertLevelHigh     AlertLevel = "high"
	AlertLevelCritical AlertLevel = "critical"
)

type AlertStatus string

const (
	AlertStatusActive       AlertStatus = "active"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
	AlertStatusDismissed    AlertStatus = "dismissed"
)

type MaintenanceType string

const (
	MaintenanceScheduledInspection   MaintenanceType = "scheduled_inspection"
	MaintenanceComponentReplacement  MaintenanceType = "component_replacement"
	MaintenanceRepair                MaintenanceType = "repair"
	MaintenanceOverhaul              MaintenanceType = "overhaul"
	MaintenancePreventive            MaintenanceType = "preventive_maintenance"
)

type MaintenanceStatus string

const (
	MaintenanceStatusScheduled  MaintenanceStatus = "scheduled"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "completed"
	MaintenanceStatusCancelled  MaintenanceStatus = "cancelled"
)

type Aircraft struct {
	ID                       uint           `gorm:"primaryKey" json:"id"`
	AircraftID               string         `gorm:"size:50;uniqueIndex;not null" json:"aircraft_id"`
	Model                    string         `gorm:"size:100;not null" json:"model"`
	Manufacturer             string         `gorm:"size:100;not null" json:"manufacturer"`
	YearManufactured         int            `json:"year_manufactured"`
	TotalFlightHours         float64        `gorm:"default:0;check:total_flight_hours >= 0" json:"total_flight_hours"`
	TotalCycles              int            `gorm:"default:0;check:total_cycles >= 0" json:"total_cycles"`
	Status                   AircraftStatus `gorm:"type:varchar(20);default:'active';index;check:status IN ('active','maintenance','grounded','retired')" json:"status"`
	LastMaintenanceDate      *time.Time     `json:"last_maintenance_date"`
	NextScheduledMaintenance *time.Time     `json:"next_scheduled_maintenance"`
	HealthScore              float64        `gorm:"default:100;index;check:health_score >= 0 AND health_score <= 100" json:"health_score"`
	Location                 string         `gorm:"size:100" json:"location"`
	Operator                 string         `gorm:"size:100" json:"operator"`
	CreatedAt                time.Time      `json:"created_at"`
	UpdatedAt                time.Time      `json:"updated_at"`

	SensorData         []SensorReading     `gorm:"foreignKey:AircraftID;references:AircraftID" json:"sensor_data,omitempty"`
	Predictions        []Prediction        `gorm:"foreignKey:AircraftID;references:AircraftID" json:"predictions,omitempty"`
	Alerts             []Alert             `gorm:"foreignKey:AircraftID;references:AircraftID" json:"alerts,omitempty"`
	MaintenanceRecords []MaintenanceRecord `gorm:"foreignKey:AircraftID;references:AircraftID" json:"maintenance_records,omitempty"`
}

func (Aircraft) TableName() string { return "aircraft" }

// SensorReading is append-only: rows are never updated after creation.
type SensorReading struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	AircraftID     string        `gorm:"size:50;index;not null" json:"aircraft_id"`
	ComponentType  ComponentType `gorm:"type:varchar(20);index;not null;check:component_type IN ('engine','landing_gear','hydraulic_system')" json:"component_type"`
	VibrationLevel float64       `gorm:"not null" json:"vibration_level"`
	Temperature    float64       `gorm:"not null" json:"temperature"`
	Pressure       float64       `gorm:"not null" json:"pressure"`
	WearLevel      float64       `gorm:"not null" json:"wear_level"`
	OilQuality     float64       `gorm:"not null" json:"oil_quality"`
	RPM            float64       `gorm:"column:rpm;default:0" json:"rpm"`
	FuelFlow       float64       `gorm:"default:0" json:"fuel_flow"`
	HealthScore    float64       `gorm:"not null;index;check:health_score >= 0 AND health_score <= 100" json:"health_score"`
	OperatingHours int           `gorm:"default:0" json:"operating_hours"`
	Cycles         int           `gorm:"default:0" json:"cycles"`
	Timestamp      time.Time     `gorm:"index" json:"timestamp"`
}

func (SensorReading) TableName() string { return "sensor_data" }

// Prediction is an append-only audit trail of inference verdicts.
type Prediction struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	AircraftID     string          `gorm:"size:50;index;not null" json:"aircraft_id"`
	ComponentType  ComponentType   `gorm:"type:varchar(20);index;not null;check:component_type IN ('engine','landing_gear','hydraulic_system')" json:"component_type"`
	Prediction     PredictionLabel `gorm:"type:varchar(20);not null;check:prediction IN ('failure','no_failure')" json:"prediction"`
	Confidence     float64         `gorm:"not null;check:confidence >= 0 AND confidence <= 100" json:"confidence"`
	AlertLevel     AlertLevel      `gorm:"type:varchar(20);default:'none';index;check:alert_level IN ('none','medium','high','critical')" json:"alert_level"`
	DaysToFailure  *int            `json:"days_to_failure"`
	HealthScore    float64         `gorm:"check:health_score >= 0 AND health_score <= 100" json:"health_score"`
	RiskScore      float64         `gorm:"check:risk_score >= 0 AND risk_score <= 100" json:"risk_score"`
	RiskFactors    []string        `gorm:"serializer:json" json:"risk_factors"`
	Recommendation string          `json:"recommendation"`
	SensorDataID   *uint           `json:"sensor_data_id"`
	Timestamp      time.Time       `gorm:"index" json:"timestamp"`
}

func (Prediction) TableName() string { return "prediction" }

type Alert struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	AircraftID     string         `gorm:"size:50;index;not null" json:"aircraft_id"`
	PredictionID   *uint          `gorm:"index" json:"prediction_id"`
	ComponentType  ComponentType  `gorm:"type:varchar(20);not null;check:component_type IN ('engine','landing_gear','hydraulic_system')" json:"component_type"`
	AlertLevel     AlertLevel     `gorm:"type:varchar(20);not null;index;check:alert_level IN ('medium','high','critical')" json:"alert_level"`
	Title          string         `gorm:"size:200;not null" json:"title"`
	Message        string         `gorm:"not null" json:"message"`
	Recommendation string         `json:"recommendation"`
	DaysToFailure  *int           `json:"days_to_failure"`
	Confidence     float64        `gorm:"check:confidence >= 0 AND confidence <= 100" json:"confidence"`
	Status         AlertStatus    `gorm:"type:varchar(20);default:'active';index;check:status IN ('active','acknowledged','resolved','dismissed')" json:"status"`
	AcknowledgedBy string         `gorm:"size:100" json:"acknowledged_by"`
	AcknowledgedAt *time.Time     `json:"acknowledged_at"`
	ResolvedAt     *time.Time     `json:"resolved_at"`
	Priority       int            `gorm:"default:3;check:priority >= 1 AND priority <= 5" json:"priority"`
	Metadata       map[string]any `gorm:"serializer:json" json:"metadata"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (Alert) TableName() string { return "alert" }

type MaintenanceRecord struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	MaintenanceID   string            `gorm:"size:50;uniqueIndex;not null" json:"maintenance_id"`
	AircraftID      string            `gorm:"size:50;index;not null" json:"aircraft_id"`
	ComponentType   ComponentType     `gorm:"type:varchar(20);not null" json:"component_type"`
	MaintenanceType MaintenanceType   `gorm:"type:varchar(30);index;not null" json:"maintenance_type"`
	Description     string            `json:"description"`
	MaintenanceDate time.Time         `gorm:"index;not null" json:"maintenance_date"`
	CompletionDate  *time.Time        `json:"completion_date"`
	CostUSD         float64           `gorm:"column:cost_usd;check:cost_usd >= 0" json:"cost_usd"`
	DowntimeHours   float64           `gorm:"check:downtime_hours >= 0" json:"downtime_hours"`
	TechnicianID    string            `gorm:"size:50" json:"technician_id"`
	PartsReplaced   []string          `gorm:"serializer:json" json:"parts_replaced"`
	Severity        string            `gorm:"type:varchar(20);default:'medium'" json:"severity"`
	Status          MaintenanceStatus `gorm:"type:varchar(20);default:'scheduled';index;check:status IN ('scheduled','in_progress','completed','cancelled')" json:"status"`
	Notes           string            `json:"notes"`
}

func (MaintenanceRecord) TableName() string { return "maintenance_record" }
