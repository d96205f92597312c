package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"

	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/fleet"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/models"
)

var errRecordNotFound = errors.New("Record not found")

func (rs *RestfulServer) ListMaintenance(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	records, err := rs.Fleet.Maintenance.ListRecords(fleet.MaintenanceFilter{
		AircraftID: c.Query("aircraft_id"),
		Status:     c.Query("status"),
		Limit:      limit,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	respondList(c, records)
}

type MaintenanceRequest struct {
	MaintenanceID   string    `json:"maintenance_id"`
	AircraftID      string    `json:"aircraft_id"`
	ComponentType   string    `json:"component_type"`
	MaintenanceType string    `json:"maintenance_type"`
	Description     string    `json:"description"`
	MaintenanceDate time.Time `json:"maintenance_date"`
	CostUSD         float64   `json:"cost_usd"`
	DowntimeHours   float64   `json:"downtime_hours"`
	TechnicianID    string    `json:"technician_id"`
	PartsReplaced   []string  `json:"parts_replaced"`
	Severity        string    `json:"severity"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
}

var maintenanceRequestSchema = z.Struct(z.Shape{
	"AircraftID":      z.String().Min(1).Required(),
	"ComponentType":   z.String().Min(1).Required(),
	"MaintenanceType": z.String().Min(1).Required(),
	"MaintenanceDate": z.Time().Required(),
})

func (rs *RestfulServer) CreateMaintenance(c *gin.Context) {
	var req MaintenanceRequest
	if errs := maintenanceRequestSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		respondValidationError(c, errs)
		return
	}

	severity := req.Severity
	if severity == "" {
		severity = "medium"
	}
	status := models.MaintenanceStatus(req.Status)
	if req.Status == "" {
		status = models.MaintenanceStatusScheduled
	}

	record := models.MaintenanceRecord{
		MaintenanceID:   req.MaintenanceID,
		AircraftID:      req.AircraftID,
		ComponentType:   models.ComponentType(req.ComponentType),
		MaintenanceType: models.MaintenanceType(req.MaintenanceType),
		Description:     req.Description,
		MaintenanceDate: req.MaintenanceDate,
		CostUSD:         req.CostUSD,
		DowntimeHours:   req.DowntimeHours,
		TechnicianID:    req.TechnicianID,
		PartsReplaced:   req.PartsReplaced,
		Severity:        severity,
		Status:          status,
		Notes:           req.Notes,
	}

	if err := rs.Fleet.Maintenance.CreateRecord(&record); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	respondData(c, http.StatusCreated, record)
}

var updatableMaintenanceColumns = []string{
	"component_type", "maintenance_type", "description", "maintenance_date",
	"completion_date", "cost_usd", "downtime_hours", "technician_id",
	"severity", "status", "notes",
}

func (rs *RestfulServer) UpdateMaintenance(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	updates := map[string]any{}
	for _, column := range updatableMaintenanceColumns {
		if value, ok := body[column]; ok {
			updates[column] = value
		}
	}
	if len(updates) == 0 {
		respondError(c, http.StatusBadRequest, &fleet.ValidationError{Fields: []string{"body"}})
		return
	}

	record, err := rs.Fleet.Maintenance.UpdateRecord(uint(id), updates)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if record == nil {
		respondError(c, http.StatusNotFound, errRecordNotFound)
		return
	}

	respondData(c, http.StatusOK, record)
}
