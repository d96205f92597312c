package http

import (
	"net/http"
	"strconv"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"

	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/fleet"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/models"
)

type SensorDataRequest struct {
	AircraftID     string    `json:"aircraft_id"`
	ComponentType  string    `json:"component_type"`
	VibrationLevel float64   `json:"vibration_level"`
	Temperature    float64   `json:"temperature"`
	Pressure       float64   `json:"pressure"`
	WearLevel      float64   `json:"wear_level"`
	OilQuality     float64   `json:"oil_quality"`
	RPM            float64   `json:"rpm"`
	FuelFlow       float64   `json:"fuel_flow"`
	HealthScore    float64   `json:"health_score"`
	OperatingHours int       `json:"operating_hours"`
	Cycles         int       `json:"cycles"`
	Timestamp      time.Time `json:"timestamp"`
}

var sensorDataRequestSchema = z.Struct(z.Shape{
	"AircraftID":     z.String().Min(1).Required(),
	"ComponentType":  z.String().OneOf([]string{"engine", "landing_gear", "hydraulic_system"}).Required(),
	"VibrationLevel": z.Float64().Required(),
	"Temperature":    z.Float64().Required(),
	"Pressure":       z.Float64().Required(),
	"WearLevel":      z.Float64().Required(),
	"OilQuality":     z.Float64().Required(),
	"HealthScore":    z.Float64().Required(),
})

func (rs *RestfulServer) PostSensorData(c *gin.Context) {
	var req SensorDataRequest
	if errs := sensorDataRequestSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		respondValidationError(c, errs)
		return
	}

	reading, err := rs.Fleet.Sensor.RecordReading(&models.SensorReading{
		AircraftID:     req.AircraftID,
		ComponentType:  models.ComponentType(req.ComponentType),
		VibrationLevel: req.VibrationLevel,
		Temperature:    req.Temperature,
		Pressure:       req.Pressure,
		WearLevel:      req.WearLevel,
		OilQuality:     req.OilQuality,
		RPM:            req.RPM,
		FuelFlow:       req.FuelFlow,
		HealthScore:    req.HealthScore,
		OperatingHours: req.OperatingHours,
		Cycles:         req.Cycles,
		Timestamp:      req.Timestamp,
	})
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	respondData(c, http.StatusCreated, reading)
}

func parseQueryDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

func (rs *RestfulServer) GetSensorHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	readings, err := rs.Fleet.Sensor.GetReadings(c.Param("aircraft_id"), fleet.ReadingFilter{
		ComponentType: c.Query("component_type"),
		StartDate:     parseQueryDate(c.Query("start_date")),
		EndDate:       parseQueryDate(c.Query("end_date")),
		Limit:         limit,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	respondList(c, readings)
}

func (rs *RestfulServer) GetLatestSensorData(c *gin.Context) {
	readings, err := rs.Fleet.Sensor.GetLatestReadings(c.Param("aircraft_id"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	respondData(c, http.StatusOK, readings)
}
