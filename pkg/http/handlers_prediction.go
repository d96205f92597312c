package http

import (
	"net/http"
	"strconv"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"

	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/fleet"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/ml"
)

type AnalyzeRequest struct {
	AircraftID     string  `json:"aircraft_id"`
	ComponentType  string  `json:"component_type"`
	VibrationLevel float64 `json:"vibration_level"`
	Temperature    float64 `json:"temperature"`
	Pressure       float64 `json:"pressure"`
	WearLevel      float64 `json:"wear_level"`
	OilQuality     float64 `json:"oil_quality"`
	RPM            float64 `json:"rpm"`
	FuelFlow       float64 `json:"fuel_flow"`
	HealthScore    float64 `json:"health_score"`
	OperatingHours int     `json:"operating_hours"`
	Cycles         int     `json:"cycles"`
	SensorDataID   *uint   `json:"sensor_data_id"`
}

var analyzeRequestSchema = z.Struct(z.Shape{
	"AircraftID":     z.String().Min(1).Required(),
	"ComponentType":  z.String().OneOf([]string{"engine", "landing_gear", "hydraulic_system"}).Required(),
	"VibrationLevel": z.Float64().Required(),
	"Temperature":    z.Float64().Required(),
	"Pressure":       z.Float64().Required(),
	"WearLevel":      z.Float64().Required(),
	"OilQuality":     z.Float64().Required(),
	"HealthScore":    z.Float64().Required(),
})

func (rs *RestfulServer) AnalyzePrediction(c *gin.Context) {
	var req AnalyzeRequest
	if errs := analyzeRequestSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		respondValidationError(c, errs)
		return
	}

	result, err := rs.Fleet.Prediction.Analyze(&ml.AnalysisRequest{
		AircraftID:     req.AircraftID,
		ComponentType:  req.ComponentType,
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
		SensorDataID:   req.SensorDataID,
	})
	if err != nil {
		// upstream and persistence failures alike surface as a uniform
		// error envelope; partial success is never reported.
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	respondData(c, http.StatusOK, result)
}

func (rs *RestfulServer) ListPredictions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	predictions, err := rs.Fleet.Prediction.ListPredictions(fleet.PredictionFilter{
		AircraftID: c.Query("aircraft_id"),
		AlertLevel: c.Query("alert_level"),
		Limit:      limit,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	respondList(c, predictions)
}

func (rs *RestfulServer) GetAircraftPredictions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	predictions, err := rs.Fleet.Prediction.GetAircraftPredictions(c.Param("aircraft_id"), limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	respondList(c, predictions)
}

func (rs *RestfulServer) PredictionStats(c *gin.Context) {
	stats, err := rs.Fleet.Prediction.StatsSummary()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	respondData(c, http.StatusOK, stats)
}
