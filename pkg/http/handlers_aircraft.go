package http

import (
	"errors"
	"net/http"
	"strconv"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"

	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/fleet"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/models"
)

var errAircraftNotFound = errors.New("Aircraft not found")

func (rs *RestfulServer) ListAircraft(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	aircraft, err := rs.Fleet.Aircraft.ListAircraft(fleet.AircraftFilter{
		Status: c.Query("status"),
		Limit:  limit,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	respondList(c, aircraft)
}

func (rs *RestfulServer) GetAircraft(c *gin.Context) {
	aircraft, err := rs.Fleet.Aircraft.GetAircraft(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	if aircraft == nil {
		respondError(c, http.StatusNotFound, errAircraftNotFound)
		return
	}

	respondData(c, http.StatusOK, aircraft)
}

func (rs *RestfulServer) GetAircraftHealth(c *gin.Context) {
	health, err := rs.Fleet.Aircraft.GetAircraftHealth(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	if health == nil {
		respondError(c, http.StatusNotFound, errAircraftNotFound)
		return
	}

	respondData(c, http.StatusOK, health)
}

type CreateAircraftRequest struct {
	AircraftID       string  `json:"aircraft_id"`
	Model            string  `json:"model"`
	Manufacturer     string  `json:"manufacturer"`
	YearManufactured int     `json:"year_manufactured"`
	TotalFlightHours float64 `json:"total_flight_hours"`
	TotalCycles      int     `json:"total_cycles"`
	Status           string  `json:"status"`
	Location         string  `json:"location"`
	Operator         string  `json:"operator"`
}

var createAircraftRequestSchema = z.Struct(z.Shape{
	"AircraftID":   z.String().Min(1).Required(),
	"Model":        z.String().Min(1).Required(),
	"Manufacturer": z.String().Min(1).Required(),
})

func (rs *RestfulServer) CreateAircraft(c *gin.Context) {
	var req CreateAircraftRequest
	if errs := createAircraftRequestSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		respondValidationError(c, errs)
		return
	}

	status := models.AircraftStatus(req.Status)
	if req.Status == "" {
		status = models.AircraftStatusActive
	}

	aircraft := models.Aircraft{
		AircraftID:       req.AircraftID,
		Model:            req.Model,
		Manufacturer:     req.Manufacturer,
		YearManufactured: req.YearManufactured,
		TotalFlightHours: req.TotalFlightHours,
		TotalCycles:      req.TotalCycles,
		Status:           status,
		HealthScore:      100,
		Location:         req.Location,
		Operator:         req.Operator,
	}

	if err := rs.Fleet.Aircraft.CreateAircraft(&aircraft); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	respondData(c, http.StatusCreated, aircraft)
}

// updatableAircraftColumns whitelists what a PUT may touch.
var updatableAircraftColumns = []string{
	"model", "manufacturer", "year_manufactured", "total_flight_hours",
	"total_cycles", "status", "health_score", "location", "operator",
	"last_maintenance_date", "next_scheduled_maintenance",
}

func (rs *RestfulServer) UpdateAircraft(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	updates := map[string]any{}
	for _, column := range updatableAircraftColumns {
		if value, ok := body[column]; ok {
			updates[column] = value
		}
	}
	if len(updates) == 0 {
		respondError(c, http.StatusBadRequest, &fleet.ValidationError{Fields: []string{"body"}})
		return
	}

	aircraft, err := rs.Fleet.Aircraft.UpdateAircraft(c.Param("id"), updates)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if aircraft == nil {
		respondError(c, http.StatusNotFound, errAircraftNotFound)
		return
	}

	respondData(c, http.StatusOK, aircraft)
}
