package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/fleet"
)

func (rs *RestfulServer) ExportReport(c *gin.Context) {
	aircraftID := c.Query("aircraft_id")
	if aircraftID == "" {
		respondError(c, http.StatusBadRequest, &fleet.ValidationError{Fields: []string{"aircraft_id"}})
		return
	}

	report, err := rs.Fleet.Report.Export(
		aircraftID,
		parseQueryDate(c.Query("start_date")),
		parseQueryDate(c.Query("end_date")),
	)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, errAircraftNotFound)
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	respondData(c, http.StatusOK, report)
}

func (rs *RestfulServer) EconomicImpact(c *gin.Context) {
	impact, err := rs.Fleet.Report.EconomicImpact(c.Query("aircraft_id"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	respondData(c, http.StatusOK, impact)
}
