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

var errAlertNotFound = errors.New("Alert not found")

func (rs *RestfulServer) ListAlerts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	alerts, err := rs.Fleet.Alert.ListAlerts(fleet.AlertFilter{
		Status:     c.DefaultQuery("status", string(models.AlertStatusActive)),
		AlertLevel: c.Query("alert_level"),
		Limit:      limit,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	respondList(c, alerts)
}

func (rs *RestfulServer) GetCriticalAlerts(c *gin.Context) {
	alerts, err := rs.Fleet.Alert.GetCriticalAlerts()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	respondList(c, alerts)
}

type AcknowledgeRequest struct {
	AcknowledgedBy string `json:"acknowledged_by"`
}

var acknowledgeRequestSchema = z.Struct(z.Shape{
	"AcknowledgedBy": z.String().Min(1).Required(),
})

func (rs *RestfulServer) AcknowledgeAlert(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	var req AcknowledgeRequest
	if errs := acknowledgeRequestSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		respondValidationError(c, errs)
		return
	}

	alert, err := rs.Fleet.Alert.AcknowledgeAlert(uint(id), req.AcknowledgedBy)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if alert == nil {
		respondError(c, http.StatusNotFound, errAlertNotFound)
		return
	}

	respondData(c, http.StatusOK, alert)
}

func (rs *RestfulServer) ResolveAlert(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	alert, err := rs.Fleet.Alert.ResolveAlert(uint(id))
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if alert == nil {
		respondError(c, http.StatusNotFound, errAlertNotFound)
		return
	}

	respondData(c, http.StatusOK, alert)
}
