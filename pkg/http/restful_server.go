package http

import (
	"net/http"
	"sort"

	z "github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/fleet"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/realtime"
)

type RestfulServer struct {
	Server           *gin.Engine
	Fleet            *fleet.Fleet
	Hub              *realtime.Hub
	RateLimiterStore *fleet.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(clientKey string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(clientKey)
	}
}

func (rs *RestfulServer) CheckClientLimiter(clientKey string) bool {
	limiter := rs.GetLimiter(clientKey)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

// RateLimitMiddleware throttles /api traffic per client address.
func (rs *RestfulServer) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rs.CheckClientLimiter(c.ClientIP()) {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	if rs.Hub != nil {
		rs.Server.GET("/ws", rs.Hub.HandleWebSocket)
	}

	api := rs.Server.Group("/api")
	api.Use(rs.RateLimitMiddleware())

	aircraft := api.Group("/aircraft")
	{
		aircraft.GET("", rs.ListAircraft)
		aircraft.POST("", rs.CreateAircraft)
		aircraft.GET("/:id", rs.GetAircraft)
		aircraft.PUT("/:id", rs.UpdateAircraft)
		aircraft.GET("/:id/health", rs.GetAircraftHealth)
	}

	sensors := api.Group("/sensors")
	{
		sensors.POST("/data", rs.PostSensorData)
		sensors.GET("/:aircraft_id", rs.GetSensorHistory)
		sensors.GET("/:aircraft_id/latest", rs.GetLatestSensorData)
	}

	predictions := api.Group("/predictions")
	{
		predictions.POST("/analyze", rs.AnalyzePrediction)
		predictions.GET("", rs.ListPredictions)
		predictions.GET("/stats/summary", rs.PredictionStats)
		predictions.GET("/:aircraft_id", rs.GetAircraftPredictions)
	}

	alerts := api.Group("/alerts")
	{
		alerts.GET("", rs.ListAlerts)
		alerts.GET("/critical", rs.GetCriticalAlerts)
		alerts.PUT("/:id/acknowledge", rs.AcknowledgeAlert)
		alerts.PUT("/:id/resolve", rs.ResolveAlert)
	}

	maintenance := api.Group("/maintenance")
	{
		maintenance.GET("", rs.ListMaintenance)
		maintenance.POST("", rs.CreateMaintenance)
		maintenance.PUT("/:id", rs.UpdateMaintenance)
	}

	reports := api.Group("/reports")
	{
		reports.GET("/export", rs.ExportReport)
		reports.GET("/economic-impact", rs.EconomicImpact)
	}
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func respondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"success": false, "error": err.Error()})
}

func respondData(c *gin.Context, code int, data any) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func respondList[T any](c *gin.Context, items []T) {
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(items), "data": items})
}

// issueFields flattens a zog issue map into sorted field names for the
// ValidationError payload.
func issueFields(issues z.ZogIssueMap) []string {
	fields := make([]string, 0, len(issues))
	for field := range issues {
		if len(field) > 0 && field[0] == '$' {
			continue
		}
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func respondValidationError(c *gin.Context, issues z.ZogIssueMap) {
	respondError(c, http.StatusBadRequest, &fleet.ValidationError{Fields: issueFields(issues)})
}
