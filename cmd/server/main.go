package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/common"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/db"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/fleet"
	fleetHttp "github.com/stevedicko99-pixel/Aircraft-PMP/pkg/http"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/ml"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/realtime"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	fleetDbType := os.Getenv(common.EnvKeyFleetDBType)
	switch fleetDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown FLEET_DB_TYPE: " + fleetDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyFleetHttpHostPort))

	mlServiceURL := strings.TrimSpace(os.Getenv(common.EnvKeyFleetMLServiceURL))
	if mlServiceURL == "" {
		mlServiceURL = "http://localhost:8000"
	}

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyFleetDefaultRate), 64); err != nil {
		log.Fatal("Invalid FLEET_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyFleetDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid FLEET_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	hub := realtime.NewHub()
	go hub.Run()

	fleetCore := fleet.Fleet{
		Db:        *dbInstance,
		Predictor: ml.NewClient(mlServiceURL),
		Publisher: hub,
	}
	fleetCore.WithServices(fleet.ServiceOpts{
		Aircraft:    fleetCore.GetIAircraft(),
		Sensor:      fleetCore.GetISensor(),
		Prediction:  fleetCore.GetIPrediction(),
		Alert:       fleetCore.GetIAlert(),
		Maintenance: fleetCore.GetIMaintenance(),
		Report:      fleetCore.GetIReport(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":5000"
	}

	rs := &fleetHttp.RestfulServer{
		Server:           gin.Default(),
		Fleet:            &fleetCore,
		Hub:              hub,
		RateLimiterStore: fleet.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("ml_service_url", mlServiceURL),
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
