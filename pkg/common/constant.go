package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyFleetDBType string = "FLEET_DB_TYPE"
	EnvKeyFleetDBPath string = "FLEET_DB_PATH"

	EnvKeyFleetHttpHostPort string = "FLEET_HTTP_HOST_PORT"
	EnvKeyFleetMLServiceURL string = "FLEET_ML_SERVICE_URL"

	EnvKeyFleetDefaultRate  string = "FLEET_DEFAULT_RATE"
	EnvKeyFleetDefaultBurst string = "FLEET_DEFAULT_BURST"

	LoggerNameFleetCore     string = "fleet_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameRealtimeHub   string = "realtime_hub"
	LoggerNameMLClient      string = "ml_client"

	LoggerFieldFleetCategory      string = "category"
	LoggerCategoryFleetAircraft   string = "aircraft"
	LoggerCategoryFleetSensor     string = "sensor"
	LoggerCategoryFleetPrediction string = "prediction"
	LoggerCategoryFleetAlert      string = "alert"
	LoggerCategoryFleetMaint      string = "maintenance"
	LoggerCategoryFleetReport     string = "report"
)
