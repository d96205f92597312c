package ml

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/common"
)

// AnalysisRequest carries the sensor features forwarded verbatim to the
// prediction service.
type AnalysisRequest struct {
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
	SensorDataID   *uint   `json:"sensor_data_id,omitempty"`
}

// Verdict is the structured output of one inference call.
type Verdict struct {
	AircraftID     string   `json:"aircraft_id"`
	ComponentType  string   `json:"component_type"`
	Prediction     string   `json:"prediction"`
	Confidence     float64  `json:"confidence"`
	AlertLevel     string   `json:"alert_level"`
	DaysToFailure  *int     `json:"days_to_failure"`
	HealthScore    float64  `json:"health_score"`
	RiskScore      float64  `json:"risk_score"`
	TopRiskFactors []string `json:"top_risk_factors"`
	Recommendation string   `json:"recommendation"`
}

// UpstreamError marks the prediction service as unreachable or its
// response as malformed. It is never retried.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ml service: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

type Predictor interface {
	Predict(req *AnalysisRequest) (*Verdict, error)
}

// verdictSchema checks the shape and enums of the verdict only. Numeric
// ranges are deliberately not checked here: out-of-range scores must
// fail at insert time, not be clamped or rejected at this boundary.
var verdictSchema = z.Struct(z.Shape{
	"AircraftID":    z.String().Min(1).Required(),
	"ComponentType": z.String().OneOf([]string{"engine", "landing_gear", "hydraulic_system"}).Required(),
	"Prediction":    z.String().OneOf([]string{"failure", "no_failure"}).Required(),
	"AlertLevel":    z.String().OneOf([]string{"none", "medium", "high", "critical"}).Required(),
})

type predictEnvelope struct {
	Success bool     `json:"success"`
	Data    *Verdict `json:"data"`
	Error   string   `json:"error"`
}

// Client calls the external prediction service over HTTP. It performs a
// single round trip per verdict: no retries, no caching, and no request
// timeout (matching the upstream contract; a bounded timeout is the
// known hardening point here).
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
	}
}

func (c *Client) Predict(req *AnalysisRequest) (*Verdict, error) {
	logger := common.GetLoggerWith(common.LoggerNameMLClient)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	resp, err := c.HTTPClient.Post(c.BaseURL+"/api/predict", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	var envelope predictEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &UpstreamError{Err: fmt.Errorf("decoding response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Err: fmt.Errorf("status %d: %s", resp.StatusCode, envelope.Error)}
	}

	if envelope.Data == nil {
		return nil, &UpstreamError{Err: fmt.Errorf("response missing data envelope")}
	}

	if issues := verdictSchema.Validate(envelope.Data); issues != nil {
		return nil, &UpstreamError{Err: fmt.Errorf("malformed verdict: %v", issues)}
	}

	logger.Info("Received verdict",
		zap.String("aircraft_id", envelope.Data.AircraftID),
		zap.String("prediction", envelope.Data.Prediction),
		zap.String("alert_level", envelope.Data.AlertLevel))

	return envelope.Data, nil
}
