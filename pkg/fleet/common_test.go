package fleet

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/db"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/fleet/mocks"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/models"
)

func GetMockFleetWithMemorySqliteDialector(t *testing.T) (
	*gomock.Controller,
	*Fleet,
	*mocks.MockPredictor,
	*mocks.MockPublisher,
) {
	ctrl := gomock.NewController(t)

	mockPredictor := mocks.NewMockPredictor(ctrl)
	mockPublisher := mocks.NewMockPublisher(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations

	fleetInstance := &Fleet{
		Db:        *dbInstance,
		Predictor: mockPredictor,
		Publisher: mockPublisher,
	}
	fleetInstance.WithServices(ServiceOpts{
		Aircraft:    fleetInstance.GetIAircraft(),
		Sensor:      fleetInstance.GetISensor(),
		Prediction:  fleetInstance.GetIPrediction(),
		Alert:       fleetInstance.GetIAlert(),
		Maintenance: fleetInstance.GetIMaintenance(),
		Report:      fleetInstance.GetIReport(),
	})

	return ctrl, fleetInstance, mockPredictor, mockPublisher
}

func seedAircraft(t *testing.T, f *Fleet, aircraftID string) {
	t.Helper()
	aircraft := models.Aircraft{
		AircraftID:   aircraftID,
		Model:        "A320neo",
		Manufacturer: "Airbus",
		Status:       models.AircraftStatusActive,
		HealthScore:  100,
	}
	if err := f.Db.Conn.Create(&aircraft).Error; err != nil {
		t.Fatalf("failed to seed aircraft %s: %v", aircraftID, err)
	}
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
