package fleet

import (
	"go.uber.org/zap"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/common"
)

const (
	EventAlertNew          = "alert:new"
	EventAlertAcknowledged = "alert:acknowledged"
	EventSensorUpdate      = "sensor:update"
	EventPredictionUpdate  = "prediction:update"
)

// Publisher fans events out to subscribed real-time sessions. Delivery
// is at-most-once and best-effort.
type Publisher interface {
	// PublishToAircraft delivers only to sessions subscribed to the
	// aircraft's channel.
	PublishToAircraft(aircraftID string, event string, payload any) error
	// PublishAll delivers to every connected session.
	PublishAll(event string, payload any) error
}

// emitToAircraft is the post-commit fan-out step. Publish failures are
// logged and swallowed so they never fail the parent operation.
func (f *Fleet) emitToAircraft(aircraftID string, event string, payload any) {
	if f.Publisher == nil {
		return
	}
	if err := f.Publisher.PublishToAircraft(aircraftID, event, payload); err != nil {
		common.GetLoggerWith(common.LoggerNameFleetCore).Warn(
			"Fan-out failed", zap.Error(&FanOutError{Event: event, Err: err}))
	}
}

func (f *Fleet) emitAll(event string, payload any) {
	if f.Publisher == nil {
		return
	}
	if err := f.Publisher.PublishAll(event, payload); err != nil {
		common.GetLoggerWith(common.LoggerNameFleetCore).Warn(
			"Fan-out failed", zap.Error(&FanOutError{Event: event, Err: err}))
	}
}
