// FilePath: internal/lifecycle/lifecycle.go
package lifecycle

import (
	nuts "github.com/vaudience/go-nuts"
)

// Event names emitted by the service layer. Alerts are never deleted; the
// lifecycle an observer can watch is creation and acknowledgement.
const (
	EventReadingRecorded   = "reading.recorded"
	EventAlertCreated      = "alert.created"
	EventAlertAcknowledged = "alert.acknowledged"
)

// Emitter fans out vitals/alert lifecycle events to registered observers.
type Emitter struct {
	events *nuts.EventEmitter
}

// New creates a new lifecycle Emitter
func New() *Emitter {
	return &Emitter{events: nuts.NewEventEmitter()}
}

// ReadingRecorded announces a persisted reading.
func (e *Emitter) ReadingRecorded(readingID string) {
	e.events.Emit(EventReadingRecorded, readingID)
}

// AlertCreated announces a newly derived alert.
func (e *Emitter) AlertCreated(alertID string) {
	e.events.Emit(EventAlertCreated, alertID)
}

// AlertAcknowledged announces an acknowledgement transition.
func (e *Emitter) AlertAcknowledged(alertID string) {
	e.events.Emit(EventAlertAcknowledged, alertID)
}

// OnEvent registers a callback for a lifecycle event
func (e *Emitter) OnEvent(event string, handler func(id string)) {
	e.events.On(event, "lifecycle_handler", func(args ...interface{}) {
		if len(args) > 0 {
			if id, ok := args[0].(string); ok {
				handler(id)
			}
		}
	})
}
