// FilePath: internal/vitalservice/vitalservice.vitals.go
package vitalservice

import (
	"context"
	"time"

	"github.com/careloop/vitalhub/internal/analytics"
	"github.com/careloop/vitalhub/internal/classifier"
	"github.com/careloop/vitalhub/internal/errors"
	"github.com/careloop/vitalhub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// RecordReading validates and persists a reading, derives its alerts and
// persists those too. The reading write and the alert writes are not
// atomic: a failure in between can leave a reading without alerts (they
// are a re-computable projection), but an alert is never written before
// its reading.
func (s *VitalService) RecordReading(ctx context.Context, reading *models.VitalReading) ([]models.Alert, error) {
	if reading.PatientID == "" {
		return nil, errors.NewValidationError("patient id is required", nil)
	}
	if reading.ID == "" {
		reading.ID = nuts.NID("vr", 12)
	}
	reading.Timestamp = time.Now()
	if reading.RecordedBy == "" {
		reading.RecordedBy = GetUserID(ctx)
	}

	// Classification happens exactly once, at ingestion. Alerts are never
	// recomputed when thresholds change later.
	drafts := classifier.Classify(reading)

	if err := s.Vitals.Insert(ctx, reading); err != nil {
		return nil, err
	}
	s.Lifecycle.ReadingRecorded(reading.ID)

	alerts := make([]models.Alert, 0, len(drafts))
	for _, draft := range drafts {
		alert := models.Alert{
			ID:        nuts.NID("al", 12),
			PatientID: reading.PatientID,
			ReadingID: reading.ID,
			Type:      draft.Type,
			Severity:  draft.Severity,
			Value:     draft.Value,
			Message:   draft.Message,
			Timestamp: reading.Timestamp,
		}
		if err := s.Alerts.Insert(ctx, &alert); err != nil {
			nuts.L.Warnf("[VitalService] Failed to store %s alert for reading %s: %v", alert.Type, reading.ID, err)
			// The reading is already durable; remaining alerts still get their chance.
			continue
		}
		s.Lifecycle.AlertCreated(alert.ID)
		alerts = append(alerts, alert)
	}

	nuts.L.Infof("[VitalService] Recorded reading %s for patient %s (%d alerts)", reading.ID, reading.PatientID, len(alerts))
	return alerts, nil
}

// ListVitals returns a patient's readings, newest first, capped at limit.
func (s *VitalService) ListVitals(ctx context.Context, patientID string, limit int) ([]models.VitalReading, error) {
	if patientID == "" {
		return nil, errors.NewValidationError("patient id is required", nil)
	}
	if limit <= 0 || limit > 500 {
		limit = 50 // Default limit
	}

	readings, err := s.Vitals.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	analytics.SortReadingsDesc(readings)
	if len(readings) > limit {
		readings = readings[:limit]
	}
	return readings, nil
}
