// FilePath: internal/vitalservice/vitalservice.alerts.go
package vitalservice

import (
	"context"
	"time"

	"github.com/careloop/vitalhub/internal/analytics"
	"github.com/careloop/vitalhub/internal/errors"
	"github.com/careloop/vitalhub/internal/models"
	"github.com/careloop/vitalhub/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

// ListPatientAlerts returns a patient's alerts, newest first.
func (s *VitalService) ListPatientAlerts(ctx context.Context, patientID string) ([]models.Alert, error) {
	if patientID == "" {
		return nil, errors.NewValidationError("patient id is required", nil)
	}

	alerts, err := s.Alerts.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	analytics.SortAlertsDesc(alerts)
	return alerts, nil
}

// ListAllAlerts returns every patient's alerts, newest first, each joined
// against the roster. A patient missing from the roster degrades to
// placeholder fields instead of failing the whole request.
func (s *VitalService) ListAllAlerts(ctx context.Context) ([]models.EnrichedAlert, error) {
	alerts, err := s.Alerts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	analytics.SortAlertsDesc(alerts)

	roster, err := s.Profiles.ListByRole(ctx, models.RolePatient)
	if err != nil {
		nuts.L.Warnf("[VitalService] Roster lookup failed, serving alerts unenriched: %v", err)
		roster = nil
	}

	return analytics.EnrichAlerts(alerts, roster), nil
}

// Acknowledge moves an alert to its terminal Acknowledged state. The
// transition is idempotent in state; a repeated call overwrites the
// acknowledging identity and time (last write wins).
func (s *VitalService) Acknowledge(ctx context.Context, alertID, actorID string) (*models.Alert, error) {
	if alertID == "" {
		return nil, errors.NewValidationError("alert id is required", nil)
	}

	alert, err := s.Alerts.Get(ctx, alertID)
	if err == repository.ErrNotFound {
		return nil, errors.NewNotFoundError("alert not found", err)
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	alert.Acknowledged = true
	alert.AcknowledgedBy = actorID
	alert.AcknowledgedAt = &now

	if err := s.Alerts.Update(ctx, alert); err != nil {
		return nil, err
	}
	s.Lifecycle.AlertAcknowledged(alert.ID)

	nuts.L.Infof("[VitalService] Alert %s acknowledged by %s", alert.ID, actorID)
	return alert, nil
}
