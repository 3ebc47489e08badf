// FilePath: internal/vitalservice/vitalservice.analytics.go
package vitalservice

import (
	"context"
	"time"

	"github.com/careloop/vitalhub/internal/analytics"
	"github.com/careloop/vitalhub/internal/errors"
	"github.com/careloop/vitalhub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// PatientAnalytics filters one patient's readings and alerts to the named
// period and computes the window's summary statistics and daily series.
func (s *VitalService) PatientAnalytics(ctx context.Context, patientID, period string) (*models.PatientAnalytics, error) {
	if patientID == "" {
		return nil, errors.NewValidationError("patient id is required", nil)
	}

	readings, err := s.Vitals.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	alerts, err := s.Alerts.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	cutoff := analytics.CutoffFor(period, time.Now())
	readings = analytics.FilterReadings(readings, cutoff)
	alerts = analytics.FilterAlerts(alerts, cutoff)

	stats := analytics.ComputeStats(readings, alerts)
	daily := analytics.DailySeries(readings)

	analytics.SortReadingsDesc(readings)
	analytics.SortAlertsDesc(alerts)

	return &models.PatientAnalytics{
		Vitals: readings,
		Alerts: alerts,
		Stats:  stats,
		Daily:  daily,
	}, nil
}

// AggregateAnalytics computes the all-patients analytics view: windowed
// readings and enriched alerts plus roster-level patient counts.
func (s *VitalService) AggregateAnalytics(ctx context.Context, period string) (*models.AggregateAnalytics, error) {
	readings, err := s.Vitals.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	alerts, err := s.Alerts.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := analytics.CutoffFor(period, time.Now())
	readings = analytics.FilterReadings(readings, cutoff)
	alerts = analytics.FilterAlerts(alerts, cutoff)

	stats := analytics.ComputeStats(readings, alerts)
	daily := analytics.DailySeries(readings)

	analytics.SortReadingsDesc(readings)
	analytics.SortAlertsDesc(alerts)

	roster, err := s.Profiles.ListByRole(ctx, models.RolePatient)
	if err != nil {
		nuts.L.Warnf("[VitalService] Roster lookup failed, aggregate served without patients: %v", err)
		roster = []*models.Profile{}
	}
	stats.TotalPatients = len(roster)

	return &models.AggregateAnalytics{
		Vitals:   readings,
		Alerts:   analytics.EnrichAlerts(alerts, roster),
		Stats:    stats,
		Patients: roster,
		Daily:    daily,
	}, nil
}

// GetProfile returns one roster profile (role-based field filtering is
// applied at the handler boundary).
func (s *VitalService) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	return s.Profiles.Get(ctx, id)
}
