// FilePath: internal/vitalservice/vitalservice_test.go
package vitalservice

import (
	"context"
	"testing"
	"time"

	"github.com/careloop/vitalhub/internal/errors"
	"github.com/careloop/vitalhub/internal/kvstore"
	"github.com/careloop/vitalhub/internal/models"
	"github.com/careloop/vitalhub/internal/repository"
	"github.com/careloop/vitalhub/internal/repository/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rosterStub struct {
	profiles []*models.Profile
}

func (r *rosterStub) Get(_ context.Context, id string) (*models.Profile, error) {
	for _, p := range r.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *rosterStub) ListByRole(_ context.Context, role string) ([]*models.Profile, error) {
	var out []*models.Profile
	for _, p := range r.profiles {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestService(roster ...*models.Profile) *VitalService {
	store := kvstore.NewMemoryStore()
	return New(
		kv.NewVitalRepository(store),
		kv.NewAlertRepository(store),
		&rosterStub{profiles: roster},
	)
}

func f(v float64) *float64 { return &v }

func TestRecordReadingDerivesAlerts(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	reading := &models.VitalReading{PatientID: "p1", HeartRate: f(45), OxygenLevel: f(89)}
	alerts, err := svc.RecordReading(ctx, reading)
	require.NoError(t, err)

	assert.NotEmpty(t, reading.ID)
	assert.False(t, reading.Timestamp.IsZero())
	assert.Equal(t, "system", reading.RecordedBy)

	require.Len(t, alerts, 2)
	for _, a := range alerts {
		assert.Equal(t, "p1", a.PatientID)
		assert.Equal(t, reading.ID, a.ReadingID)
		assert.Equal(t, reading.Timestamp, a.Timestamp)
		assert.Equal(t, models.SeverityCritical, a.Severity)
		assert.False(t, a.Acknowledged)
	}

	stored, err := svc.Alerts.ListByPatient(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestRecordReadingNormalVitalsNoAlerts(t *testing.T) {
	svc := newTestService()

	alerts, err := svc.RecordReading(context.Background(), &models.VitalReading{
		PatientID: "p1", HeartRate: f(72), OxygenLevel: f(98), Temperature: f(36.6),
	})
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestRecordReadingRequiresPatientID(t *testing.T) {
	svc := newTestService()

	_, err := svc.RecordReading(context.Background(), &models.VitalReading{HeartRate: f(72)})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestListVitalsNewestFirstAndLimited(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	store := svc.Vitals

	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, store.Insert(ctx, &models.VitalReading{
			ID:        string(rune('a' + i)),
			PatientID: "p1",
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	vitals, err := svc.ListVitals(ctx, "p1", 2)
	require.NoError(t, err)
	require.Len(t, vitals, 2)
	assert.True(t, vitals[0].Timestamp.After(vitals[1].Timestamp))
}

func TestListPatientAlertsSortedDesc(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	t1 := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)
	for i, ts := range []time.Time{t1, t2, t3} {
		require.NoError(t, svc.Alerts.Insert(ctx, &models.Alert{
			ID: []string{"a1", "a2", "a3"}[i], PatientID: "p1",
			Type: models.AlertTypeHeartRate, Timestamp: ts,
		}))
	}

	alerts, err := svc.ListPatientAlerts(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, alerts, 3)
	assert.Equal(t, "a3", alerts[0].ID)
	assert.Equal(t, "a2", alerts[1].ID)
	assert.Equal(t, "a1", alerts[2].ID)
}

func TestAcknowledgeNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.Acknowledge(context.Background(), "al_missing", "u1")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestAcknowledgeIdempotentLastWriteWins(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	require.NoError(t, svc.Alerts.Insert(ctx, &models.Alert{
		ID: "al_1", PatientID: "p1", Type: models.AlertTypeOxygenLevel,
		Timestamp: time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC),
	}))

	first, err := svc.Acknowledge(ctx, "al_1", "doctor_a")
	require.NoError(t, err)
	assert.True(t, first.Acknowledged)
	assert.Equal(t, "doctor_a", first.AcknowledgedBy)
	require.NotNil(t, first.AcknowledgedAt)

	second, err := svc.Acknowledge(ctx, "al_1", "doctor_b")
	require.NoError(t, err)
	assert.True(t, second.Acknowledged)
	assert.Equal(t, "doctor_b", second.AcknowledgedBy)
	assert.True(t, !second.AcknowledgedAt.Before(*first.AcknowledgedAt))
}

func TestListAllAlertsEnriched(t *testing.T) {
	ctx := context.Background()
	age := 81
	svc := newTestService(
		&models.Profile{ID: "p1", Name: "Rosa Lind", Email: "rosa@example.com", Role: models.RolePatient, Age: &age},
	)

	ts := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, svc.Alerts.Insert(ctx, &models.Alert{ID: "a1", PatientID: "p1", Type: models.AlertTypeHeartRate, Timestamp: ts}))
	require.NoError(t, svc.Alerts.Insert(ctx, &models.Alert{ID: "a2", PatientID: "p_unknown", Type: models.AlertTypeHeartRate, Timestamp: ts.Add(time.Hour)}))

	enriched, err := svc.ListAllAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, enriched, 2)

	// Newest first: a2 belongs to the unknown patient.
	assert.Equal(t, "a2", enriched[0].ID)
	assert.Equal(t, models.UnknownPatientName, enriched[0].PatientName)
	assert.Equal(t, "Rosa Lind", enriched[1].PatientName)
}

func TestPatientAnalyticsWindowAndStats(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	now := time.Now()
	require.NoError(t, svc.Vitals.Insert(ctx, &models.VitalReading{ID: "r1", PatientID: "p1", HeartRate: f(60), Timestamp: now.AddDate(0, 0, -1)}))
	require.NoError(t, svc.Vitals.Insert(ctx, &models.VitalReading{ID: "r2", PatientID: "p1", HeartRate: f(100), Timestamp: now.AddDate(0, 0, -2)}))
	require.NoError(t, svc.Vitals.Insert(ctx, &models.VitalReading{ID: "r3", PatientID: "p1", Timestamp: now.AddDate(0, 0, -3)}))
	// Outside the 7-day window.
	require.NoError(t, svc.Vitals.Insert(ctx, &models.VitalReading{ID: "r4", PatientID: "p1", HeartRate: f(200), Timestamp: now.AddDate(0, 0, -20)}))

	result, err := svc.PatientAnalytics(ctx, "p1", models.Period7Days)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Stats.TotalReadings)
	assert.Equal(t, 80, result.Stats.AvgHeartRate)
	assert.Equal(t, 3, result.Stats.NormalReadings)
	require.NotEmpty(t, result.Vitals)
	assert.Equal(t, "r1", result.Vitals[0].ID)
}

func TestAggregateAnalyticsCountsPatients(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(
		&models.Profile{ID: "p1", Name: "A", Role: models.RolePatient},
		&models.Profile{ID: "p2", Name: "B", Role: models.RolePatient},
		&models.Profile{ID: "d1", Name: "C", Role: models.RoleDoctor},
	)

	require.NoError(t, svc.Vitals.Insert(ctx, &models.VitalReading{ID: "r1", PatientID: "p1", HeartRate: f(45), Timestamp: time.Now()}))

	result, err := svc.AggregateAnalytics(ctx, "not-a-period")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.TotalPatients)
	assert.Len(t, result.Patients, 2)
	assert.Equal(t, 1, result.Stats.TotalReadings)
}
