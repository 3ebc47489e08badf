// FilePath: internal/analytics/aggregator_test.go
package analytics

import (
	"testing"
	"time"

	"github.com/careloop/vitalhub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestCutoffFor(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.AddDate(0, 0, -7), CutoffFor(models.Period7Days, now))
	assert.Equal(t, now.AddDate(0, 0, -30), CutoffFor(models.Period30Days, now))
	assert.Equal(t, now.AddDate(0, -3, 0), CutoffFor(models.Period3Months, now))
	assert.Equal(t, now.AddDate(-1, 0, 0), CutoffFor(models.Period1Year, now))

	// Unknown or missing periods widen to all time, never to an empty window.
	assert.True(t, CutoffFor("2weeks", now).IsZero())
	assert.True(t, CutoffFor("", now).IsZero())
}

func TestFilterReadings(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	readings := []models.VitalReading{
		{ID: "old", Timestamp: now.AddDate(0, 0, -20)},
		{ID: "recent", Timestamp: now.AddDate(0, 0, -2)},
		{ID: "boundary", Timestamp: now.AddDate(0, 0, -7)},
	}

	filtered := FilterReadings(readings, CutoffFor(models.Period7Days, now))
	require.Len(t, filtered, 2)

	all := FilterReadings(readings, CutoffFor("bogus", now))
	assert.Len(t, all, 3)
}

func TestComputeStatsAverages(t *testing.T) {
	readings := []models.VitalReading{
		{HeartRate: f(60)},
		{HeartRate: f(100)},
		{}, // no heart rate; excluded from the mean, counted in total
	}

	stats := ComputeStats(readings, nil)
	assert.Equal(t, 3, stats.TotalReadings)
	assert.Equal(t, 80, stats.AvgHeartRate)
	assert.Equal(t, 0, stats.AvgOxygenLevel)
}

func TestComputeStatsNormalCounts(t *testing.T) {
	readings := []models.VitalReading{
		{HeartRate: f(72), OxygenLevel: f(98)},
		{HeartRate: f(45)},
		{}, // no vitals counts as fully normal
	}

	stats := ComputeStats(readings, nil)
	assert.Equal(t, 3, stats.TotalReadings)
	assert.Equal(t, 2, stats.NormalReadings)
}

func TestComputeStatsAlertCounts(t *testing.T) {
	alerts := []models.Alert{
		{Severity: models.SeverityCritical},
		{Severity: models.SeverityCritical},
		{Severity: models.SeverityWarning},
	}

	stats := ComputeStats(nil, alerts)
	assert.Equal(t, 3, stats.TotalAlerts)
	assert.Equal(t, 2, stats.CriticalAlerts)
	assert.Equal(t, 1, stats.WarningAlerts)
}

func TestDailySeriesAscendingByDay(t *testing.T) {
	day1 := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 6, 2, 8, 0, 0, 0, time.UTC)

	readings := []models.VitalReading{
		{HeartRate: f(80), Timestamp: day2},
		{HeartRate: f(60), OxygenLevel: f(96), Timestamp: day1},
		{HeartRate: f(70), OxygenLevel: f(98), Timestamp: day1},
	}

	series := DailySeries(readings)
	require.Len(t, series, 2)
	assert.Equal(t, "2026-06-01", series[0].Day)
	assert.Equal(t, 2, series[0].Readings)
	assert.InDelta(t, 65.0, series[0].AvgHeartRate, 0.001)
	assert.InDelta(t, 97.0, series[0].AvgOxygenLevel, 0.001)
	assert.Equal(t, "2026-06-02", series[1].Day)
	assert.InDelta(t, 80.0, series[1].AvgHeartRate, 0.001)
	assert.Zero(t, series[1].AvgOxygenLevel)
}

func TestSortAlertsDesc(t *testing.T) {
	t1 := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)
	alerts := []models.Alert{
		{ID: "a1", Timestamp: t1},
		{ID: "a3", Timestamp: t3},
		{ID: "a2", Timestamp: t2},
	}

	SortAlertsDesc(alerts)
	assert.Equal(t, []string{"a3", "a2", "a1"}, []string{alerts[0].ID, alerts[1].ID, alerts[2].ID})
}

func TestEnrichAlerts(t *testing.T) {
	age := 74
	roster := []*models.Profile{
		{ID: "p1", Name: "Ada Hart", Email: "ada@example.com", Role: models.RolePatient, Age: &age},
	}
	alerts := []models.Alert{
		{ID: "a1", PatientID: "p1"},
		{ID: "a2", PatientID: "p_gone"},
	}

	enriched := EnrichAlerts(alerts, roster)
	require.Len(t, enriched, 2)

	assert.Equal(t, "Ada Hart", enriched[0].PatientName)
	require.NotNil(t, enriched[0].PatientEmail)
	assert.Equal(t, "ada@example.com", *enriched[0].PatientEmail)
	assert.Equal(t, &age, enriched[0].PatientAge)

	assert.Equal(t, models.UnknownPatientName, enriched[1].PatientName)
	assert.Nil(t, enriched[1].PatientAge)
	assert.Nil(t, enriched[1].PatientEmail)
}
