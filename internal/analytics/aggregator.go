// FilePath: internal/analytics/aggregator.go
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/careloop/vitalhub/internal/classifier"
	"github.com/careloop/vitalhub/internal/models"
)

// CutoffFor translates a named period into the cutoff instant now-period.
// An unrecognized or empty period yields the zero time, which means an
// all-time window. Readings and alerts with timestamp >= cutoff are kept.
func CutoffFor(period string, now time.Time) time.Time {
	switch period {
	case models.Period7Days:
		return now.AddDate(0, 0, -7)
	case models.Period30Days:
		return now.AddDate(0, 0, -30)
	case models.Period3Months:
		return now.AddDate(0, -3, 0)
	case models.Period1Year:
		return now.AddDate(-1, 0, 0)
	default:
		return time.Time{}
	}
}

// FilterReadings keeps readings with timestamp at or after cutoff.
func FilterReadings(readings []models.VitalReading, cutoff time.Time) []models.VitalReading {
	filtered := make([]models.VitalReading, 0, len(readings))
	for _, r := range readings {
		if !r.Timestamp.Before(cutoff) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterAlerts keeps alerts with timestamp at or after cutoff.
func FilterAlerts(alerts []models.Alert, cutoff time.Time) []models.Alert {
	filtered := make([]models.Alert, 0, len(alerts))
	for _, a := range alerts {
		if !a.Timestamp.Before(cutoff) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// ComputeStats summarizes an already-filtered window. Averages are means
// over readings that carry the field, rounded to the nearest integer, and
// 0 when no reading carries the field; totalReadings disambiguates.
func ComputeStats(readings []models.VitalReading, alerts []models.Alert) models.AnalyticsStats {
	stats := models.AnalyticsStats{
		TotalReadings: len(readings),
		TotalAlerts:   len(alerts),
	}

	var hrSum, o2Sum float64
	var hrCount, o2Count int
	for i := range readings {
		r := &readings[i]
		if classifier.IsNormal(r) {
			stats.NormalReadings++
		}
		if r.HeartRate != nil {
			hrSum += *r.HeartRate
			hrCount++
		}
		if r.OxygenLevel != nil {
			o2Sum += *r.OxygenLevel
			o2Count++
		}
	}
	if hrCount > 0 {
		stats.AvgHeartRate = int(math.Round(hrSum / float64(hrCount)))
	}
	if o2Count > 0 {
		stats.AvgOxygenLevel = int(math.Round(o2Sum / float64(o2Count)))
	}

	for _, a := range alerts {
		switch a.Severity {
		case models.SeverityCritical:
			stats.CriticalAlerts++
		case models.SeverityWarning:
			stats.WarningAlerts++
		}
	}

	return stats
}

// DailySeries groups readings by calendar day and reduces each day to the
// mean of its present heart-rate and oxygen values, ascending by day.
func DailySeries(readings []models.VitalReading) []models.DailyPoint {
	type bucket struct {
		hrSum, o2Sum     float64
		hrCount, o2Count int
		readings         int
	}

	buckets := make(map[string]*bucket)
	for i := range readings {
		r := &readings[i]
		day := r.Timestamp.Format("2006-01-02")
		b, ok := buckets[day]
		if !ok {
			b = &bucket{}
			buckets[day] = b
		}
		b.readings++
		if r.HeartRate != nil {
			b.hrSum += *r.HeartRate
			b.hrCount++
		}
		if r.OxygenLevel != nil {
			b.o2Sum += *r.OxygenLevel
			b.o2Count++
		}
	}

	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Strings(days)

	series := make([]models.DailyPoint, 0, len(days))
	for _, day := range days {
		b := buckets[day]
		point := models.DailyPoint{Day: day, Readings: b.readings}
		if b.hrCount > 0 {
			point.AvgHeartRate = b.hrSum / float64(b.hrCount)
		}
		if b.o2Count > 0 {
			point.AvgOxygenLevel = b.o2Sum / float64(b.o2Count)
		}
		series = append(series, point)
	}
	return series
}

// SortReadingsDesc orders readings newest first for list views.
func SortReadingsDesc(readings []models.VitalReading) {
	sort.Slice(readings, func(i, j int) bool {
		return readings[i].Timestamp.After(readings[j].Timestamp)
	})
}

// SortAlertsDesc orders alerts newest first for list views.
func SortAlertsDesc(alerts []models.Alert) {
	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].Timestamp.After(alerts[j].Timestamp)
	})
}

// EnrichAlerts joins alerts against the patient roster. Unresolved joins
// fall back to placeholder values instead of failing the request.
func EnrichAlerts(alerts []models.Alert, roster []*models.Profile) []models.EnrichedAlert {
	byID := make(map[string]*models.Profile, len(roster))
	for _, p := range roster {
		byID[p.ID] = p
	}

	enriched := make([]models.EnrichedAlert, 0, len(alerts))
	for _, a := range alerts {
		e := models.EnrichedAlert{Alert: a, PatientName: models.UnknownPatientName}
		if p, ok := byID[a.PatientID]; ok {
			e.PatientName = p.Name
			e.PatientAge = p.Age
			email := p.Email
			e.PatientEmail = &email
		}
		enriched = append(enriched, e)
	}
	return enriched
}
