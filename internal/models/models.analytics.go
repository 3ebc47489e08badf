// FilePath: internal/models/models.analytics.go
package models

// AnalyticsStats summarizes a filtered window of readings and alerts.
// Averages are arithmetic means over readings that carry the field,
// rounded to the nearest integer; 0 means no reading carried the field.
type AnalyticsStats struct {
	TotalReadings  int `json:"total_readings"`
	NormalReadings int `json:"normal_readings"`
	TotalAlerts    int `json:"total_alerts"`
	CriticalAlerts int `json:"critical_alerts"`
	WarningAlerts  int `json:"warning_alerts"`
	AvgHeartRate   int `json:"avg_heart_rate"`
	AvgOxygenLevel int `json:"avg_oxygen_level"`
	TotalPatients  int `json:"total_patients,omitempty"`
}

// DailyPoint is one calendar day of the per-day analytics series.
// Day is a "2006-01-02" label; the series is ordered ascending by day.
type DailyPoint struct {
	Day            string  `json:"day"`
	Readings       int     `json:"readings"`
	AvgHeartRate   float64 `json:"avg_heart_rate"`
	AvgOxygenLevel float64 `json:"avg_oxygen_level"`
}

// PatientAnalytics is the per-patient analytics response payload.
type PatientAnalytics struct {
	Vitals []VitalReading `json:"vitals"`
	Alerts []Alert        `json:"alerts"`
	Stats  AnalyticsStats `json:"stats"`
	Daily  []DailyPoint   `json:"daily"`
}

// AggregateAnalytics is the all-patients analytics response payload.
type AggregateAnalytics struct {
	Vitals   []VitalReading  `json:"vitals"`
	Alerts   []EnrichedAlert `json:"alerts"`
	Stats    AnalyticsStats  `json:"stats"`
	Patients []*Profile      `json:"patients"`
	Daily    []DailyPoint    `json:"daily"`
}
