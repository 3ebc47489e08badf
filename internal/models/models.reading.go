// FilePath: internal/models/models.reading.go
package models

import (
	"strconv"
	"strings"
	"time"
)

// VitalReading represents one recorded set of vital signs for a patient.
// Every vital field is optional; a reading may carry any non-empty subset.
// Temperature is stored in degrees Celsius.
type VitalReading struct {
	ID            string    `json:"id" db:"id"`
	PatientID     string    `json:"patient_id" db:"patient_id"`
	HeartRate     *float64  `json:"heart_rate,omitempty" db:"heart_rate"`
	BloodPressure string    `json:"blood_pressure,omitempty" db:"blood_pressure"`
	OxygenLevel   *float64  `json:"oxygen_level,omitempty" db:"oxygen_level"`
	Temperature   *float64  `json:"temperature,omitempty" db:"temperature"`
	Notes         string    `json:"notes,omitempty" db:"notes"`
	Timestamp     time.Time `json:"timestamp" db:"timestamp"`
	RecordedBy    string    `json:"recorded_by" db:"recorded_by"`
}

// HasVitals reports whether the reading carries at least one vital value.
func (r *VitalReading) HasVitals() bool {
	return r.HeartRate != nil || r.OxygenLevel != nil || r.Temperature != nil || r.BloodPressure != ""
}

// ParseBloodPressure splits a "systolic/diastolic" string into its parts.
// Returns ok=false for anything that is not two positive numbers.
func ParseBloodPressure(s string) (systolic, diastolic float64, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(s), "/", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	sys, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	dia, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	if sys <= 0 || dia <= 0 {
		return 0, 0, false
	}
	return sys, dia, true
}

// CelsiusToFahrenheit converts a Celsius temperature for display layers.
// All internal thresholds and stored temperatures are Celsius.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9.0/5.0 + 32.0
}
