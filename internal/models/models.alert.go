// FilePath: internal/models/models.alert.go
package models

import "time"

type AlertType string

const (
	AlertTypeHeartRate     AlertType = "HeartRate"
	AlertTypeOxygenLevel   AlertType = "OxygenLevel"
	AlertTypeTemperature   AlertType = "Temperature"
	AlertTypeBloodPressure AlertType = "BloodPressure"
)

type AlertSeverity string

const (
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// Alert flags one abnormal vital from one reading. Alerts are only ever
// created as a side effect of reading ingestion and are never deleted.
// The single meaningful mutation is the acknowledgement transition.
type Alert struct {
	ID             string        `json:"id" db:"id"`
	PatientID      string        `json:"patient_id" db:"patient_id"`
	ReadingID      string        `json:"reading_id" db:"reading_id"`
	Type           AlertType     `json:"type" db:"type"`
	Severity       AlertSeverity `json:"severity" db:"severity"`
	Value          string        `json:"value" db:"value"`
	Message        string        `json:"message" db:"message"`
	Timestamp      time.Time     `json:"timestamp" db:"timestamp"`
	Acknowledged   bool          `json:"acknowledged" db:"acknowledged"`
	AcknowledgedBy string        `json:"acknowledged_by,omitempty" db:"acknowledged_by"`
	AcknowledgedAt *time.Time    `json:"acknowledged_at,omitempty" db:"acknowledged_at"`
}

// AlertDraft is an alert before the caller stamps identity and timestamp.
// The classifier produces drafts; the ingestion path fills in the rest.
type AlertDraft struct {
	Type     AlertType     `json:"type"`
	Severity AlertSeverity `json:"severity"`
	Value    string        `json:"value"`
	Message  string        `json:"message"`
}

// EnrichedAlert is an alert joined against the patient roster for the
// all-patients view. Unresolved joins carry placeholder values.
type EnrichedAlert struct {
	Alert
	PatientName  string  `json:"patient_name"`
	PatientAge   *int    `json:"patient_age"`
	PatientEmail *string `json:"patient_email"`
}

// UnknownPatientName is used when an alert's patient is missing from the roster.
const UnknownPatientName = "Unknown Patient"
