// FilePath: internal/classifier/classifier_test.go
package classifier

import (
	"testing"

	"github.com/careloop/vitalhub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestClassifyHeartRate(t *testing.T) {
	tests := []struct {
		name     string
		bpm      float64
		alerts   int
		severity models.AlertSeverity
	}{
		{"normal low bound", 60, 0, ""},
		{"normal high bound", 100, 0, ""},
		{"normal mid", 72, 0, ""},
		{"warning low", 55, 1, models.SeverityWarning},
		{"warning high", 105, 1, models.SeverityWarning},
		{"critical low", 45, 1, models.SeverityCritical},
		{"critical high", 130, 1, models.SeverityCritical},
		{"critical low bound excluded", 40, 1, models.SeverityWarning},
		{"critical far low", 39, 1, models.SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drafts := Classify(&models.VitalReading{HeartRate: f(tt.bpm)})
			require.Len(t, drafts, tt.alerts)
			if tt.alerts > 0 {
				assert.Equal(t, models.AlertTypeHeartRate, drafts[0].Type)
				assert.Equal(t, tt.severity, drafts[0].Severity)
			}
		})
	}
}

func TestClassifyOxygenLevel(t *testing.T) {
	tests := []struct {
		name     string
		pct      float64
		alerts   int
		severity models.AlertSeverity
	}{
		{"normal", 97, 0, ""},
		{"normal bound", 95, 0, ""},
		{"warning", 92, 1, models.SeverityWarning},
		{"warning low bound", 90, 1, models.SeverityWarning},
		{"critical", 89, 1, models.SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drafts := Classify(&models.VitalReading{OxygenLevel: f(tt.pct)})
			require.Len(t, drafts, tt.alerts)
			if tt.alerts > 0 {
				assert.Equal(t, models.AlertTypeOxygenLevel, drafts[0].Type)
				assert.Equal(t, tt.severity, drafts[0].Severity)
			}
		})
	}
}

func TestClassifyTemperature(t *testing.T) {
	tests := []struct {
		name     string
		celsius  float64
		alerts   int
		severity models.AlertSeverity
	}{
		{"normal", 36.8, 0, ""},
		{"warning high", 37.8, 1, models.SeverityWarning},
		{"warning low", 35.5, 1, models.SeverityWarning},
		{"critical high", 39, 1, models.SeverityCritical},
		{"critical low", 34.5, 1, models.SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drafts := Classify(&models.VitalReading{Temperature: f(tt.celsius)})
			require.Len(t, drafts, tt.alerts)
			if tt.alerts > 0 {
				assert.Equal(t, models.AlertTypeTemperature, drafts[0].Type)
				assert.Equal(t, tt.severity, drafts[0].Severity)
			}
		})
	}
}

// A value inside the critical band must yield exactly one critical alert,
// never an additional warning for the same vital.
func TestCriticalPrecedesWarning(t *testing.T) {
	drafts := Classify(&models.VitalReading{Temperature: f(39)})
	require.Len(t, drafts, 1)
	assert.Equal(t, models.SeverityCritical, drafts[0].Severity)

	drafts = Classify(&models.VitalReading{HeartRate: f(130)})
	require.Len(t, drafts, 1)
	assert.Equal(t, models.SeverityCritical, drafts[0].Severity)
}

func TestClassifyBloodPressure(t *testing.T) {
	tests := []struct {
		name   string
		bp     string
		alerts int
	}{
		{"normal", "110/70", 0},
		{"systolic high", "135/70", 1},
		{"diastolic high", "110/90", 1},
		{"both low", "85/55", 1},
		{"malformed skipped", "high", 0},
		{"empty skipped", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drafts := Classify(&models.VitalReading{BloodPressure: tt.bp})
			require.Len(t, drafts, tt.alerts)
			if tt.alerts > 0 {
				assert.Equal(t, models.AlertTypeBloodPressure, drafts[0].Type)
				assert.Equal(t, models.SeverityWarning, drafts[0].Severity)
			}
		})
	}
}

func TestClassifyMultipleVitals(t *testing.T) {
	drafts := Classify(&models.VitalReading{HeartRate: f(45), OxygenLevel: f(89)})
	require.Len(t, drafts, 2)

	types := map[models.AlertType]models.AlertSeverity{}
	for _, d := range drafts {
		types[d.Type] = d.Severity
	}
	assert.Equal(t, models.SeverityCritical, types[models.AlertTypeHeartRate])
	assert.Equal(t, models.SeverityCritical, types[models.AlertTypeOxygenLevel])
}

func TestClassifyEmptyReading(t *testing.T) {
	drafts := Classify(&models.VitalReading{})
	assert.Empty(t, drafts)
}

func TestIsNormal(t *testing.T) {
	assert.True(t, IsNormal(&models.VitalReading{}))
	assert.True(t, IsNormal(&models.VitalReading{HeartRate: f(72)}))
	assert.True(t, IsNormal(&models.VitalReading{HeartRate: f(72), OxygenLevel: f(98), Temperature: f(36.6), BloodPressure: "115/75"}))
	assert.False(t, IsNormal(&models.VitalReading{HeartRate: f(72), OxygenLevel: f(92)}))
	assert.False(t, IsNormal(&models.VitalReading{BloodPressure: "140/95"}))
}
