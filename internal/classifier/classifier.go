// FilePath: internal/classifier/classifier.go
package classifier

import (
	"fmt"
	"strconv"

	"github.com/careloop/vitalhub/internal/models"
)

// Threshold bands. Temperature bounds are degrees Celsius; display layers
// convert, thresholds never do.
const (
	HeartRateNormalLow    = 60.0
	HeartRateNormalHigh   = 100.0
	HeartRateCriticalLow  = 40.0
	HeartRateCriticalHigh = 120.0

	OxygenNormalMin   = 95.0
	OxygenCriticalMin = 90.0

	TemperatureNormalLow    = 36.1
	TemperatureNormalHigh   = 37.2
	TemperatureCriticalLow  = 35.0
	TemperatureCriticalHigh = 38.5

	SystolicNormalLow   = 90.0
	SystolicNormalHigh  = 120.0
	DiastolicNormalLow  = 60.0
	DiastolicNormalHigh = 80.0
)

// Classify evaluates one reading against the threshold bands and returns
// one alert draft per abnormal vital. Absent fields are skipped, a fully
// normal reading yields an empty slice, and a value inside a critical band
// never also produces a warning for the same vital. Classify is pure and
// never fails.
func Classify(r *models.VitalReading) []models.AlertDraft {
	drafts := []models.AlertDraft{}

	if r.HeartRate != nil {
		if draft, abnormal := classifyHeartRate(*r.HeartRate); abnormal {
			drafts = append(drafts, draft)
		}
	}
	if r.OxygenLevel != nil {
		if draft, abnormal := classifyOxygenLevel(*r.OxygenLevel); abnormal {
			drafts = append(drafts, draft)
		}
	}
	if r.Temperature != nil {
		if draft, abnormal := classifyTemperature(*r.Temperature); abnormal {
			drafts = append(drafts, draft)
		}
	}
	if r.BloodPressure != "" {
		if draft, abnormal := classifyBloodPressure(r.BloodPressure); abnormal {
			drafts = append(drafts, draft)
		}
	}

	return drafts
}

// IsNormal reports whether every vital the reading carries is inside its
// normal band. Absent fields count as normal; a reading with no vitals at
// all is fully normal.
func IsNormal(r *models.VitalReading) bool {
	if r.HeartRate != nil {
		if *r.HeartRate < HeartRateNormalLow || *r.HeartRate > HeartRateNormalHigh {
			return false
		}
	}
	if r.OxygenLevel != nil {
		if *r.OxygenLevel < OxygenNormalMin {
			return false
		}
	}
	if r.Temperature != nil {
		if *r.Temperature < TemperatureNormalLow || *r.Temperature > TemperatureNormalHigh {
			return false
		}
	}
	if r.BloodPressure != "" {
		if sys, dia, ok := models.ParseBloodPressure(r.BloodPressure); ok {
			if !bloodPressureNormal(sys, dia) {
				return false
			}
		}
	}
	return true
}

func classifyHeartRate(bpm float64) (models.AlertDraft, bool) {
	value := formatValue(bpm)
	switch {
	case bpm < HeartRateCriticalLow || bpm > HeartRateCriticalHigh:
		return models.AlertDraft{
			Type:     models.AlertTypeHeartRate,
			Severity: models.SeverityCritical,
			Value:    value,
			Message:  fmt.Sprintf("Critical heart rate: %s bpm", value),
		}, true
	case bpm < HeartRateNormalLow || bpm > HeartRateNormalHigh:
		return models.AlertDraft{
			Type:     models.AlertTypeHeartRate,
			Severity: models.SeverityWarning,
			Value:    value,
			Message:  fmt.Sprintf("Abnormal heart rate: %s bpm", value),
		}, true
	}
	return models.AlertDraft{}, false
}

func classifyOxygenLevel(pct float64) (models.AlertDraft, bool) {
	value := formatValue(pct)
	switch {
	case pct < OxygenCriticalMin:
		return models.AlertDraft{
			Type:     models.AlertTypeOxygenLevel,
			Severity: models.SeverityCritical,
			Value:    value,
			Message:  fmt.Sprintf("Critical oxygen level: %s%%", value),
		}, true
	case pct < OxygenNormalMin:
		return models.AlertDraft{
			Type:     models.AlertTypeOxygenLevel,
			Severity: models.SeverityWarning,
			Value:    value,
			Message:  fmt.Sprintf("Low oxygen level: %s%%", value),
		}, true
	}
	return models.AlertDraft{}, false
}

func classifyTemperature(celsius float64) (models.AlertDraft, bool) {
	value := formatValue(celsius)
	switch {
	case celsius < TemperatureCriticalLow || celsius > TemperatureCriticalHigh:
		return models.AlertDraft{
			Type:     models.AlertTypeTemperature,
			Severity: models.SeverityCritical,
			Value:    value,
			Message:  fmt.Sprintf("Critical temperature: %s°C", value),
		}, true
	case celsius < TemperatureNormalLow || celsius > TemperatureNormalHigh:
		return models.AlertDraft{
			Type:     models.AlertTypeTemperature,
			Severity: models.SeverityWarning,
			Value:    value,
			Message:  fmt.Sprintf("Abnormal temperature: %s°C", value),
		}, true
	}
	return models.AlertDraft{}, false
}

// classifyBloodPressure has no critical band; the ingestion path only
// distinguishes in-range from out-of-range. Malformed values are skipped
// rather than failing classification.
func classifyBloodPressure(raw string) (models.AlertDraft, bool) {
	sys, dia, ok := models.ParseBloodPressure(raw)
	if !ok {
		return models.AlertDraft{}, false
	}
	if bloodPressureNormal(sys, dia) {
		return models.AlertDraft{}, false
	}
	value := fmt.Sprintf("%s/%s", formatValue(sys), formatValue(dia))
	return models.AlertDraft{
		Type:     models.AlertTypeBloodPressure,
		Severity: models.SeverityWarning,
		Value:    value,
		Message:  fmt.Sprintf("Blood pressure out of range: %s", value),
	}, true
}

func bloodPressureNormal(sys, dia float64) bool {
	return sys >= SystolicNormalLow && sys <= SystolicNormalHigh &&
		dia >= DiastolicNormalLow && dia <= DiastolicNormalHigh
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
