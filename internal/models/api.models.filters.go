// FilePath: internal/models/api.models.filters.go
package models

// AnalyticsQuery holds the query parameters accepted by analytics routes.
// Period is one of 7days, 30days, 3months, 1year; anything else is
// treated as an all-time window.
type AnalyticsQuery struct {
	Period string `schema:"period"`
}

// VitalsListQuery holds the query parameters accepted by the vitals list route.
type VitalsListQuery struct {
	Limit int `schema:"limit"`
}

// Recognized period names.
const (
	Period7Days   = "7days"
	Period30Days  = "30days"
	Period3Months = "3months"
	Period1Year   = "1year"
)
