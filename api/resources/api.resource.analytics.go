// FilePath: api/resources/api.resource.analytics.go
package resources

import (
	"net/http"

	"github.com/careloop/vitalhub/internal/errors"
	"github.com/careloop/vitalhub/internal/models"
	"github.com/careloop/vitalhub/internal/vitalservice"
	"github.com/gorilla/mux"
	nuts "github.com/vaudience/go-nuts"
)

// AnalyticsHandlers encapsulates the analytics-related HTTP handlers
type AnalyticsHandlers struct {
	vitalservice *vitalservice.VitalService
}

// @Summary Patient analytics
// @Description Get one patient's windowed readings, alerts and summary stats
// @Tags analytics
// @Produce json
// @Param patientId path string true "Patient ID"
// @Param period query string false "Window: 7days, 30days, 3months, 1year (default: all time)"
// @Success 200 {object} models.PatientAnalytics
// @Failure 401 {object} errors.APIError
// @Router /analytics/{patientId} [get]
// @Security BearerAuth
func (h *AnalyticsHandlers) PatientAnalytics(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID := vars["patientId"]
	requestID := nuts.NID("req", 12)

	var query models.AnalyticsQuery
	if err := queryDecoder.Decode(&query, r.URL.Query()); err != nil {
		respondWithError(w, errors.NewValidationError("invalid query parameters", err).WithRequestID(requestID))
		return
	}

	result, err := h.vitalservice.PatientAnalytics(r.Context(), patientID, query.Period)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// @Summary Aggregate analytics
// @Description Get the all-patients analytics view with enriched alerts and roster counts
// @Tags analytics
// @Produce json
// @Param period query string false "Window: 7days, 30days, 3months, 1year (default: all time)"
// @Success 200 {object} models.AggregateAnalytics
// @Failure 401 {object} errors.APIError
// @Router /analytics/aggregate/all [get]
// @Security BearerAuth
func (h *AnalyticsHandlers) AggregateAnalytics(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var query models.AnalyticsQuery
	if err := queryDecoder.Decode(&query, r.URL.Query()); err != nil {
		respondWithError(w, errors.NewValidationError("invalid query parameters", err).WithRequestID(requestID))
		return
	}

	result, err := h.vitalservice.AggregateAnalytics(r.Context(), query.Period)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}
