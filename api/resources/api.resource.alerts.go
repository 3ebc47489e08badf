// FilePath: api/resources/api.resource.alerts.go
package resources

import (
	"net/http"

	"github.com/careloop/vitalhub/internal/models"
	"github.com/careloop/vitalhub/internal/vitalservice"
	"github.com/gorilla/mux"
	nuts "github.com/vaudience/go-nuts"
)

// AlertHandlers encapsulates the alert-related HTTP handlers
type AlertHandlers struct {
	vitalservice *vitalservice.VitalService
}

// AlertsListResponse wraps a patient's alerts for the list view.
type AlertsListResponse struct {
	Alerts []models.Alert `json:"alerts"`
}

// EnrichedAlertsResponse wraps the all-patients alert view.
type EnrichedAlertsResponse struct {
	Alerts []models.EnrichedAlert `json:"alerts"`
}

// AcknowledgeResponse wraps a freshly acknowledged alert.
type AcknowledgeResponse struct {
	Alert *models.Alert `json:"alert"`
}

// @Summary List a patient's alerts
// @Description Get a patient's alerts, newest first
// @Tags alerts
// @Produce json
// @Param patientId path string true "Patient ID"
// @Success 200 {object} AlertsListResponse
// @Failure 401 {object} errors.APIError
// @Router /alerts/{patientId} [get]
// @Security BearerAuth
func (h *AlertHandlers) ListPatientAlerts(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID := vars["patientId"]
	requestID := nuts.NID("req", 12)

	alerts, err := h.vitalservice.ListPatientAlerts(r.Context(), patientID)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, AlertsListResponse{Alerts: alerts})
}

// @Summary List all alerts
// @Description Get every patient's alerts enriched with roster fields, newest first
// @Tags alerts
// @Produce json
// @Success 200 {object} EnrichedAlertsResponse
// @Failure 401 {object} errors.APIError
// @Router /alerts/all [get]
// @Security BearerAuth
func (h *AlertHandlers) ListAllAlerts(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	alerts, err := h.vitalservice.ListAllAlerts(r.Context())
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, EnrichedAlertsResponse{Alerts: alerts})
}

// @Summary Acknowledge an alert
// @Description Mark an alert as acknowledged by the calling user
// @Tags alerts
// @Produce json
// @Param alertId path string true "Alert ID"
// @Success 200 {object} AcknowledgeResponse
// @Failure 404 {object} errors.APIError
// @Failure 401 {object} errors.APIError
// @Router /alerts/{alertId}/acknowledge [put]
// @Security BearerAuth
func (h *AlertHandlers) AcknowledgeAlert(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	alertID := vars["alertId"]
	requestID := nuts.NID("req", 12)

	actorID := vitalservice.GetUserID(r.Context())
	alert, err := h.vitalservice.Acknowledge(r.Context(), alertID, actorID)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, AcknowledgeResponse{Alert: alert})
}
