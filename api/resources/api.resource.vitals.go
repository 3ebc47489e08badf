// FilePath: api/resources/api.resource.vitals.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/careloop/vitalhub/internal/errors"
	"github.com/careloop/vitalhub/internal/models"
	"github.com/careloop/vitalhub/internal/vitalservice"
	"github.com/gorilla/mux"
	nuts "github.com/vaudience/go-nuts"
)

// VitalHandlers encapsulates the vitals-related HTTP handlers
type VitalHandlers struct {
	vitalservice *vitalservice.VitalService
}

// RecordVitalsRequest is the POST /vitals body. Unknown fields are
// rejected at the boundary before anything reaches the classifier.
type RecordVitalsRequest struct {
	PatientID     string   `json:"patient_id"`
	HeartRate     *float64 `json:"heart_rate,omitempty"`
	BloodPressure string   `json:"blood_pressure,omitempty"`
	OxygenLevel   *float64 `json:"oxygen_level,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

// RecordVitalsResponse pairs the stored reading with its derived alerts.
type RecordVitalsResponse struct {
	VitalReading *models.VitalReading `json:"vital_reading"`
	Alerts       []models.Alert       `json:"alerts"`
}

// VitalsListResponse wraps a patient's readings for the list view.
type VitalsListResponse struct {
	Vitals []models.VitalReading `json:"vitals"`
}

// @Summary Record a vital-sign reading
// @Description Record a new reading and derive threshold alerts from it
// @Tags vitals
// @Accept json
// @Produce json
// @Param reading body RecordVitalsRequest true "Vital-sign values"
// @Success 201 {object} RecordVitalsResponse
// @Failure 400 {object} errors.APIError
// @Failure 401 {object} errors.APIError
// @Router /vitals [post]
// @Security BearerAuth
func (h *VitalHandlers) RecordVitals(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req RecordVitalsRequest
	if err := decoder.Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	reading := &models.VitalReading{
		PatientID:     req.PatientID,
		HeartRate:     req.HeartRate,
		BloodPressure: req.BloodPressure,
		OxygenLevel:   req.OxygenLevel,
		Temperature:   req.Temperature,
		Notes:         req.Notes,
	}

	alerts, err := h.vitalservice.RecordReading(r.Context(), reading)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusCreated, RecordVitalsResponse{VitalReading: reading, Alerts: alerts})
}

// @Summary List a patient's readings
// @Description Get a patient's readings, newest first
// @Tags vitals
// @Produce json
// @Param patientId path string true "Patient ID"
// @Param limit query int false "Maximum readings to return (default 50)"
// @Success 200 {object} VitalsListResponse
// @Failure 401 {object} errors.APIError
// @Router /vitals/{patientId} [get]
// @Security BearerAuth
func (h *VitalHandlers) ListVitals(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID := vars["patientId"]
	requestID := nuts.NID("req", 12)

	var query models.VitalsListQuery
	if err := queryDecoder.Decode(&query, r.URL.Query()); err != nil {
		respondWithError(w, errors.NewValidationError("invalid query parameters", err).WithRequestID(requestID))
		return
	}

	vitals, err := h.vitalservice.ListVitals(r.Context(), patientID, query.Limit)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, VitalsListResponse{Vitals: vitals})
}
