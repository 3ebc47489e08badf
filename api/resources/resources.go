// FilePath: api/resources/resources.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/careloop/vitalhub/internal/errors"
	"github.com/careloop/vitalhub/internal/vitalservice"
	"github.com/gorilla/schema"
	nuts "github.com/vaudience/go-nuts"
)

// queryDecoder maps URL query parameters onto the typed filter structs.
var queryDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// Resources holds all HTTP resource handlers
type Resources struct {
	Vitals      *VitalHandlers
	Alerts      *AlertHandlers
	Analytics   *AnalyticsHandlers
	Profiles    *ProfileHandlers
	HealthCheck func(w http.ResponseWriter, r *http.Request)
	Metrics     func(w http.ResponseWriter, r *http.Request)
}

// NewResources creates a new Resources instance
func NewResources(svc *vitalservice.VitalService) *Resources {
	return &Resources{
		Vitals:    &VitalHandlers{vitalservice: svc},
		Alerts:    &AlertHandlers{vitalservice: svc},
		Analytics: &AnalyticsHandlers{vitalservice: svc},
		Profiles:  &ProfileHandlers{vitalservice: svc},
		HealthCheck: func(w http.ResponseWriter, r *http.Request) {
			respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		},
		Metrics: func(w http.ResponseWriter, r *http.Request) {
			respondWithJSON(w, http.StatusOK, map[string]string{"status": "not implemented"})
		},
	}
}

// SetHealthCheck sets the health check handler
func (r *Resources) SetHealthCheck(h func(w http.ResponseWriter, r *http.Request)) {
	r.HealthCheck = h
}

// SetMetrics sets the metrics handler
func (r *Resources) SetMetrics(h func(w http.ResponseWriter, r *http.Request)) {
	r.Metrics = h
}

// Helper functions

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	nuts.L.Errorf("[API] %s", err.Error())
}

// respondWithServiceError maps service-layer failures onto the wire,
// preserving typed APIErrors and wrapping anything else as unknown.
func respondWithServiceError(w http.ResponseWriter, err error, requestID string) {
	if apiErr, ok := err.(*errors.APIError); ok {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}
	respondWithError(w, errors.NewUnknownError("unexpected failure", err).WithRequestID(requestID))
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
