// FilePath: api/api.router.go
package api

import (
	"net/http"

	"github.com/careloop/vitalhub/api/middleware"
	"github.com/careloop/vitalhub/api/resources"
	"github.com/careloop/vitalhub/internal/vitalservice"
	"github.com/gorilla/mux"
)

type Router struct {
	router    *mux.Router
	auth      *middleware.KeycloakMiddleware
	resources *resources.Resources
}

func NewRouter(svc *vitalservice.VitalService, keycloakConfig middleware.KeycloakConfig) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		auth:      middleware.NewKeycloakMiddleware(keycloakConfig),
		resources: resources.NewResources(svc),
	}

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	// API version prefix
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Public routes. Registered through closures so the handlers can be
	// swapped in after construction.
	api.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		r.resources.HealthCheck(w, req)
	}).Methods(http.MethodGet)
	api.HandleFunc("/metrics", func(w http.ResponseWriter, req *http.Request) {
		r.resources.Metrics(w, req)
	}).Methods(http.MethodGet)

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.auth.Authenticate)

	// Vitals
	vitals := protected.PathPrefix("/vitals").Subrouter()
	vitals.HandleFunc("", r.resources.Vitals.RecordVitals).Methods(http.MethodPost)
	vitals.HandleFunc("/{patientId}", r.resources.Vitals.ListVitals).Methods(http.MethodGet)

	// Alerts. The literal /all route must precede the {patientId} catch-all.
	alerts := protected.PathPrefix("/alerts").Subrouter()
	alerts.HandleFunc("/all", r.resources.Alerts.ListAllAlerts).Methods(http.MethodGet)
	alerts.HandleFunc("/{patientId}", r.resources.Alerts.ListPatientAlerts).Methods(http.MethodGet)
	alerts.HandleFunc("/{alertId}/acknowledge", r.resources.Alerts.AcknowledgeAlert).Methods(http.MethodPut)

	// Analytics
	analytics := protected.PathPrefix("/analytics").Subrouter()
	analytics.HandleFunc("/aggregate/all", r.resources.Analytics.AggregateAnalytics).Methods(http.MethodGet)
	analytics.HandleFunc("/{patientId}", r.resources.Analytics.PatientAnalytics).Methods(http.MethodGet)

	// Profiles
	profiles := protected.PathPrefix("/profiles").Subrouter()
	profiles.HandleFunc("/{id}", r.resources.Profiles.GetProfile).Methods(http.MethodGet)
}

// SetHealthCheck wires the public health handler before routes are served.
func (r *Router) SetHealthCheck(h func(w http.ResponseWriter, req *http.Request)) {
	r.resources.SetHealthCheck(h)
}

// SetMetrics wires the public metrics handler before routes are served.
func (r *Router) SetMetrics(h func(w http.ResponseWriter, req *http.Request)) {
	r.resources.SetMetrics(h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
