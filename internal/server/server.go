// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/careloop/vitalhub/api"
	"github.com/careloop/vitalhub/api/middleware"
	"github.com/careloop/vitalhub/internal/config"
	"github.com/careloop/vitalhub/internal/database"
	"github.com/careloop/vitalhub/internal/kvstore"
	"github.com/careloop/vitalhub/internal/lifecycle"
	"github.com/careloop/vitalhub/internal/monitoring"
	"github.com/careloop/vitalhub/internal/repository/kv"
	"github.com/careloop/vitalhub/internal/repository/postgres"
	"github.com/careloop/vitalhub/internal/vitalservice"
	"github.com/gorilla/handlers"
	nuts "github.com/vaudience/go-nuts"
)

// Server represents our HTTP server
type Server struct {
	config       *config.Config
	srv          *http.Server
	vitalservice *vitalservice.VitalService
	monitoring   *monitoring.Service
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{
		config: cfg,
	}
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Initialize services
	s.vitalservice = initializeVitalService(s.config)
	s.monitoring = monitoring.NewService(monitoring.Config{
		PrometheusEndpoint: s.config.Monitoring.PrometheusEndpoint,
		LokiEndpoint:       s.config.Monitoring.LokiEndpoint,
	})

	// Set up lifecycle event handlers
	s.setupLifecycleHandlers()

	// Build router with auth and outer middleware
	router := api.NewRouter(s.vitalservice, middleware.KeycloakConfig{
		URL:          s.config.Keycloak.URL,
		Realm:        s.config.Keycloak.Realm,
		ClientID:     s.config.Keycloak.ClientID,
		ClientSecret: s.config.Keycloak.ClientSecret,
	})
	router.SetHealthCheck(s.handleHealth())

	handler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)(router)
	handler = handlers.CombinedLoggingHandler(os.Stdout, handler)

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port),
		Handler:      handler,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	// Start server
	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

// handleHealth returns a simple health check handler
func (s *Server) handleHealth() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","version":"` + nuts.GetVersion() + `"}`))
	}
}

func (s *Server) setupLifecycleHandlers() {
	// Readings never mutate; creation is the only event they have.
	s.vitalservice.Lifecycle.OnEvent(lifecycle.EventReadingRecorded, func(id string) {
		s.monitoring.RecordEvent("reading_recorded", map[string]string{
			"reading_id": id,
		})
	})

	s.vitalservice.Lifecycle.OnEvent(lifecycle.EventAlertCreated, func(id string) {
		nuts.L.Infof("[Lifecycle] Alert %s created", id)
		s.monitoring.RecordEvent("alert_created", map[string]string{
			"alert_id": id,
		})
	})

	s.vitalservice.Lifecycle.OnEvent(lifecycle.EventAlertAcknowledged, func(id string) {
		nuts.L.Infof("[Lifecycle] Alert %s acknowledged", id)
		s.monitoring.RecordEvent("alert_acknowledged", map[string]string{
			"alert_id": id,
		})
	})
}

// initializeVitalService creates and configures the vitals service
func initializeVitalService(cfg *config.Config) *vitalservice.VitalService {
	// The time series lives in the key-value store; the roster in Postgres.
	store := initKVStore(cfg.Redis)
	appDB := initAppDB(cfg.Postgres)

	vitals := kv.NewVitalRepository(store)
	alerts := kv.NewAlertRepository(store)

	profiles, err := postgres.NewProfileRepository(appDB)
	if err != nil {
		nuts.L.Fatalf("[Server] Failed to initialize profile repository: %v", err)
	}

	svc := vitalservice.New(vitals, alerts, profiles)
	if err := svc.Validate(); err != nil {
		nuts.L.Fatalf("[Server] Invalid service wiring: %v", err)
	}
	return svc
}

func initKVStore(cfg config.RedisConfig) kvstore.Store {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := kvstore.NewRedisStore(ctx, cfg.KVConfig())
	if err != nil {
		nuts.L.Fatalf("[Server] Failed to connect to Redis: %v", err)
	}
	return store
}

func initAppDB(cfg database.PostgresConfig) database.DB {
	wrappedDB, err := database.NewPostgresDB(cfg)
	if err != nil {
		nuts.L.Fatalf("[Server] Failed to connect to Postgres: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := wrappedDB.Ping(ctx); err != nil {
		nuts.L.Fatalf("[Server] Failed to ping Postgres: %v", err)
	}
	return wrappedDB
}
