// FilePath: internal/monitoring/monitoring.go
package monitoring

import (
	"time"

	nuts "github.com/vaudience/go-nuts"
)

// Config holds monitoring configuration
type Config struct {
	PrometheusEndpoint string
	LokiEndpoint       string
}

// Service provides monitoring functionality
type Service struct {
	config Config
}

// NewService creates a new monitoring service
func NewService(config Config) *Service {
	return &Service{
		config: config,
	}
}

// RecordEvent records a monitored event with labels
func (s *Service) RecordEvent(eventName string, labels map[string]string) {
	// Record event timestamp
	ts := time.Now()

	// Log event
	nuts.L.Infof("[Monitoring] Event %s recorded at %v with labels: %v", eventName, ts, labels)
	// TODO: Implement event recording
	// Here you would typically:
	// 1. Increment Prometheus counter
	// 2. Send event to Loki
	// 3. Update any relevant metrics

	// Example pseudo-code:
	// prometheus.IncrementCounter("vitalhub_alert_events_total", labels)
	// loki.LogEvent(eventName, ts, labels)
}

// GetEventMetrics retrieves metrics for alert lifecycle events
func (s *Service) GetEventMetrics(eventType string, duration time.Duration) (map[string]int64, error) {
	// TODO: Implement event metrics retrieval
	// Here you would typically query Prometheus for event metrics
	// Example: Number of critical alerts in the last hour
	return nil, nil
}
