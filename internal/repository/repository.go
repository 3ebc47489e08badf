// FilePath: internal/repository/repository.go
package repository

import (
	"context"
	"errors"

	"github.com/careloop/vitalhub/internal/models"
)

var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidInput indicates that the input data is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// VitalRepository defines the interface for reading time-series operations.
// Readings are append-only; there is no update or delete.
type VitalRepository interface {
	Insert(ctx context.Context, reading *models.VitalReading) error
	ListByPatient(ctx context.Context, patientID string) ([]models.VitalReading, error)
	ListAll(ctx context.Context) ([]models.VitalReading, error)
}

// AlertRepository defines the interface for alert records. Alerts are
// append-only except for the acknowledgement fields, which Update
// overwrites in place at the alert's original key.
type AlertRepository interface {
	Insert(ctx context.Context, alert *models.Alert) error
	Get(ctx context.Context, alertID string) (*models.Alert, error)
	Update(ctx context.Context, alert *models.Alert) error
	ListByPatient(ctx context.Context, patientID string) ([]models.Alert, error)
	ListAll(ctx context.Context) ([]models.Alert, error)
}

// ProfileRepository reads the patient/doctor roster. Profile CRUD belongs
// to the identity system; analytics enrichment only ever reads it.
type ProfileRepository interface {
	Get(ctx context.Context, id string) (*models.Profile, error)
	ListByRole(ctx context.Context, role string) ([]*models.Profile, error)
}
