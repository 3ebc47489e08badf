// FilePath: internal/repository/kv/kv.alerts.go
package kv

import (
	"context"
	"encoding/json"

	"github.com/careloop/vitalhub/internal/errors"
	"github.com/careloop/vitalhub/internal/kvstore"
	"github.com/careloop/vitalhub/internal/models"
	"github.com/careloop/vitalhub/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

// AlertRepo stores alerts as JSON documents in the key-value store. An
// alert's key is fully determined by its patient, timestamp and type, so
// updates land on the original key without any secondary index.
type AlertRepo struct {
	store kvstore.Store
}

func NewAlertRepository(store kvstore.Store) *AlertRepo {
	return &AlertRepo{store: store}
}

func (r *AlertRepo) Insert(ctx context.Context, alert *models.Alert) error {
	return r.put(ctx, alert, "failed to store alert")
}

// Update overwrites the alert at its original key. Only the
// acknowledgement fields ever change after creation.
func (r *AlertRepo) Update(ctx context.Context, alert *models.Alert) error {
	return r.put(ctx, alert, "failed to update alert")
}

func (r *AlertRepo) put(ctx context.Context, alert *models.Alert, msg string) error {
	data, err := json.Marshal(alert)
	if err != nil {
		return errors.NewStorageError("failed to encode alert", err)
	}

	key := alertKey(alert.PatientID, alert.Timestamp, alert.Type)
	if err := r.store.Put(ctx, key, data); err != nil {
		return errors.NewStorageError(msg, err)
	}
	return nil
}

// Get resolves an alert by its ID with a scan over the alert keyspace.
// The store indexes by patient and time, not by ID; alert volumes are
// per-patient event counts, so the scan stays small.
func (r *AlertRepo) Get(ctx context.Context, alertID string) (*models.Alert, error) {
	alerts, err := r.list(ctx, alertKeyspace)
	if err != nil {
		return nil, err
	}
	for i := range alerts {
		if alerts[i].ID == alertID {
			return &alerts[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *AlertRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Alert, error) {
	return r.list(ctx, alertPatientPrefix(patientID))
}

func (r *AlertRepo) ListAll(ctx context.Context) ([]models.Alert, error) {
	return r.list(ctx, alertKeyspace)
}

func (r *AlertRepo) list(ctx context.Context, prefix string) ([]models.Alert, error) {
	entries, err := r.store.GetByPrefix(ctx, prefix)
	if err != nil {
		return nil, errors.NewStorageError("failed to scan alerts", err)
	}

	alerts := make([]models.Alert, 0, len(entries))
	for key, data := range entries {
		var alert models.Alert
		if err := json.Unmarshal(data, &alert); err != nil {
			nuts.L.Warnf("[AlertRepo] Skipping undecodable alert at %s: %v", key, err)
			continue
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}
