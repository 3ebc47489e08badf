// FilePath: internal/repository/kv/kv.vitals.go
package kv

import (
	"context"
	"encoding/json"

	"github.com/careloop/vitalhub/internal/errors"
	"github.com/careloop/vitalhub/internal/kvstore"
	"github.com/careloop/vitalhub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// VitalRepo stores readings as JSON documents in the key-value store.
type VitalRepo struct {
	store kvstore.Store
}

func NewVitalRepository(store kvstore.Store) *VitalRepo {
	return &VitalRepo{store: store}
}

func (r *VitalRepo) Insert(ctx context.Context, reading *models.VitalReading) error {
	data, err := json.Marshal(reading)
	if err != nil {
		return errors.NewStorageError("failed to encode reading", err)
	}

	key := vitalKey(reading.PatientID, reading.Timestamp)
	if err := r.store.Put(ctx, key, data); err != nil {
		return errors.NewStorageError("failed to store reading", err)
	}
	return nil
}

func (r *VitalRepo) ListByPatient(ctx context.Context, patientID string) ([]models.VitalReading, error) {
	return r.list(ctx, vitalPatientPrefix(patientID))
}

func (r *VitalRepo) ListAll(ctx context.Context) ([]models.VitalReading, error) {
	return r.list(ctx, vitalKeyspace)
}

func (r *VitalRepo) list(ctx context.Context, prefix string) ([]models.VitalReading, error) {
	entries, err := r.store.GetByPrefix(ctx, prefix)
	if err != nil {
		return nil, errors.NewStorageError("failed to scan readings", err)
	}

	readings := make([]models.VitalReading, 0, len(entries))
	for key, data := range entries {
		var reading models.VitalReading
		if err := json.Unmarshal(data, &reading); err != nil {
			nuts.L.Warnf("[VitalRepo] Skipping undecodable reading at %s: %v", key, err)
			continue
		}
		readings = append(readings, reading)
	}
	return readings, nil
}
