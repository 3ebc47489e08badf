// FilePath: internal/repository/postgres/postgres.profile.go
package postgres

import (
	"context"
	"database/sql"

	"github.com/careloop/vitalhub/internal/database"
	"github.com/careloop/vitalhub/internal/errors"
	"github.com/careloop/vitalhub/internal/models"
	"github.com/careloop/vitalhub/internal/repository"
)

// ProfileRepo reads the patient/doctor roster. The roster is owned by the
// identity system; this repository only ensures the table exists and reads
// from it.
type ProfileRepo struct {
	PostgresBaseRepo
}

func NewProfileRepository(db database.DB) (*ProfileRepo, error) {
	repo := &ProfileRepo{PostgresBaseRepo{db: db}}
	if err := repo.initializeSchema(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *ProfileRepo) initializeSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			role TEXT NOT NULL,
			age INTEGER,
			assigned_doctor_id TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	if _, err := r.db.GetDB().Exec(query); err != nil {
		return errors.NewStorageError("failed to initialize profiles schema", err)
	}
	return nil
}

func (r *ProfileRepo) Get(ctx context.Context, id string) (*models.Profile, error) {
	profile := &models.Profile{}
	query := `
		SELECT id, name, email, role, age, COALESCE(assigned_doctor_id, '') AS assigned_doctor_id, created_at, updated_at
		FROM profiles
		WHERE id = $1`

	err := r.db.GetDB().GetContext(ctx, profile, query, id)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, errors.NewStorageError("failed to get profile", err)
	}
	return profile, nil
}

func (r *ProfileRepo) ListByRole(ctx context.Context, role string) ([]*models.Profile, error) {
	profiles := []*models.Profile{}
	query := `
		SELECT id, name, email, role, age, COALESCE(assigned_doctor_id, '') AS assigned_doctor_id, created_at, updated_at
		FROM profiles
		WHERE role = $1
		ORDER BY name ASC`

	err := r.db.GetDB().SelectContext(ctx, &profiles, query, role)
	if err != nil {
		return nil, errors.NewStorageError("failed to list profiles", err)
	}
	return profiles, nil
}
