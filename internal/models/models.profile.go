// FilePath: internal/models/models.profile.go
package models

import "time"

// Profile is collaborator data owned by the identity system. VitalHub reads
// it for analytics enrichment and role-scoped profile views; profile CRUD
// itself lives elsewhere.
type Profile struct {
	ID               string    `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	Email            string    `json:"email" db:"email" readxs:"owner,doctor,admin,system" writexs:"system"`
	Role             string    `json:"role" db:"role"`
	Age              *int      `json:"age,omitempty" db:"age"`
	AssignedDoctorID string    `json:"assigned_doctor_id,omitempty" db:"assigned_doctor_id" readxs:"owner,doctor,admin,system" writexs:"system"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)
