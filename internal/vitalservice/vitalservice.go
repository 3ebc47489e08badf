// FilePath: internal/vitalservice/vitalservice.go
package vitalservice

import (
	"context"

	"github.com/careloop/vitalhub/internal/errors"
	"github.com/careloop/vitalhub/internal/lifecycle"
	"github.com/careloop/vitalhub/internal/repository"
)

// VitalService contains all repositories and service-wide dependencies
type VitalService struct {
	Vitals    repository.VitalRepository
	Alerts    repository.AlertRepository
	Profiles  repository.ProfileRepository
	Lifecycle *lifecycle.Emitter
}

// New creates a new VitalService instance
func New(
	vitals repository.VitalRepository,
	alerts repository.AlertRepository,
	profiles repository.ProfileRepository,
) *VitalService {
	return &VitalService{
		Vitals:    vitals,
		Alerts:    alerts,
		Profiles:  profiles,
		Lifecycle: lifecycle.New(),
	}
}

// Validate checks if all required repositories are initialized
func (s *VitalService) Validate() error {
	if s.Vitals == nil {
		return ErrMissingRepository("vitals")
	}
	if s.Alerts == nil {
		return ErrMissingRepository("alerts")
	}
	if s.Profiles == nil {
		return ErrMissingRepository("profiles")
	}
	return nil
}

func ErrMissingRepository(name string) error {
	return errors.NewUnknownError("missing repository: "+name, nil)
}

// GetUserID retrieves the authenticated user id from context.
// The auth middleware stores it; "system" covers unauthenticated paths
// such as edge-device ingestion behind service credentials.
func GetUserID(ctx context.Context) string {
	if id := ctx.Value("user_id"); id != nil {
		if s, ok := id.(string); ok && s != "" {
			return s
		}
	}
	return "system"
}

// GetUserRoles retrieves user roles from context
func GetUserRoles(ctx context.Context) []string {
	if roles := ctx.Value("user_roles"); roles != nil {
		if r, ok := roles.([]string); ok {
			return r
		}
	}
	return []string{"guest"}
}
