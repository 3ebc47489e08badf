// FilePath: api/resources/api.resource.profiles.go
package resources

import (
	"net/http"

	"github.com/careloop/vitalhub/internal/errors"
	"github.com/careloop/vitalhub/internal/models"
	"github.com/careloop/vitalhub/internal/vitalservice"
	"github.com/gorilla/mux"
	"github.com/itsatony/struccy"
	nuts "github.com/vaudience/go-nuts"
)

// ProfileHandlers encapsulates the roster-related HTTP handlers
type ProfileHandlers struct {
	vitalservice *vitalservice.VitalService
}

// @Summary Get a profile
// @Description Get a roster profile with role-based field filtering
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} models.Profile
// @Failure 404 {object} errors.APIError
// @Router /profiles/{id} [get]
// @Security BearerAuth
func (h *ProfileHandlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	requestID := nuts.NID("req", 12)

	profile, err := h.vitalservice.GetProfile(r.Context(), id)
	if err != nil {
		respondWithError(w, errors.NewNotFoundError("profile not found", err).WithRequestID(requestID))
		return
	}

	// Filter fields based on the caller's roles; e.g. email stays hidden
	// from roles without read access.
	roles := vitalservice.GetUserRoles(r.Context())
	filteredMap, err := struccy.StructToMapFieldsWithReadXS(profile, roles)
	if err != nil {
		respondWithError(w, errors.NewUnknownError("failed to filter profile fields", err).WithRequestID(requestID))
		return
	}
	filtered := &models.Profile{}
	if _, err := struccy.MergeMapStringFieldsToStruct(filtered, filteredMap, roles); err != nil {
		respondWithError(w, errors.NewUnknownError("failed to map filtered profile fields", err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, filtered)
}
