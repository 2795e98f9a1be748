// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dispatch

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/RelayDigital/vrem-sub006/internal/identity"
	"github.com/RelayDigital/vrem-sub006/internal/logging"
	"github.com/RelayDigital/vrem-sub006/internal/ranking"
	"github.com/RelayDigital/vrem-sub006/internal/storage"
	"github.com/RelayDigital/vrem-sub006/internal/types"
)

var validate = validator.New()

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

// RegisterEndpoints mounts the ranking surface. Roster administration is
// registered separately so the router can wrap it in bearer auth.
func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/projects/{id}/rankings", a.rankForProject)
	mux.Post("/api/v0/technicians/search", a.search)
	mux.Post("/api/v0/orgs/{orgID}/preferred-vendors", a.addPreferredVendor)
}

// RegisterRosterEndpoints mounts the internal roster administration
// surface on the given router.
func (a *API) RegisterRosterEndpoints(r chi.Router) {
	r.Get("/api/v0/technicians", a.listProfiles)
	r.Post("/api/v0/technicians", a.createProfile)
	r.Get("/api/v0/technicians/{id}", a.getProfile)
	r.Put("/api/v0/technicians/{id}/status", a.setStatus)
	r.Post("/api/v0/technicians/{id}/outcomes", a.recordOutcome)
}

type jobParamsRequest struct {
	Lat           *float64          `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng           *float64          `json:"lng" validate:"required,gte=-180,lte=180"`
	ScheduledDate string            `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	MediaTypes    []types.MediaType `json:"media_types" validate:"dive,oneof=photo video aerial twilight"`
}

func (r jobParamsRequest) params() JobParams {
	return JobParams{
		Location:      types.GeoPoint{Lat: *r.Lat, Lng: *r.Lng},
		ScheduledDate: r.ScheduledDate,
		MediaTypes:    r.MediaTypes,
	}
}

type searchRequest struct {
	OrgID         string            `json:"org_id" validate:"required"`
	Lat           *float64          `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng           *float64          `json:"lng" validate:"required,gte=-180,lte=180"`
	ScheduledDate string            `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	MediaTypes    []types.MediaType `json:"media_types" validate:"dive,oneof=photo video aerial twilight"`
	Sort          []string          `json:"sort" validate:"dive,oneof=availability distance reliability skillMatch preferred score"`
}

type createProfileRequest struct {
	Name             string                    `json:"name" validate:"required"`
	CompanyID        string                    `json:"company_id" validate:"required"`
	Lat              float64                   `json:"lat" validate:"gte=-90,lte=90"`
	Lng              float64                   `json:"lng" validate:"gte=-180,lte=180"`
	Availability     []types.AvailabilityEntry `json:"availability"`
	Skills           types.SkillSet            `json:"skills"`
	PreferredClients []string                  `json:"preferred_clients"`
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

type recordOutcomeRequest struct {
	OnTime *bool `json:"on_time" validate:"required"`
}

type addPreferredVendorRequest struct {
	CompanyID string `json:"company_id" validate:"required"`
}

func (a *API) rankForProject(w http.ResponseWriter, r *http.Request) {
	user := identity.UserFromContext(r.Context())

	var req jobParamsRequest
	if !a.decode(w, r, &req) {
		return
	}

	rankings, err := a.service.RankForProject(r.Context(), chi.URLParam(r, "id"), req.params(), user)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, rankings)
}

func (a *API) search(w http.ResponseWriter, r *http.Request) {
	user := identity.UserFromContext(r.Context())

	var req searchRequest
	if !a.decode(w, r, &req) {
		return
	}

	priority := make([]ranking.SortKey, 0, len(req.Sort))
	for _, key := range req.Sort {
		priority = append(priority, ranking.SortKey(key))
	}

	params := JobParams{
		Location:      types.GeoPoint{Lat: *req.Lat, Lng: *req.Lng},
		ScheduledDate: req.ScheduledDate,
		MediaTypes:    req.MediaTypes,
	}

	rankings, err := a.service.Search(r.Context(), req.OrgID, params, priority, user)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, rankings)
}

func (a *API) listProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := a.service.ListProfiles(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, profiles)
}

func (a *API) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := a.service.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, profile)
}

func (a *API) createProfile(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if !a.decode(w, r, &req) {
		return
	}

	profile, err := a.service.CreateProfile(r.Context(), &types.TechnicianProfile{
		Name:             req.Name,
		CompanyID:        req.CompanyID,
		HomeLocation:     types.GeoPoint{Lat: req.Lat, Lng: req.Lng},
		Availability:     req.Availability,
		Skills:           req.Skills,
		PreferredClients: req.PreferredClients,
	})
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, profile)
}

func (a *API) setStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if !a.decode(w, r, &req) {
		return
	}

	if err := a.service.SetStatus(r.Context(), chi.URLParam(r, "id"), types.TechnicianStatus(req.Status)); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) recordOutcome(w http.ResponseWriter, r *http.Request) {
	var req recordOutcomeRequest
	if !a.decode(w, r, &req) {
		return
	}

	if err := a.service.RecordOutcome(r.Context(), chi.URLParam(r, "id"), *req.OnTime); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) addPreferredVendor(w http.ResponseWriter, r *http.Request) {
	user := identity.UserFromContext(r.Context())

	var req addPreferredVendorRequest
	if !a.decode(w, r, &req) {
		return
	}

	if err := a.service.AddPreferredVendor(r.Context(), chi.URLParam(r, "orgID"), req.CompanyID, user); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		a.badRequest(w, "invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		a.badRequest(w, err.Error())
		return false
	}
	return true
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrForbidden):
		a.writeJSON(w, http.StatusForbidden, map[string]interface{}{
			"status": http.StatusForbidden, "message": "forbidden",
		})
	case errors.Is(err, storage.ErrNotFound):
		a.writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"status": http.StatusNotFound, "message": "not found",
		})
	case errors.Is(err, storage.ErrForeignKeyViolation):
		a.badRequest(w, "referenced resource does not exist")
	default:
		a.logger.Errorf("dispatch handler error: %v", err)
		a.writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"status": http.StatusInternalServerError, "message": "internal error",
		})
	}
}

func (a *API) badRequest(w http.ResponseWriter, message string) {
	a.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"status": http.StatusBadRequest, "message": message,
	})
}

func (a *API) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
