// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package project

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/RelayDigital/vrem-sub006/internal/authorization"
	"github.com/RelayDigital/vrem-sub006/internal/identity"
	"github.com/RelayDigital/vrem-sub006/internal/logging"
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

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/orgs/{orgID}/projects", a.list)
	mux.Post("/api/v0/orgs/{orgID}/projects", a.create)
	mux.Get("/api/v0/projects/{id}", a.get)
	mux.Patch("/api/v0/projects/{id}", a.update)
	mux.Delete("/api/v0/projects/{id}", a.delete)
	mux.Put("/api/v0/projects/{id}/customer", a.changeCustomer)
	mux.Put("/api/v0/projects/{id}/assignments/{assignment}", a.assign)
	mux.Get("/api/v0/projects/{id}/permissions", a.permissions)
	mux.Get("/api/v0/projects/{id}/messages", a.listMessages)
	mux.Post("/api/v0/projects/{id}/messages", a.postMessage)
	mux.Post("/api/v0/projects/{id}/media", a.authorizeUpload)
}

type createProjectRequest struct {
	Address       string  `json:"address" validate:"required"`
	ScheduledDate string  `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	Notes         string  `json:"notes"`
	CustomerID    *string `json:"customer_id"`
}

type updateProjectRequest struct {
	Status        *string `json:"status" validate:"omitempty,oneof=pending scheduled shot editing delivered cancelled"`
	Address       *string `json:"address"`
	ScheduledDate *string `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	Notes         *string `json:"notes"`
}

type changeCustomerRequest struct {
	CustomerID *string `json:"customer_id"`
}

type assignRequest struct {
	UserID *string `json:"user_id"`
}

type postMessageRequest struct {
	Channel string `json:"channel" validate:"required,oneof=team customer"`
	Body    string `json:"body" validate:"required"`
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	user := identity.UserFromContext(r.Context())

	page, size := pageParams(r)
	projects, err := a.service.ListProjects(r.Context(), chi.URLParam(r, "orgID"), page, size, user)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, projects)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	user := identity.UserFromContext(r.Context())

	var req createProjectRequest
	if !a.decode(w, r, &req) {
		return
	}

	p := &types.Project{
		Address:       req.Address,
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
	}
	if req.CustomerID != nil {
		p.Customer = &types.ProjectCustomer{ID: *req.CustomerID}
	}

	created, err := a.service.CreateProject(r.Context(), chi.URLParam(r, "orgID"), p, user)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, created)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	user := identity.UserFromContext(r.Context())

	p, err := a.service.GetProject(r.Context(), chi.URLParam(r, "id"), user)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, p)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	user := identity.UserFromContext(r.Context())

	var req updateProjectRequest
	if !a.decode(w, r, &req) {
		return
	}

	p, err := a.service.UpdateProject(r.Context(), chi.URLParam(r, "id"), ProjectPatch{
		Status:        req.Status,
		Address:       req.Address,
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
	}, user)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, p)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	user := identity.UserFromContext(r.Context())

	if err := a.service.DeleteProject(r.Context(), chi.URLParam(r, "id"), user); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) changeCustomer(w http.ResponseWriter, r *http.Request) {
	user := identity.UserFromContext(r.Context())

	var req changeCustomerRequest
	if !a.decode(w, r, &req) {
		return
	}

	if err := a.service.ChangeCustomer(r.Context(), chi.URLParam(r, "id"), req.CustomerID, user); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) assign(w http.ResponseWriter, r *http.Request) {
	user := identity.UserFromContext(r.Context())

	var assignment string
	switch chi.URLParam(r, "assignment") {
	case "technician":
		assignment = storage.AssignmentTechnician
	case "editor":
		assignment = storage.AssignmentEditor
	case "project-manager":
		assignment = storage.AssignmentProjectManager
	default:
		a.badRequest(w, "unknown assignment")
		return
	}

	var req assignRequest
	if !a.decode(w, r, &req) {
		return
	}

	if err := a.service.Assign(r.Context(), chi.URLParam(r, "id"), assignment, req.UserID, user); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) permissions(w http.ResponseWriter, r *http.Request) {
	user := identity.UserFromContext(r.Context())

	verdicts, err := a.service.GetPermissions(r.Context(), chi.URLParam(r, "id"), user)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, verdicts)
}

func (a *API) listMessages(w http.ResponseWriter, r *http.Request) {
	user := identity.UserFromContext(r.Context())

	channel := authorization.Channel(r.URL.Query().Get("channel"))
	if channel != authorization.ChannelTeam && channel != authorization.ChannelCustomer {
		a.badRequest(w, "channel must be team or customer")
		return
	}

	messages, err := a.service.ListMessages(r.Context(), chi.URLParam(r, "id"), channel, user)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, messages)
}

func (a *API) postMessage(w http.ResponseWriter, r *http.Request) {
	user := identity.UserFromContext(r.Context())

	var req postMessageRequest
	if !a.decode(w, r, &req) {
		return
	}

	msg, err := a.service.PostMessage(r.Context(), chi.URLParam(r, "id"), authorization.Channel(req.Channel), req.Body, user)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, msg)
}

func (a *API) authorizeUpload(w http.ResponseWriter, r *http.Request) {
	user := identity.UserFromContext(r.Context())

	ticket, err := a.service.AuthorizeUpload(r.Context(), chi.URLParam(r, "id"), user)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, map[string]string{"upload_ticket": ticket})
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
		a.logger.Errorf("project handler error: %v", err)
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

func pageParams(r *http.Request) (int64, int64) {
	q := r.URL.Query()
	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	size, _ := strconv.ParseInt(q.Get("size"), 10, 64)
	return page, size
}
