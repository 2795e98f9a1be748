// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package crm

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

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
	mux.Get("/api/v0/orgs/{orgID}/customers", a.listCustomers)
	mux.Post("/api/v0/orgs/{orgID}/customers", a.createCustomer)
	mux.Put("/api/v0/customers/{id}", a.updateCustomer)
	mux.Delete("/api/v0/customers/{id}", a.deleteCustomer)
	mux.Get("/api/v0/orgs/{orgID}/inquiries", a.listInquiries)
	mux.Post("/api/v0/orgs/{orgID}/inquiries", a.submitInquiry)
	mux.Post("/api/v0/inquiries/{id}/convert", a.convertInquiry)
	mux.Post("/api/v0/orgs/{orgID}/orders", a.createOrder)
}

type createCustomerRequest struct {
	Name   string  `json:"name" validate:"required"`
	Email  string  `json:"email" validate:"omitempty,email"`
	UserID *string `json:"user_id"`
}

type updateCustomerRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type submitInquiryRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type createOrderRequest struct {
	Address       string  `json:"address" validate:"required"`
	ScheduledDate string  `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	Notes         string  `json:"notes"`
	CustomerID    *string `json:"customer_id"`
}

func (a *API) listCustomers(w http.ResponseWriter, r *http.Request) {
	user := identity.UserFromContext(r.Context())

	customers, err := a.service.ListCustomers(r.Context(), chi.URLParam(r, "orgID"), user)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, customers)
}

func (a *API) createCustomer(w http.ResponseWriter, r *http.Request) {
	user := identity.UserFromContext(r.Context())

	var req createCustomerRequest
	if !a.decode(w, r, &req) {
		return
	}

	customer, err := a.service.CreateCustomer(r.Context(), chi.URLParam(r, "orgID"), &types.OrganizationCustomer{
		Name:   req.Name,
		Email:  req.Email,
		UserID: req.UserID,
	}, user)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, customer)
}

func (a *API) updateCustomer(w http.ResponseWriter, r *http.Request) {
	user := identity.UserFromContext(r.Context())

	var req updateCustomerRequest
	if !a.decode(w, r, &req) {
		return
	}

	customer, err := a.service.UpdateCustomer(r.Context(), chi.URLParam(r, "id"), CustomerPatch{
		Name:  req.Name,
		Email: req.Email,
	}, user)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, customer)
}

func (a *API) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	user := identity.UserFromContext(r.Context())

	if err := a.service.DeleteCustomer(r.Context(), chi.URLParam(r, "id"), user); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listInquiries(w http.ResponseWriter, r *http.Request) {
	user := identity.UserFromContext(r.Context())

	inquiries, err := a.service.ListInquiries(r.Context(), chi.URLParam(r, "orgID"), user)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, inquiries)
}

func (a *API) submitInquiry(w http.ResponseWriter, r *http.Request) {
	var req submitInquiryRequest
	if !a.decode(w, r, &req) {
		return
	}

	inquiry, err := a.service.SubmitInquiry(r.Context(), chi.URLParam(r, "orgID"), &types.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, inquiry)
}

func (a *API) convertInquiry(w http.ResponseWriter, r *http.Request) {
	user := identity.UserFromContext(r.Context())

	result, err := a.service.ConvertInquiry(r.Context(), chi.URLParam(r, "id"), user)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, result)
}

func (a *API) createOrder(w http.ResponseWriter, r *http.Request) {
	user := identity.UserFromContext(r.Context())

	var req createOrderRequest
	if !a.decode(w, r, &req) {
		return
	}

	project, err := a.service.CreateOrder(r.Context(), chi.URLParam(r, "orgID"), OrderParams{
		Address:       req.Address,
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
		CustomerID:    req.CustomerID,
	}, user)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, project)
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
	case errors.Is(err, storage.ErrDuplicateKey):
		a.writeJSON(w, http.StatusConflict, map[string]interface{}{
			"status": http.StatusConflict, "message": "already converted",
		})
	case errors.Is(err, storage.ErrForeignKeyViolation):
		a.badRequest(w, "referenced resource does not exist")
	default:
		a.logger.Errorf("crm handler error: %v", err)
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
