// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package crm manages organization customers and inbound inquiries, and
// turns both into orders.
package crm

import (
	"context"
	"errors"
	"fmt"

	"github.com/RelayDigital/vrem-sub006/internal/logging"
	"github.com/RelayDigital/vrem-sub006/internal/monitoring"
	"github.com/RelayDigital/vrem-sub006/internal/tracing"
	"github.com/RelayDigital/vrem-sub006/internal/types"
)

// ErrForbidden marks a denied permission check. Handlers translate it to
// an HTTP 403.
var ErrForbidden = errors.New("forbidden")

// recoveryLinkTTL is how long a converted contact has to claim their
// account before the link expires.
const recoveryLinkTTL = "72h"

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	authz    AuthzInterface
	identity IdentityClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	identity IdentityClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		authz:    authz,
		identity: identity,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) ListCustomers(ctx context.Context, orgID string, user types.AuthenticatedUser) ([]*types.OrganizationCustomer, error) {
	ctx, span := s.tracer.Start(ctx, "crm.Service.ListCustomers")
	defer span.End()

	octx, err := s.storage.GetOrgContext(ctx, orgID, user)
	if err != nil {
		return nil, err
	}

	if !s.authz.CanViewCustomers(ctx, octx, user) {
		return nil, ErrForbidden
	}

	return s.storage.ListOrganizationCustomers(ctx, orgID)
}

// CreateCustomer adds a customer record to the org's book. When the email
// already belongs to a platform identity the record is linked to it, which
// is what later grants the agent the linked-customer project exception.
func (s *Service) CreateCustomer(ctx context.Context, orgID string, c *types.OrganizationCustomer, user types.AuthenticatedUser) (*types.OrganizationCustomer, error) {
	ctx, span := s.tracer.Start(ctx, "crm.Service.CreateCustomer")
	defer span.End()

	octx, err := s.storage.GetOrgContext(ctx, orgID, user)
	if err != nil {
		return nil, err
	}

	if !s.authz.CanManageCustomers(ctx, octx, user) {
		return nil, ErrForbidden
	}

	c.OrgID = orgID
	if c.UserID == nil && c.Email != "" {
		id, err := s.identity.GetIdentityIDByEmail(ctx, c.Email)
		if err != nil {
			// Lookup failure downgrades to an unlinked record rather
			// than blocking the create.
			s.logger.Warnf("identity lookup failed for customer email: %v", err)
		} else if id != "" {
			c.UserID = &id
		}
	}

	return s.storage.CreateOrganizationCustomer(ctx, c)
}

func (s *Service) UpdateCustomer(ctx context.Context, id string, patch CustomerPatch, user types.AuthenticatedUser) (*types.OrganizationCustomer, error) {
	ctx, span := s.tracer.Start(ctx, "crm.Service.UpdateCustomer")
	defer span.End()

	c, err := s.storage.GetOrganizationCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	octx, err := s.storage.GetOrgContext(ctx, c.OrgID, user)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve org context: %w", err)
	}

	if !s.authz.CanManageCustomers(ctx, octx, user) {
		return nil, ErrForbidden
	}

	var paths []string
	if patch.Name != nil {
		c.Name = *patch.Name
		paths = append(paths, "name")
	}
	if patch.Email != nil {
		c.Email = *patch.Email
		paths = append(paths, "email")
	}

	if err := s.storage.UpdateOrganizationCustomer(ctx, c, paths); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) DeleteCustomer(ctx context.Context, id string, user types.AuthenticatedUser) error {
	ctx, span := s.tracer.Start(ctx, "crm.Service.DeleteCustomer")
	defer span.End()

	c, err := s.storage.GetOrganizationCustomerByID(ctx, id)
	if err != nil {
		return err
	}

	octx, err := s.storage.GetOrgContext(ctx, c.OrgID, user)
	if err != nil {
		return fmt.Errorf("failed to resolve org context: %w", err)
	}

	if !s.authz.CanManageCustomers(ctx, octx, user) {
		return ErrForbidden
	}

	return s.storage.DeleteOrganizationCustomer(ctx, id)
}

// SubmitInquiry records an inbound lead. The endpoint is public: leads
// arrive from unauthenticated site visitors, so no permission gate runs.
func (s *Service) SubmitInquiry(ctx context.Context, orgID string, i *types.Inquiry) (*types.Inquiry, error) {
	ctx, span := s.tracer.Start(ctx, "crm.Service.SubmitInquiry")
	defer span.End()

	i.OrgID = orgID
	return s.storage.CreateInquiry(ctx, i)
}

func (s *Service) ListInquiries(ctx context.Context, orgID string, user types.AuthenticatedUser) ([]*types.Inquiry, error) {
	ctx, span := s.tracer.Start(ctx, "crm.Service.ListInquiries")
	defer span.End()

	octx, err := s.storage.GetOrgContext(ctx, orgID, user)
	if err != nil {
		return nil, err
	}

	if !s.authz.CanViewInquiries(ctx, octx, user) {
		return nil, ErrForbidden
	}

	return s.storage.ListInquiries(ctx, orgID)
}

// ConvertInquiry promotes a lead into a customer record. Conversion is
// one-shot: marking the inquiry converted guards the whole flow, so a
// concurrent second convert fails before creating anything. The contact
// gets a platform identity (reused when the email is already registered)
// and a recovery link to claim it.
func (s *Service) ConvertInquiry(ctx context.Context, id string, user types.AuthenticatedUser) (*ConversionResult, error) {
	ctx, span := s.tracer.Start(ctx, "crm.Service.ConvertInquiry")
	defer span.End()

	inquiry, err := s.storage.GetInquiryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	octx, err := s.storage.GetOrgContext(ctx, inquiry.OrgID, user)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve org context: %w", err)
	}

	if !s.authz.CanConvertInquiry(ctx, octx, user) {
		return nil, ErrForbidden
	}

	if err := s.storage.MarkInquiryConverted(ctx, id); err != nil {
		return nil, err
	}

	identityID, err := s.identity.GetIdentityIDByEmail(ctx, inquiry.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up identity: %w", err)
	}

	var recoveryLink string
	if identityID == "" {
		identityID, err = s.identity.CreateIdentity(ctx, inquiry.Email, string(types.AccountTypeAgent))
		if err != nil {
			return nil, fmt.Errorf("failed to create identity: %w", err)
		}
		link, _, err := s.identity.CreateRecoveryLink(ctx, identityID, recoveryLinkTTL)
		if err != nil {
			// The identity exists and the customer record is still
			// worth keeping; the contact can recover through the
			// normal flow instead.
			s.logger.Warnf("failed to create recovery link: %v", err)
		} else {
			recoveryLink = link
		}
	}

	customer, err := s.storage.CreateOrganizationCustomer(ctx, &types.OrganizationCustomer{
		OrgID:  inquiry.OrgID,
		UserID: &identityID,
		Name:   inquiry.Name,
		Email:  inquiry.Email,
	})
	if err != nil {
		return nil, err
	}

	return &ConversionResult{Customer: customer, RecoveryLink: recoveryLink}, nil
}

// CreateOrder books a new shoot for the org. The project starts in the
// pending state; dispatch staffs it afterwards.
func (s *Service) CreateOrder(ctx context.Context, orgID string, params OrderParams, user types.AuthenticatedUser) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "crm.Service.CreateOrder")
	defer span.End()

	octx, err := s.storage.GetOrgContext(ctx, orgID, user)
	if err != nil {
		return nil, err
	}

	if !s.authz.CanCreateOrder(ctx, octx, user) {
		return nil, ErrForbidden
	}

	p := &types.Project{
		OrgID:         orgID,
		Status:        "pending",
		Address:       params.Address,
		ScheduledDate: params.ScheduledDate,
		Notes:         params.Notes,
	}
	if params.CustomerID != nil {
		p.Customer = &types.ProjectCustomer{ID: *params.CustomerID}
	}

	return s.storage.CreateProject(ctx, p)
}
