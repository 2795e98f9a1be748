// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package crm

import (
	"context"

	"github.com/RelayDigital/vrem-sub006/internal/authorization"
	"github.com/RelayDigital/vrem-sub006/internal/types"
)

// StorageInterface defines the storage operations required by the crm
// package. It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetOrgContext(ctx context.Context, orgID string, user types.AuthenticatedUser) (authorization.OrgContext, error)
	CreateOrganizationCustomer(ctx context.Context, c *types.OrganizationCustomer) (*types.OrganizationCustomer, error)
	GetOrganizationCustomerByID(ctx context.Context, id string) (*types.OrganizationCustomer, error)
	ListOrganizationCustomers(ctx context.Context, orgID string) ([]*types.OrganizationCustomer, error)
	UpdateOrganizationCustomer(ctx context.Context, c *types.OrganizationCustomer, paths []string) error
	DeleteOrganizationCustomer(ctx context.Context, id string) error
	CreateInquiry(ctx context.Context, i *types.Inquiry) (*types.Inquiry, error)
	ListInquiries(ctx context.Context, orgID string) ([]*types.Inquiry, error)
	GetInquiryByID(ctx context.Context, id string) (*types.Inquiry, error)
	MarkInquiryConverted(ctx context.Context, id string) error
	CreateProject(ctx context.Context, p *types.Project) (*types.Project, error)
}

// IdentityClientInterface is the slice of the kratos admin client crm
// needs for onboarding converted contacts.
type IdentityClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, email string, accountType string) (string, error)
	CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error)
}

// AuthzInterface is the slice of the authorization engine crm needs. All
// five are org-level operations with no project in scope.
type AuthzInterface interface {
	CanManageCustomers(context.Context, authorization.OrgContext, types.AuthenticatedUser) bool
	CanViewCustomers(context.Context, authorization.OrgContext, types.AuthenticatedUser) bool
	CanViewInquiries(context.Context, authorization.OrgContext, types.AuthenticatedUser) bool
	CanConvertInquiry(context.Context, authorization.OrgContext, types.AuthenticatedUser) bool
	CanCreateOrder(context.Context, authorization.OrgContext, types.AuthenticatedUser) bool
}

// ConversionResult is what an inquiry conversion produces: the new
// customer record plus the one-time onboarding link for the contact.
type ConversionResult struct {
	Customer     *types.OrganizationCustomer `json:"customer"`
	RecoveryLink string                      `json:"recovery_link,omitempty"`
}

// CustomerPatch carries partial updates to a customer record. Nil fields
// are left unchanged.
type CustomerPatch struct {
	Name  *string
	Email *string
}

// OrderParams carries the booking details for a new order.
type OrderParams struct {
	Address       string
	ScheduledDate string
	Notes         string
	CustomerID    *string
}

type ServiceInterface interface {
	ListCustomers(ctx context.Context, orgID string, user types.AuthenticatedUser) ([]*types.OrganizationCustomer, error)
	CreateCustomer(ctx context.Context, orgID string, c *types.OrganizationCustomer, user types.AuthenticatedUser) (*types.OrganizationCustomer, error)
	UpdateCustomer(ctx context.Context, id string, patch CustomerPatch, user types.AuthenticatedUser) (*types.OrganizationCustomer, error)
	DeleteCustomer(ctx context.Context, id string, user types.AuthenticatedUser) error
	SubmitInquiry(ctx context.Context, orgID string, i *types.Inquiry) (*types.Inquiry, error)
	ListInquiries(ctx context.Context, orgID string, user types.AuthenticatedUser) ([]*types.Inquiry, error)
	ConvertInquiry(ctx context.Context, id string, user types.AuthenticatedUser) (*ConversionResult, error)
	CreateOrder(ctx context.Context, orgID string, params OrderParams, user types.AuthenticatedUser) (*types.Project, error)
}
