// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/RelayDigital/vrem-sub006/internal/authorization"
	"github.com/RelayDigital/vrem-sub006/internal/types"
)

type StorageInterface interface {
	CreateOrganization(ctx context.Context, org *types.Organization) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	ListOrganizationsByUserID(ctx context.Context, userID string) ([]*types.Organization, error)
	AddMember(ctx context.Context, orgID, userID, role string) (string, error)
	GetMembership(ctx context.Context, orgID, userID string) (*types.Membership, error)
	GetOrgContext(ctx context.Context, orgID string, user types.AuthenticatedUser) (authorization.OrgContext, error)

	CreateProject(ctx context.Context, p *types.Project) (*types.Project, error)
	GetProjectByID(ctx context.Context, id string) (*types.Project, error)
	ListProjectsByOrgID(ctx context.Context, orgID string, page, size int64) ([]*types.Project, error)
	UpdateProject(ctx context.Context, p *types.Project, paths []string) error
	DeleteProject(ctx context.Context, id string) error
	AssignProject(ctx context.Context, id, assignment string, userID *string) error
	SetProjectCustomer(ctx context.Context, id string, customerID *string) error
	CreateProjectMessage(ctx context.Context, m *types.ProjectMessage) (*types.ProjectMessage, error)
	ListProjectMessages(ctx context.Context, projectID, channel string) ([]*types.ProjectMessage, error)

	CreateOrganizationCustomer(ctx context.Context, c *types.OrganizationCustomer) (*types.OrganizationCustomer, error)
	GetOrganizationCustomerByID(ctx context.Context, id string) (*types.OrganizationCustomer, error)
	ListOrganizationCustomers(ctx context.Context, orgID string) ([]*types.OrganizationCustomer, error)
	UpdateOrganizationCustomer(ctx context.Context, c *types.OrganizationCustomer, paths []string) error
	DeleteOrganizationCustomer(ctx context.Context, id string) error
	CreateInquiry(ctx context.Context, i *types.Inquiry) (*types.Inquiry, error)
	ListInquiries(ctx context.Context, orgID string) ([]*types.Inquiry, error)
	GetInquiryByID(ctx context.Context, id string) (*types.Inquiry, error)
	MarkInquiryConverted(ctx context.Context, id string) error

	CreateTechnicianProfile(ctx context.Context, p *types.TechnicianProfile) (*types.TechnicianProfile, error)
	GetTechnicianProfileByID(ctx context.Context, id string) (*types.TechnicianProfile, error)
	ListTechnicianProfiles(ctx context.Context) ([]*types.TechnicianProfile, error)
	SetTechnicianStatus(ctx context.Context, id string, status types.TechnicianStatus) error
	RecordJobOutcome(ctx context.Context, id string, onTime bool) error
	ListPreferredVendorIDs(ctx context.Context, orgID string) ([]string, error)
	AddPreferredVendor(ctx context.Context, orgID, companyID string) error
}
