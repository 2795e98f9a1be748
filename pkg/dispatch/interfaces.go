// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dispatch

import (
	"context"

	"github.com/RelayDigital/vrem-sub006/internal/authorization"
	"github.com/RelayDigital/vrem-sub006/internal/ranking"
	"github.com/RelayDigital/vrem-sub006/internal/types"
)

// StorageInterface defines the storage operations required by the dispatch
// package. It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetOrgContext(ctx context.Context, orgID string, user types.AuthenticatedUser) (authorization.OrgContext, error)
	GetProjectByID(ctx context.Context, id string) (*types.Project, error)
	CreateTechnicianProfile(ctx context.Context, p *types.TechnicianProfile) (*types.TechnicianProfile, error)
	GetTechnicianProfileByID(ctx context.Context, id string) (*types.TechnicianProfile, error)
	ListTechnicianProfiles(ctx context.Context) ([]*types.TechnicianProfile, error)
	SetTechnicianStatus(ctx context.Context, id string, status types.TechnicianStatus) error
	RecordJobOutcome(ctx context.Context, id string, onTime bool) error
	ListPreferredVendorIDs(ctx context.Context, orgID string) ([]string, error)
	AddPreferredVendor(ctx context.Context, orgID, companyID string) error
}

// AuthzInterface is the slice of the authorization engine dispatch needs.
type AuthzInterface interface {
	CanEditProject(context.Context, authorization.OrgContext, *types.Project, types.AuthenticatedUser) bool
	CanCreateOrder(context.Context, authorization.OrgContext, types.AuthenticatedUser) bool
	CanManageCustomers(context.Context, authorization.OrgContext, types.AuthenticatedUser) bool
}

// JobParams carries the caller-supplied half of a ranking request. The
// project (or the search org) supplies the rest.
type JobParams struct {
	Location      types.GeoPoint
	ScheduledDate string
	MediaTypes    []types.MediaType
}

type ServiceInterface interface {
	RankForProject(ctx context.Context, projectID string, params JobParams, user types.AuthenticatedUser) ([]ranking.Ranking, error)
	Search(ctx context.Context, orgID string, params JobParams, priority []ranking.SortKey, user types.AuthenticatedUser) ([]ranking.Ranking, error)
	CreateProfile(ctx context.Context, p *types.TechnicianProfile) (*types.TechnicianProfile, error)
	GetProfile(ctx context.Context, id string) (*types.TechnicianProfile, error)
	ListProfiles(ctx context.Context) ([]*types.TechnicianProfile, error)
	SetStatus(ctx context.Context, id string, status types.TechnicianStatus) error
	RecordOutcome(ctx context.Context, id string, onTime bool) error
	AddPreferredVendor(ctx context.Context, orgID, companyID string, user types.AuthenticatedUser) error
}
