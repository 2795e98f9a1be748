// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package project

import (
	"context"

	"github.com/RelayDigital/vrem-sub006/internal/authorization"
	"github.com/RelayDigital/vrem-sub006/internal/types"
	"github.com/RelayDigital/vrem-sub006/pkg/permissions"
)

// StorageInterface defines the storage operations required by the project package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
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
}

// AuthzInterface is the slice of the authorization engine the project
// service consults. Checks always run against a freshly resolved org
// context, never one cached from an earlier request.
type AuthzInterface interface {
	CanViewProject(context.Context, authorization.OrgContext, *types.Project, types.AuthenticatedUser) bool
	CanEditProject(context.Context, authorization.OrgContext, *types.Project, types.AuthenticatedUser) bool
	CanDeleteProject(context.Context, authorization.OrgContext, *types.Project, types.AuthenticatedUser) bool
	CanChangeProjectCustomer(context.Context, authorization.OrgContext, *types.Project, types.AuthenticatedUser) bool
	CanUploadMedia(context.Context, authorization.OrgContext, *types.Project, types.AuthenticatedUser) bool
	CanReadTeamChat(context.Context, authorization.OrgContext, *types.Project, types.AuthenticatedUser) bool
	CanReadCustomerChat(context.Context, authorization.OrgContext, *types.Project, types.AuthenticatedUser) bool
	CanPostMessage(context.Context, authorization.OrgContext, *types.Project, authorization.Channel, types.AuthenticatedUser) bool
	CanCreateOrder(context.Context, authorization.OrgContext, types.AuthenticatedUser) bool
}

// ProjectPatch carries the mutable project fields for partial updates. Nil
// fields are left untouched.
type ProjectPatch struct {
	Status        *string
	Address       *string
	ScheduledDate *string
	Notes         *string
}

type ServiceInterface interface {
	GetProject(ctx context.Context, id string, user types.AuthenticatedUser) (*types.Project, error)
	ListProjects(ctx context.Context, orgID string, page, size int64, user types.AuthenticatedUser) ([]*types.Project, error)
	CreateProject(ctx context.Context, orgID string, p *types.Project, user types.AuthenticatedUser) (*types.Project, error)
	UpdateProject(ctx context.Context, id string, patch ProjectPatch, user types.AuthenticatedUser) (*types.Project, error)
	DeleteProject(ctx context.Context, id string, user types.AuthenticatedUser) error
	ChangeCustomer(ctx context.Context, id string, customerID *string, user types.AuthenticatedUser) error
	Assign(ctx context.Context, id, assignment string, assigneeID *string, user types.AuthenticatedUser) error
	GetPermissions(ctx context.Context, id string, user types.AuthenticatedUser) (permissions.Verdicts, error)
	PostMessage(ctx context.Context, id string, channel authorization.Channel, body string, user types.AuthenticatedUser) (*types.ProjectMessage, error)
	ListMessages(ctx context.Context, id string, channel authorization.Channel, user types.AuthenticatedUser) ([]*types.ProjectMessage, error)
	AuthorizeUpload(ctx context.Context, id string, user types.AuthenticatedUser) (string, error)
}
