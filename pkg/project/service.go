// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/RelayDigital/vrem-sub006/internal/authorization"
	"github.com/RelayDigital/vrem-sub006/internal/logging"
	"github.com/RelayDigital/vrem-sub006/internal/monitoring"
	"github.com/RelayDigital/vrem-sub006/internal/tracing"
	"github.com/RelayDigital/vrem-sub006/internal/types"
	"github.com/RelayDigital/vrem-sub006/pkg/permissions"
)

// ErrForbidden marks a denied permission check. Handlers translate it to
// 403 without leaking which rule denied.
var ErrForbidden = errors.New("forbidden")

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// load fetches the project and resolves the caller's org context against
// the project's own organization. Resolving per call keeps checks current
// when a role changed since the last request.
func (s *Service) load(ctx context.Context, id string, user types.AuthenticatedUser) (*types.Project, authorization.OrgContext, error) {
	p, err := s.storage.GetProjectByID(ctx, id)
	if err != nil {
		return nil, authorization.OrgContext{}, err
	}

	octx, err := s.storage.GetOrgContext(ctx, p.OrgID, user)
	if err != nil {
		return nil, authorization.OrgContext{}, fmt.Errorf("failed to resolve org context: %w", err)
	}

	return p, octx, nil
}

func (s *Service) GetProject(ctx context.Context, id string, user types.AuthenticatedUser) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.GetProject")
	defer span.End()

	p, octx, err := s.load(ctx, id, user)
	if err != nil {
		return nil, err
	}

	if !s.authz.CanViewProject(ctx, octx, p, user) {
		return nil, ErrForbidden
	}

	return p, nil
}

// ListProjects returns the org's projects the caller may see. The
// visibility filter runs per project so assignees only see their own work.
func (s *Service) ListProjects(ctx context.Context, orgID string, page, size int64, user types.AuthenticatedUser) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.ListProjects")
	defer span.End()

	octx, err := s.storage.GetOrgContext(ctx, orgID, user)
	if err != nil {
		return nil, err
	}

	projects, err := s.storage.ListProjectsByOrgID(ctx, orgID, page, size)
	if err != nil {
		return nil, err
	}

	visible := make([]*types.Project, 0, len(projects))
	for _, p := range projects {
		if authorization.CanViewProject(octx, p, user) {
			visible = append(visible, p)
		}
	}

	return visible, nil
}

// CreateProject uses the order-creation gate: booking a new shoot is an
// order-side operation open to the admin tier and project managers.
func (s *Service) CreateProject(ctx context.Context, orgID string, p *types.Project, user types.AuthenticatedUser) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.CreateProject")
	defer span.End()

	octx, err := s.storage.GetOrgContext(ctx, orgID, user)
	if err != nil {
		return nil, err
	}

	if !s.authz.CanCreateOrder(ctx, octx, user) {
		return nil, ErrForbidden
	}

	p.OrgID = orgID
	if p.Status == "" {
		p.Status = "pending"
	}

	return s.storage.CreateProject(ctx, p)
}

func (s *Service) UpdateProject(ctx context.Context, id string, patch ProjectPatch, user types.AuthenticatedUser) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.UpdateProject")
	defer span.End()

	p, octx, err := s.load(ctx, id, user)
	if err != nil {
		return nil, err
	}

	if !s.authz.CanEditProject(ctx, octx, p, user) {
		return nil, ErrForbidden
	}

	var paths []string
	if patch.Status != nil {
		p.Status = *patch.Status
		paths = append(paths, "status")
	}
	if patch.Address != nil {
		p.Address = *patch.Address
		paths = append(paths, "address")
	}
	if patch.ScheduledDate != nil {
		p.ScheduledDate = *patch.ScheduledDate
		paths = append(paths, "scheduled_date")
	}
	if patch.Notes != nil {
		p.Notes = *patch.Notes
		paths = append(paths, "notes")
	}

	if err := s.storage.UpdateProject(ctx, p, paths); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) DeleteProject(ctx context.Context, id string, user types.AuthenticatedUser) error {
	ctx, span := s.tracer.Start(ctx, "project.Service.DeleteProject")
	defer span.End()

	p, octx, err := s.load(ctx, id, user)
	if err != nil {
		return err
	}

	if !s.authz.CanDeleteProject(ctx, octx, p, user) {
		return ErrForbidden
	}

	return s.storage.DeleteProject(ctx, id)
}

func (s *Service) ChangeCustomer(ctx context.Context, id string, customerID *string, user types.AuthenticatedUser) error {
	ctx, span := s.tracer.Start(ctx, "project.Service.ChangeCustomer")
	defer span.End()

	p, octx, err := s.load(ctx, id, user)
	if err != nil {
		return err
	}

	if !s.authz.CanChangeProjectCustomer(ctx, octx, p, user) {
		return ErrForbidden
	}

	return s.storage.SetProjectCustomer(ctx, id, customerID)
}

// Assign sets or clears a staffing slot. Staffing is part of the edit
// surface, so the edit gate applies.
func (s *Service) Assign(ctx context.Context, id, assignment string, assigneeID *string, user types.AuthenticatedUser) error {
	ctx, span := s.tracer.Start(ctx, "project.Service.Assign")
	defer span.End()

	p, octx, err := s.load(ctx, id, user)
	if err != nil {
		return err
	}

	if !s.authz.CanEditProject(ctx, octx, p, user) {
		return ErrForbidden
	}

	return s.storage.AssignProject(ctx, id, assignment, assigneeID)
}

// GetPermissions returns the advisory verdict snapshot the client renders
// from. Viewing the snapshot requires view access to the project itself,
// except for linked customers who get their own (mostly denied) snapshot.
func (s *Service) GetPermissions(ctx context.Context, id string, user types.AuthenticatedUser) (permissions.Verdicts, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.GetPermissions")
	defer span.End()

	p, octx, err := s.load(ctx, id, user)
	if err != nil {
		return nil, err
	}

	if !s.authz.CanViewProject(ctx, octx, p, user) {
		return nil, ErrForbidden
	}

	return permissions.Snapshot(octx, p, user), nil
}

func (s *Service) PostMessage(ctx context.Context, id string, channel authorization.Channel, body string, user types.AuthenticatedUser) (*types.ProjectMessage, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.PostMessage")
	defer span.End()

	p, octx, err := s.load(ctx, id, user)
	if err != nil {
		return nil, err
	}

	if !s.authz.CanPostMessage(ctx, octx, p, channel, user) {
		return nil, ErrForbidden
	}

	return s.storage.CreateProjectMessage(ctx, &types.ProjectMessage{
		ProjectID: id,
		Channel:   string(channel),
		AuthorID:  user.ID,
		Body:      body,
	})
}

func (s *Service) ListMessages(ctx context.Context, id string, channel authorization.Channel, user types.AuthenticatedUser) ([]*types.ProjectMessage, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.ListMessages")
	defer span.End()

	p, octx, err := s.load(ctx, id, user)
	if err != nil {
		return nil, err
	}

	var allowed bool
	switch channel {
	case authorization.ChannelTeam:
		allowed = s.authz.CanReadTeamChat(ctx, octx, p, user)
	case authorization.ChannelCustomer:
		allowed = s.authz.CanReadCustomerChat(ctx, octx, p, user)
	}
	if !allowed {
		return nil, ErrForbidden
	}

	return s.storage.ListProjectMessages(ctx, id, string(channel))
}

// AuthorizeUpload issues an upload ticket for the project's media store.
// The ticket is opaque to this service; the media pipeline validates it.
func (s *Service) AuthorizeUpload(ctx context.Context, id string, user types.AuthenticatedUser) (string, error) {
	ctx, span := s.tracer.Start(ctx, "project.Service.AuthorizeUpload")
	defer span.End()

	p, octx, err := s.load(ctx, id, user)
	if err != nil {
		return "", err
	}

	if !s.authz.CanUploadMedia(ctx, octx, p, user) {
		return "", ErrForbidden
	}

	ticket, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate upload ticket: %w", err)
	}

	return ticket.String(), nil
}
