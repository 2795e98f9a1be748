// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package dispatch ranks technician providers against a job and manages
// the provider roster behind the ranking engine.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/RelayDigital/vrem-sub006/internal/logging"
	"github.com/RelayDigital/vrem-sub006/internal/monitoring"
	"github.com/RelayDigital/vrem-sub006/internal/ranking"
	"github.com/RelayDigital/vrem-sub006/internal/tracing"
	"github.com/RelayDigital/vrem-sub006/internal/types"
)

// ErrForbidden marks a denied permission check. Handlers translate it to
// an HTTP 403.
var ErrForbidden = errors.New("forbidden")

var _ ServiceInterface = (*Service)(nil)

// Service runs ranking requests and roster maintenance. Roster mutations
// carry no per-org gate of their own; the router exposes them on the
// bearer-authenticated internal surface only.
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

// rank loads the current roster and the org's preferred vendor list and
// scores it against the job. Rankings are computed fresh per request;
// nothing about a ranking is persisted.
func (s *Service) rank(ctx context.Context, job types.JobRequest, priority []ranking.SortKey) ([]ranking.Ranking, error) {
	providers, err := s.storage.ListTechnicianProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load technician roster: %w", err)
	}

	preferred, err := s.storage.ListPreferredVendorIDs(ctx, job.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferred vendors: %w", err)
	}

	if len(priority) > 0 {
		return ranking.FindTechnicians(job, providers, preferred, priority), nil
	}
	return ranking.RankTechnicians(job, providers, preferred), nil
}

// RankForProject scores the roster for staffing one project. The gate is
// the project edit permission: whoever may staff the project may rank
// candidates for it.
func (s *Service) RankForProject(ctx context.Context, projectID string, params JobParams, user types.AuthenticatedUser) ([]ranking.Ranking, error) {
	ctx, span := s.tracer.Start(ctx, "dispatch.Service.RankForProject")
	defer span.End()

	p, err := s.storage.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	octx, err := s.storage.GetOrgContext(ctx, p.OrgID, user)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve org context: %w", err)
	}

	if !s.authz.CanEditProject(ctx, octx, p, user) {
		return nil, ErrForbidden
	}

	job := types.JobRequest{
		OrganizationID: p.OrgID,
		Location:       params.Location,
		ScheduledDate:  params.ScheduledDate,
		MediaTypes:     params.MediaTypes,
	}
	if job.ScheduledDate == "" {
		job.ScheduledDate = p.ScheduledDate
	}

	return s.rank(ctx, job, nil)
}

// Search is the interactive find-technician flow: same factor scoring,
// ordered by the caller's priority keys.
func (s *Service) Search(ctx context.Context, orgID string, params JobParams, priority []ranking.SortKey, user types.AuthenticatedUser) ([]ranking.Ranking, error) {
	ctx, span := s.tracer.Start(ctx, "dispatch.Service.Search")
	defer span.End()

	octx, err := s.storage.GetOrgContext(ctx, orgID, user)
	if err != nil {
		return nil, err
	}

	if !s.authz.CanCreateOrder(ctx, octx, user) {
		return nil, ErrForbidden
	}

	job := types.JobRequest{
		OrganizationID: orgID,
		Location:       params.Location,
		ScheduledDate:  params.ScheduledDate,
		MediaTypes:     params.MediaTypes,
	}

	return s.rank(ctx, job, priority)
}

func (s *Service) CreateProfile(ctx context.Context, p *types.TechnicianProfile) (*types.TechnicianProfile, error) {
	ctx, span := s.tracer.Start(ctx, "dispatch.Service.CreateProfile")
	defer span.End()

	return s.storage.CreateTechnicianProfile(ctx, p)
}

func (s *Service) GetProfile(ctx context.Context, id string) (*types.TechnicianProfile, error) {
	ctx, span := s.tracer.Start(ctx, "dispatch.Service.GetProfile")
	defer span.End()

	return s.storage.GetTechnicianProfileByID(ctx, id)
}

func (s *Service) ListProfiles(ctx context.Context) ([]*types.TechnicianProfile, error) {
	ctx, span := s.tracer.Start(ctx, "dispatch.Service.ListProfiles")
	defer span.End()

	return s.storage.ListTechnicianProfiles(ctx)
}

func (s *Service) SetStatus(ctx context.Context, id string, status types.TechnicianStatus) error {
	ctx, span := s.tracer.Start(ctx, "dispatch.Service.SetStatus")
	defer span.End()

	return s.storage.SetTechnicianStatus(ctx, id, status)
}

// RecordOutcome folds one completed job into the provider's reliability
// history. Reliability feeds the ranking engine only through the stored
// aggregate, so recording is the single write path.
func (s *Service) RecordOutcome(ctx context.Context, id string, onTime bool) error {
	ctx, span := s.tracer.Start(ctx, "dispatch.Service.RecordOutcome")
	defer span.End()

	return s.storage.RecordJobOutcome(ctx, id, onTime)
}

// AddPreferredVendor marks a provider company as preferred for the org.
// The relation is org-side configuration, so the customer-management gate
// applies.
func (s *Service) AddPreferredVendor(ctx context.Context, orgID, companyID string, user types.AuthenticatedUser) error {
	ctx, span := s.tracer.Start(ctx, "dispatch.Service.AddPreferredVendor")
	defer span.End()

	octx, err := s.storage.GetOrgContext(ctx, orgID, user)
	if err != nil {
		return err
	}

	if !s.authz.CanManageCustomers(ctx, octx, user) {
		return ErrForbidden
	}

	return s.storage.AddPreferredVendor(ctx, orgID, companyID)
}
