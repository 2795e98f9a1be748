// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dispatch

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	gomock "go.uber.org/mock/gomock"

	"github.com/RelayDigital/vrem-sub006/internal/authorization"
	"github.com/RelayDigital/vrem-sub006/internal/ranking"
	"github.com/RelayDigital/vrem-sub006/internal/storage"
	"github.com/RelayDigital/vrem-sub006/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package dispatch -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package dispatch -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package dispatch -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package dispatch -destination ./mock_interfaces.go -source=./interfaces.go

var vancouver = types.GeoPoint{Lat: 49.2827, Lng: -123.1207}

func orgContext(role authorization.Role) authorization.OrgContext {
	return authorization.NewOrgContext(types.Organization{
		ID:   "org-1",
		Name: "Relay Media",
		Type: types.OrgTypeCompany,
	}, role, role != authorization.RoleNone)
}

func activeProvider(id string) *types.TechnicianProfile {
	return &types.TechnicianProfile{
		ID:           id,
		CompanyID:    "company-" + id,
		Name:         "Provider " + id,
		Status:       types.TechnicianActive,
		HomeLocation: vancouver,
		Availability: []types.AvailabilityEntry{{Date: "2026-09-14", Available: true}},
		Reliability:  types.Reliability{OnTimeRate: 0.95, TotalJobs: 40},
		Skills:       types.SkillSet{Residential: 4, Video: 4, Aerial: 4, Twilight: 4, Commercial: 4},
	}
}

func newServiceWithMocks(t *testing.T) (*Service, *MockStorageInterface, *MockAuthzInterface, *MockTracingInterface) {
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthzInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	svc := NewService(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger)
	return svc, mockStorage, mockAuthz, mockTracer
}

func TestService_RankForProject(t *testing.T) {
	ctx := context.Background()
	user := types.AuthenticatedUser{ID: "pm-1", AccountType: types.AccountTypeProvider}
	octx := orgContext(authorization.RoleProjectManager)
	project := &types.Project{ID: "proj-1", OrgID: "org-1", ScheduledDate: "2026-09-14"}

	for _, tt := range []struct {
		name        string
		setupMocks  func(s *MockStorageInterface, a *MockAuthzInterface)
		expectedErr error
	}{
		{
			name: "Success",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface) {
				s.EXPECT().GetProjectByID(gomock.Any(), "proj-1").Return(project, nil)
				s.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).Return(octx, nil)
				a.EXPECT().CanEditProject(gomock.Any(), octx, project, user).Return(true)
				s.EXPECT().ListTechnicianProfiles(gomock.Any()).
					Return([]*types.TechnicianProfile{activeProvider("p1")}, nil)
				s.EXPECT().ListPreferredVendorIDs(gomock.Any(), "org-1").Return(nil, nil)
			},
		},
		{
			name: "ProjectNotFound",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface) {
				s.EXPECT().GetProjectByID(gomock.Any(), "proj-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "Denied",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface) {
				s.EXPECT().GetProjectByID(gomock.Any(), "proj-1").Return(project, nil)
				s.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).Return(octx, nil)
				a.EXPECT().CanEditProject(gomock.Any(), octx, project, user).Return(false)
			},
			expectedErr: ErrForbidden,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockStorage, mockAuthz, mockTracer := newServiceWithMocks(t)
			mockTracer.EXPECT().Start(gomock.Any(), "dispatch.Service.RankForProject").Return(ctx, trace.SpanFromContext(ctx))
			tt.setupMocks(mockStorage, mockAuthz)

			rankings, err := svc.RankForProject(ctx, "proj-1", JobParams{Location: vancouver}, user)
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
			if tt.expectedErr == nil && len(rankings) != 1 {
				t.Fatalf("expected one ranking, got %d", len(rankings))
			}
		})
	}
}

func TestService_RankForProject_DefaultsScheduledDate(t *testing.T) {
	ctx := context.Background()
	user := types.AuthenticatedUser{ID: "pm-1", AccountType: types.AccountTypeProvider}
	octx := orgContext(authorization.RoleProjectManager)
	project := &types.Project{ID: "proj-1", OrgID: "org-1", ScheduledDate: "2026-09-14"}

	svc, mockStorage, mockAuthz, mockTracer := newServiceWithMocks(t)
	mockTracer.EXPECT().Start(gomock.Any(), "dispatch.Service.RankForProject").Return(ctx, trace.SpanFromContext(ctx))
	mockStorage.EXPECT().GetProjectByID(gomock.Any(), "proj-1").Return(project, nil)
	mockStorage.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).Return(octx, nil)
	mockAuthz.EXPECT().CanEditProject(gomock.Any(), octx, project, user).Return(true)
	mockStorage.EXPECT().ListTechnicianProfiles(gomock.Any()).
		Return([]*types.TechnicianProfile{activeProvider("p1")}, nil)
	mockStorage.EXPECT().ListPreferredVendorIDs(gomock.Any(), "org-1").Return(nil, nil)

	// No scheduled date in the params: the project's own date applies, so
	// the provider available on that date scores full availability.
	rankings, err := svc.RankForProject(ctx, "proj-1", JobParams{Location: vancouver}, user)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rankings[0].Factors.Availability != 100 {
		t.Fatalf("expected availability 100 on the project date, got %v", rankings[0].Factors.Availability)
	}
}

func TestService_RankForProject_ExcludesInactive(t *testing.T) {
	ctx := context.Background()
	user := types.AuthenticatedUser{ID: "pm-1", AccountType: types.AccountTypeProvider}
	octx := orgContext(authorization.RoleProjectManager)
	project := &types.Project{ID: "proj-1", OrgID: "org-1", ScheduledDate: "2026-09-14"}

	inactive := activeProvider("p2")
	inactive.Status = types.TechnicianInactive

	svc, mockStorage, mockAuthz, mockTracer := newServiceWithMocks(t)
	mockTracer.EXPECT().Start(gomock.Any(), "dispatch.Service.RankForProject").Return(ctx, trace.SpanFromContext(ctx))
	mockStorage.EXPECT().GetProjectByID(gomock.Any(), "proj-1").Return(project, nil)
	mockStorage.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).Return(octx, nil)
	mockAuthz.EXPECT().CanEditProject(gomock.Any(), octx, project, user).Return(true)
	mockStorage.EXPECT().ListTechnicianProfiles(gomock.Any()).
		Return([]*types.TechnicianProfile{activeProvider("p1"), inactive}, nil)
	mockStorage.EXPECT().ListPreferredVendorIDs(gomock.Any(), "org-1").Return(nil, nil)

	rankings, err := svc.RankForProject(ctx, "proj-1", JobParams{Location: vancouver}, user)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rankings) != 1 || rankings[0].Provider.ID != "p1" {
		t.Fatalf("expected only the active provider, got %+v", rankings)
	}
}

func TestService_Search(t *testing.T) {
	ctx := context.Background()
	user := types.AuthenticatedUser{ID: "pm-1", AccountType: types.AccountTypeProvider}
	octx := orgContext(authorization.RoleProjectManager)
	params := JobParams{Location: vancouver, ScheduledDate: "2026-09-14"}

	for _, tt := range []struct {
		name        string
		allowed     bool
		expectedErr error
	}{
		{name: "Success", allowed: true},
		{name: "Denied", allowed: false, expectedErr: ErrForbidden},
	} {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockStorage, mockAuthz, mockTracer := newServiceWithMocks(t)
			mockTracer.EXPECT().Start(gomock.Any(), "dispatch.Service.Search").Return(ctx, trace.SpanFromContext(ctx))
			mockStorage.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).Return(octx, nil)
			mockAuthz.EXPECT().CanCreateOrder(gomock.Any(), octx, user).Return(tt.allowed)
			if tt.allowed {
				mockStorage.EXPECT().ListTechnicianProfiles(gomock.Any()).
					Return([]*types.TechnicianProfile{activeProvider("p1")}, nil)
				mockStorage.EXPECT().ListPreferredVendorIDs(gomock.Any(), "org-1").Return(nil, nil)
			}

			_, err := svc.Search(ctx, "org-1", params, []ranking.SortKey{ranking.SortByDistance}, user)
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestService_Search_PriorityOrder(t *testing.T) {
	ctx := context.Background()
	user := types.AuthenticatedUser{ID: "pm-1", AccountType: types.AccountTypeProvider}
	octx := orgContext(authorization.RoleProjectManager)

	// near scores lower overall but is closer; a distance-first priority
	// must surface it ahead of the stronger candidate.
	near := activeProvider("near")
	near.Reliability = types.Reliability{OnTimeRate: 0.5, NoShows: 3, TotalJobs: 20}
	far := activeProvider("far")
	far.HomeLocation = types.GeoPoint{Lat: 49.5, Lng: -123.1207}

	svc, mockStorage, mockAuthz, mockTracer := newServiceWithMocks(t)
	mockTracer.EXPECT().Start(gomock.Any(), "dispatch.Service.Search").Return(ctx, trace.SpanFromContext(ctx))
	mockStorage.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).Return(octx, nil)
	mockAuthz.EXPECT().CanCreateOrder(gomock.Any(), octx, user).Return(true)
	mockStorage.EXPECT().ListTechnicianProfiles(gomock.Any()).
		Return([]*types.TechnicianProfile{far, near}, nil)
	mockStorage.EXPECT().ListPreferredVendorIDs(gomock.Any(), "org-1").Return(nil, nil)

	params := JobParams{Location: vancouver, ScheduledDate: "2026-09-14"}
	rankings, err := svc.Search(ctx, "org-1", params, []ranking.SortKey{ranking.SortByDistance}, user)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rankings[0].Provider.ID != "near" {
		t.Fatalf("expected the closer provider first, got %+v", rankings[0].Provider.ID)
	}
}

func TestService_AddPreferredVendor(t *testing.T) {
	ctx := context.Background()
	user := types.AuthenticatedUser{ID: "admin-1", AccountType: types.AccountTypeProvider}
	octx := orgContext(authorization.RoleAdmin)

	for _, tt := range []struct {
		name        string
		allowed     bool
		expectedErr error
	}{
		{name: "Success", allowed: true},
		{name: "Denied", allowed: false, expectedErr: ErrForbidden},
	} {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockStorage, mockAuthz, mockTracer := newServiceWithMocks(t)
			mockTracer.EXPECT().Start(gomock.Any(), "dispatch.Service.AddPreferredVendor").Return(ctx, trace.SpanFromContext(ctx))
			mockStorage.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).Return(octx, nil)
			mockAuthz.EXPECT().CanManageCustomers(gomock.Any(), octx, user).Return(tt.allowed)
			if tt.allowed {
				mockStorage.EXPECT().AddPreferredVendor(gomock.Any(), "org-1", "company-1").Return(nil)
			}

			err := svc.AddPreferredVendor(ctx, "org-1", "company-1", user)
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestService_RecordOutcome(t *testing.T) {
	ctx := context.Background()

	svc, mockStorage, _, mockTracer := newServiceWithMocks(t)
	mockTracer.EXPECT().Start(gomock.Any(), "dispatch.Service.RecordOutcome").Return(ctx, trace.SpanFromContext(ctx))
	mockStorage.EXPECT().RecordJobOutcome(gomock.Any(), "tech-1", false).Return(nil)

	if err := svc.RecordOutcome(ctx, "tech-1", false); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestService_SetStatus(t *testing.T) {
	ctx := context.Background()

	svc, mockStorage, _, mockTracer := newServiceWithMocks(t)
	mockTracer.EXPECT().Start(gomock.Any(), "dispatch.Service.SetStatus").Return(ctx, trace.SpanFromContext(ctx))
	mockStorage.EXPECT().SetTechnicianStatus(gomock.Any(), "tech-1", types.TechnicianInactive).Return(nil)

	if err := svc.SetStatus(ctx, "tech-1", types.TechnicianInactive); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
