// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package project

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.opentelemetry.io/otel/trace"
	gomock "go.uber.org/mock/gomock"

	"github.com/RelayDigital/vrem-sub006/internal/authorization"
	"github.com/RelayDigital/vrem-sub006/internal/storage"
	"github.com/RelayDigital/vrem-sub006/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package project -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package project -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package project -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package project -destination ./mock_interfaces.go -source=./interfaces.go

func strPtr(s string) *string {
	return &s
}

func businessOrgContext(role authorization.Role) authorization.OrgContext {
	return authorization.NewOrgContext(types.Organization{
		ID:   "org-1",
		Name: "Relay Media",
		Type: types.OrgTypeCompany,
	}, role, role != authorization.RoleNone)
}

func sampleProject() *types.Project {
	return &types.Project{
		ID:            "proj-1",
		OrgID:         "org-1",
		Status:        "scheduled",
		Address:       "12 Harbour St",
		ScheduledDate: "2026-09-14",
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

func TestService_GetProject(t *testing.T) {
	ctx := context.Background()
	user := types.AuthenticatedUser{ID: "user-1", AccountType: types.AccountTypeProvider}
	octx := businessOrgContext(authorization.RoleProjectManager)

	for _, tt := range []struct {
		name        string
		setupMocks  func(s *MockStorageInterface, a *MockAuthzInterface)
		expectedErr error
	}{
		{
			name: "Success",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface) {
				s.EXPECT().GetProjectByID(gomock.Any(), "proj-1").Return(sampleProject(), nil)
				s.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).Return(octx, nil)
				a.EXPECT().CanViewProject(gomock.Any(), octx, gomock.Any(), user).Return(true)
			},
		},
		{
			name: "NotFound",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface) {
				s.EXPECT().GetProjectByID(gomock.Any(), "proj-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "OrgContextFailure",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface) {
				s.EXPECT().GetProjectByID(gomock.Any(), "proj-1").Return(sampleProject(), nil)
				s.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).Return(authorization.OrgContext{}, fmt.Errorf("pool closed"))
			},
			expectedErr: errors.New("failed to resolve org context: pool closed"),
		},
		{
			name: "Denied",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface) {
				s.EXPECT().GetProjectByID(gomock.Any(), "proj-1").Return(sampleProject(), nil)
				s.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).Return(octx, nil)
				a.EXPECT().CanViewProject(gomock.Any(), octx, gomock.Any(), user).Return(false)
			},
			expectedErr: ErrForbidden,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockStorage, mockAuthz, mockTracer := newServiceWithMocks(t)
			mockTracer.EXPECT().Start(gomock.Any(), "project.Service.GetProject").Return(ctx, trace.SpanFromContext(ctx))
			tt.setupMocks(mockStorage, mockAuthz)

			p, err := svc.GetProject(ctx, "proj-1", user)

			if tt.expectedErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if p == nil || p.ID != "proj-1" {
					t.Fatalf("expected project proj-1, got %+v", p)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.expectedErr) && err.Error() != tt.expectedErr.Error() {
				t.Fatalf("expected error %q, got %q", tt.expectedErr, err)
			}
		})
	}
}

func TestService_ListProjects_FiltersByVisibility(t *testing.T) {
	ctx := context.Background()
	tech := types.AuthenticatedUser{ID: "tech-1", AccountType: types.AccountTypeProvider}
	octx := businessOrgContext(authorization.RoleTechnician)

	assigned := sampleProject()
	assigned.TechnicianID = strPtr("tech-1")
	other := sampleProject()
	other.ID = "proj-2"
	other.TechnicianID = strPtr("tech-2")

	svc, mockStorage, _, mockTracer := newServiceWithMocks(t)
	mockTracer.EXPECT().Start(gomock.Any(), "project.Service.ListProjects").Return(ctx, trace.SpanFromContext(ctx))
	mockStorage.EXPECT().GetOrgContext(gomock.Any(), "org-1", tech).Return(octx, nil)
	mockStorage.EXPECT().ListProjectsByOrgID(gomock.Any(), "org-1", int64(0), int64(20)).
		Return([]*types.Project{assigned, other}, nil)

	visible, err := svc.ListProjects(ctx, "org-1", 0, 20, tech)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(visible) != 1 || visible[0].ID != "proj-1" {
		t.Fatalf("expected only the assigned project, got %+v", visible)
	}
}

func TestService_ListProjects_OrgContextError(t *testing.T) {
	ctx := context.Background()
	user := types.AuthenticatedUser{ID: "user-1", AccountType: types.AccountTypeProvider}

	svc, mockStorage, _, mockTracer := newServiceWithMocks(t)
	mockTracer.EXPECT().Start(gomock.Any(), "project.Service.ListProjects").Return(ctx, trace.SpanFromContext(ctx))
	mockStorage.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).
		Return(authorization.OrgContext{}, storage.ErrNotFound)

	if _, err := svc.ListProjects(ctx, "org-1", 0, 20, user); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_CreateProject(t *testing.T) {
	ctx := context.Background()
	user := types.AuthenticatedUser{ID: "user-1", AccountType: types.AccountTypeProvider}
	octx := businessOrgContext(authorization.RoleProjectManager)

	for _, tt := range []struct {
		name        string
		setupMocks  func(s *MockStorageInterface, a *MockAuthzInterface)
		expectedErr error
	}{
		{
			name: "SuccessDefaultsStatus",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface) {
				s.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).Return(octx, nil)
				a.EXPECT().CanCreateOrder(gomock.Any(), octx, user).Return(true)
				s.EXPECT().CreateProject(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.Project) (*types.Project, error) {
						if p.OrgID != "org-1" {
							t.Fatalf("expected org-1, got %q", p.OrgID)
						}
						if p.Status != "pending" {
							t.Fatalf("expected default status pending, got %q", p.Status)
						}
						return p, nil
					},
				)
			},
		},
		{
			name: "Denied",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface) {
				s.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).Return(octx, nil)
				a.EXPECT().CanCreateOrder(gomock.Any(), octx, user).Return(false)
			},
			expectedErr: ErrForbidden,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockStorage, mockAuthz, mockTracer := newServiceWithMocks(t)
			mockTracer.EXPECT().Start(gomock.Any(), "project.Service.CreateProject").Return(ctx, trace.SpanFromContext(ctx))
			tt.setupMocks(mockStorage, mockAuthz)

			_, err := svc.CreateProject(ctx, "org-1", &types.Project{Address: "12 Harbour St", ScheduledDate: "2026-09-14"}, user)
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestService_UpdateProject_BuildsPatchPaths(t *testing.T) {
	ctx := context.Background()
	user := types.AuthenticatedUser{ID: "user-1", AccountType: types.AccountTypeProvider}
	octx := businessOrgContext(authorization.RoleAdmin)

	svc, mockStorage, mockAuthz, mockTracer := newServiceWithMocks(t)
	mockTracer.EXPECT().Start(gomock.Any(), "project.Service.UpdateProject").Return(ctx, trace.SpanFromContext(ctx))
	mockStorage.EXPECT().GetProjectByID(gomock.Any(), "proj-1").Return(sampleProject(), nil)
	mockStorage.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).Return(octx, nil)
	mockAuthz.EXPECT().CanEditProject(gomock.Any(), octx, gomock.Any(), user).Return(true)
	mockStorage.EXPECT().UpdateProject(gomock.Any(), gomock.Any(), []string{"status", "notes"}).DoAndReturn(
		func(_ context.Context, p *types.Project, _ []string) error {
			if p.Status != "delivered" || p.Notes != "final set uploaded" {
				t.Fatalf("patch not applied: %+v", p)
			}
			return nil
		},
	)

	patch := ProjectPatch{Status: strPtr("delivered"), Notes: strPtr("final set uploaded")}
	if _, err := svc.UpdateProject(ctx, "proj-1", patch, user); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestService_UpdateProject_Denied(t *testing.T) {
	ctx := context.Background()
	user := types.AuthenticatedUser{ID: "editor-1", AccountType: types.AccountTypeProvider}
	octx := businessOrgContext(authorization.RoleEditor)

	svc, mockStorage, mockAuthz, mockTracer := newServiceWithMocks(t)
	mockTracer.EXPECT().Start(gomock.Any(), "project.Service.UpdateProject").Return(ctx, trace.SpanFromContext(ctx))
	mockStorage.EXPECT().GetProjectByID(gomock.Any(), "proj-1").Return(sampleProject(), nil)
	mockStorage.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).Return(octx, nil)
	mockAuthz.EXPECT().CanEditProject(gomock.Any(), octx, gomock.Any(), user).Return(false)

	if _, err := svc.UpdateProject(ctx, "proj-1", ProjectPatch{Status: strPtr("shot")}, user); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestService_DeleteProject(t *testing.T) {
	ctx := context.Background()
	user := types.AuthenticatedUser{ID: "user-1", AccountType: types.AccountTypeProvider}
	octx := businessOrgContext(authorization.RoleAdmin)

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
			mockTracer.EXPECT().Start(gomock.Any(), "project.Service.DeleteProject").Return(ctx, trace.SpanFromContext(ctx))
			mockStorage.EXPECT().GetProjectByID(gomock.Any(), "proj-1").Return(sampleProject(), nil)
			mockStorage.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).Return(octx, nil)
			mockAuthz.EXPECT().CanDeleteProject(gomock.Any(), octx, gomock.Any(), user).Return(tt.allowed)
			if tt.allowed {
				mockStorage.EXPECT().DeleteProject(gomock.Any(), "proj-1").Return(nil)
			}

			if err := svc.DeleteProject(ctx, "proj-1", user); !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestService_ChangeCustomer(t *testing.T) {
	ctx := context.Background()
	user := types.AuthenticatedUser{ID: "user-1", AccountType: types.AccountTypeProvider}
	octx := businessOrgContext(authorization.RoleAdmin)
	customerID := strPtr("cust-1")

	svc, mockStorage, mockAuthz, mockTracer := newServiceWithMocks(t)
	mockTracer.EXPECT().Start(gomock.Any(), "project.Service.ChangeCustomer").Return(ctx, trace.SpanFromContext(ctx))
	mockStorage.EXPECT().GetProjectByID(gomock.Any(), "proj-1").Return(sampleProject(), nil)
	mockStorage.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).Return(octx, nil)
	mockAuthz.EXPECT().CanChangeProjectCustomer(gomock.Any(), octx, gomock.Any(), user).Return(true)
	mockStorage.EXPECT().SetProjectCustomer(gomock.Any(), "proj-1", customerID).Return(nil)

	if err := svc.ChangeCustomer(ctx, "proj-1", customerID, user); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestService_Assign(t *testing.T) {
	ctx := context.Background()
	user := types.AuthenticatedUser{ID: "user-1", AccountType: types.AccountTypeProvider}
	octx := businessOrgContext(authorization.RoleProjectManager)
	assignee := strPtr("tech-9")

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
			mockTracer.EXPECT().Start(gomock.Any(), "project.Service.Assign").Return(ctx, trace.SpanFromContext(ctx))
			mockStorage.EXPECT().GetProjectByID(gomock.Any(), "proj-1").Return(sampleProject(), nil)
			mockStorage.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).Return(octx, nil)
			mockAuthz.EXPECT().CanEditProject(gomock.Any(), octx, gomock.Any(), user).Return(tt.allowed)
			if tt.allowed {
				mockStorage.EXPECT().AssignProject(gomock.Any(), "proj-1", "technician_id", assignee).Return(nil)
			}

			err := svc.Assign(ctx, "proj-1", "technician_id", assignee, user)
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestService_GetPermissions(t *testing.T) {
	ctx := context.Background()
	user := types.AuthenticatedUser{ID: "pm-1", AccountType: types.AccountTypeProvider}
	octx := businessOrgContext(authorization.RoleProjectManager)

	svc, mockStorage, mockAuthz, mockTracer := newServiceWithMocks(t)
	mockTracer.EXPECT().Start(gomock.Any(), "project.Service.GetPermissions").Return(ctx, trace.SpanFromContext(ctx))
	mockStorage.EXPECT().GetProjectByID(gomock.Any(), "proj-1").Return(sampleProject(), nil)
	mockStorage.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).Return(octx, nil)
	mockAuthz.EXPECT().CanViewProject(gomock.Any(), octx, gomock.Any(), user).Return(true)

	verdicts, err := svc.GetPermissions(ctx, "proj-1", user)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(verdicts) == 0 {
		t.Fatal("expected a non-empty verdict snapshot")
	}
	if !verdicts["viewProject"] {
		t.Fatal("expected viewProject to be granted to a project manager")
	}
	if verdicts["deleteProject"] {
		t.Fatal("expected deleteProject to be denied to a project manager")
	}
}

func TestService_PostMessage(t *testing.T) {
	ctx := context.Background()
	user := types.AuthenticatedUser{ID: "tech-1", AccountType: types.AccountTypeProvider}
	octx := businessOrgContext(authorization.RoleTechnician)

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
			mockTracer.EXPECT().Start(gomock.Any(), "project.Service.PostMessage").Return(ctx, trace.SpanFromContext(ctx))
			mockStorage.EXPECT().GetProjectByID(gomock.Any(), "proj-1").Return(sampleProject(), nil)
			mockStorage.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).Return(octx, nil)
			mockAuthz.EXPECT().CanPostMessage(gomock.Any(), octx, gomock.Any(), authorization.ChannelTeam, user).Return(tt.allowed)
			if tt.allowed {
				mockStorage.EXPECT().CreateProjectMessage(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, m *types.ProjectMessage) (*types.ProjectMessage, error) {
						if m.ProjectID != "proj-1" || m.Channel != "team" || m.AuthorID != "tech-1" || m.Body != "on site" {
							t.Fatalf("unexpected message %+v", m)
						}
						return m, nil
					},
				)
			}

			_, err := svc.PostMessage(ctx, "proj-1", authorization.ChannelTeam, "on site", user)
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestService_ListMessages(t *testing.T) {
	ctx := context.Background()
	user := types.AuthenticatedUser{ID: "pm-1", AccountType: types.AccountTypeProvider}
	octx := businessOrgContext(authorization.RoleProjectManager)

	for _, tt := range []struct {
		name        string
		channel     authorization.Channel
		setupMocks  func(s *MockStorageInterface, a *MockAuthzInterface)
		expectedErr error
	}{
		{
			name:    "TeamChannel",
			channel: authorization.ChannelTeam,
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface) {
				a.EXPECT().CanReadTeamChat(gomock.Any(), octx, gomock.Any(), user).Return(true)
				s.EXPECT().ListProjectMessages(gomock.Any(), "proj-1", "team").Return([]*types.ProjectMessage{}, nil)
			},
		},
		{
			name:    "CustomerChannel",
			channel: authorization.ChannelCustomer,
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface) {
				a.EXPECT().CanReadCustomerChat(gomock.Any(), octx, gomock.Any(), user).Return(true)
				s.EXPECT().ListProjectMessages(gomock.Any(), "proj-1", "customer").Return([]*types.ProjectMessage{}, nil)
			},
		},
		{
			name:        "UnknownChannel",
			channel:     authorization.Channel("broadcast"),
			setupMocks:  func(s *MockStorageInterface, a *MockAuthzInterface) {},
			expectedErr: ErrForbidden,
		},
		{
			name:    "Denied",
			channel: authorization.ChannelTeam,
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface) {
				a.EXPECT().CanReadTeamChat(gomock.Any(), octx, gomock.Any(), user).Return(false)
			},
			expectedErr: ErrForbidden,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockStorage, mockAuthz, mockTracer := newServiceWithMocks(t)
			mockTracer.EXPECT().Start(gomock.Any(), "project.Service.ListMessages").Return(ctx, trace.SpanFromContext(ctx))
			mockStorage.EXPECT().GetProjectByID(gomock.Any(), "proj-1").Return(sampleProject(), nil)
			mockStorage.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).Return(octx, nil)
			tt.setupMocks(mockStorage, mockAuthz)

			_, err := svc.ListMessages(ctx, "proj-1", tt.channel, user)
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestService_AuthorizeUpload(t *testing.T) {
	ctx := context.Background()
	user := types.AuthenticatedUser{ID: "tech-1", AccountType: types.AccountTypeProvider}
	octx := businessOrgContext(authorization.RoleTechnician)

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
			mockTracer.EXPECT().Start(gomock.Any(), "project.Service.AuthorizeUpload").Return(ctx, trace.SpanFromContext(ctx))
			mockStorage.EXPECT().GetProjectByID(gomock.Any(), "proj-1").Return(sampleProject(), nil)
			mockStorage.EXPECT().GetOrgContext(gomock.Any(), "org-1", user).Return(octx, nil)
			mockAuthz.EXPECT().CanUploadMedia(gomock.Any(), octx, gomock.Any(), user).Return(tt.allowed)

			ticket, err := svc.AuthorizeUpload(ctx, "proj-1", user)
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
			if tt.allowed && ticket == "" {
				t.Fatal("expected a non-empty upload ticket")
			}
		})
	}
}
